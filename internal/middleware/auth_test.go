package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tontine/internal/auth"
	pb "github.com/mmynk/tontine/pkg/proto"
	"github.com/mmynk/tontine/pkg/proto/protoconnect"
)

// callerEcho answers GetMyRole with the authenticated caller in response
// headers.
type callerEcho struct {
	protoconnect.UnimplementedGroupServiceHandler
	useHelpers bool
}

func (e callerEcho) GetMyRole(ctx context.Context, req *connect.Request[pb.GetMyRoleRequest]) (*connect.Response[pb.GetMyRoleResponse], error) {
	resp := connect.NewResponse(&pb.GetMyRoleResponse{Role: "member"})
	if e.useHelpers {
		resp.Header().Set("X-User-Id", GetUserID(ctx))
		resp.Header().Set("X-User-Email", GetEmail(ctx))
		return resp, nil
	}
	caller := GetCaller(ctx)
	resp.Header().Set("X-User-Id", caller.UserID)
	resp.Header().Set("X-User-Email", caller.Email)
	return resp, nil
}

func setupAuthServer(t *testing.T, echo callerEcho, opts ...connect.HandlerOption) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewGroupServiceHandler(echo, opts...))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	url := setupAuthServer(t, callerEcho{}, connect.WithInterceptors(LoggingInterceptor(), RequireAuth(jwtManager)))
	client := protoconnect.NewGroupServiceClient(http.DefaultClient, url)
	token, err := jwtManager.Generate("user-1", "ada@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		req := connect.NewRequest(&pb.GetMyRoleRequest{GroupId: "g1"})
		req.Header().Set("Authorization", "Bearer "+token)
		resp, err := client.GetMyRole(context.Background(), req)
		if err != nil {
			t.Fatalf("call failed: %v", err)
		}
		if resp.Header().Get("X-User-Id") != "user-1" || resp.Header().Get("X-User-Email") != "ada@example.com" {
			t.Errorf("unexpected caller: %v", resp.Header())
		}
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + token},
		{"bad token", "Bearer nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := connect.NewRequest(&pb.GetMyRoleRequest{GroupId: "g1"})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}
			_, err := client.GetMyRole(context.Background(), req)
			var connectErr *connect.Error
			if !errors.As(err, &connectErr) || connectErr.Code() != connect.CodeUnauthenticated {
				t.Errorf("expected unauthenticated, got %v", err)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, _ := jwtManager.Generate("user-2", "bo@example.com")

	url := setupAuthServer(t, callerEcho{useHelpers: true}, connect.WithInterceptors(RequireAuth(jwtManager)))
	client := protoconnect.NewGroupServiceClient(http.DefaultClient, url, connect.WithInterceptors(BearerToken(token)))

	resp, err := client.GetMyRole(context.Background(), connect.NewRequest(&pb.GetMyRoleRequest{GroupId: "g1"}))
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if got := resp.Header().Get("X-User-Id"); got != "user-2" {
		t.Errorf("UserID = %q, want user-2", got)
	}
	if got := resp.Header().Get("X-User-Email"); got != "bo@example.com" {
		t.Errorf("Email = %q, want bo@example.com", got)
	}
}
