package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tontine/internal/auth"
	"github.com/mmynk/tontine/internal/changefeed"
	"github.com/mmynk/tontine/internal/ledger"
	"github.com/mmynk/tontine/internal/lifecycle"
	"github.com/mmynk/tontine/internal/middleware"
	"github.com/mmynk/tontine/internal/notify"
	"github.com/mmynk/tontine/internal/roles"
	"github.com/mmynk/tontine/internal/storage/sqlite"
	pb "github.com/mmynk/tontine/pkg/proto"
	"github.com/mmynk/tontine/pkg/proto/protoconnect"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Reminder
	// bounce lists emails whose reminders are not delivered.
	bounce map[string]bool
}

func (n *recordingNotifier) SendReminders(ctx context.Context, reminders []notify.Reminder) ([]notify.Reminder, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	var (
		sent []notify.Reminder
		err  error
	)
	for _, r := range reminders {
		if n.bounce[r.Email] {
			err = errors.New("mailbox unavailable: " + r.Email)
			continue
		}
		sent = append(sent, r)
	}
	n.sent = append(n.sent, sent...)
	return sent, err
}

type testEnv struct {
	url      string
	jwt      *auth.JWTManager
	broker   *changefeed.Broker
	notifier *recordingNotifier
}

type testClients struct {
	groups   protoconnect.GroupServiceClient
	cycles   protoconnect.CycleServiceClient
	payments protoconnect.PaymentServiceClient
}

// setupTestServer wires all three services the way the server binary does.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	broker := changefeed.New()
	store.SetNotifier(broker)
	resolver := roles.NewCachingResolver(store)
	broker.Listen(resolver.HandleChange)

	notifier := &recordingNotifier{}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(store, resolver, broker, 8), interceptors))
	mux.Handle(protoconnect.NewCycleServiceHandler(NewCycleService(lifecycle.NewManager(store, resolver, nil)), interceptors))
	mux.Handle(protoconnect.NewPaymentServiceHandler(NewPaymentService(ledger.NewService(store, resolver, notifier)), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{url: server.URL, jwt: jwtManager, broker: broker, notifier: notifier}
}

func (e *testEnv) clientsFor(t *testing.T, userID, email string) testClients {
	t.Helper()
	token, err := e.jwt.Generate(userID, email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	opt := connect.WithInterceptors(middleware.BearerToken(token))
	return testClients{
		groups:   protoconnect.NewGroupServiceClient(http.DefaultClient, e.url, opt),
		cycles:   protoconnect.NewCycleServiceClient(http.DefaultClient, e.url, opt),
		payments: protoconnect.NewPaymentServiceClient(http.DefaultClient, e.url, opt),
	}
}

// fixture is a $1000 monthly group administered by admin with four members,
// the first of whom also has a login.
type fixture struct {
	env       *testEnv
	admin     testClients
	recipient testClients
	member    testClients
	stranger  testClients
	group     *pb.Group
	members   []*pb.Member
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	env := setupTestServer(t)
	f := &fixture{
		env:       env,
		admin:     env.clientsFor(t, "admin-user", "admin@example.com"),
		recipient: env.clientsFor(t, "user-1", "m1@example.com"),
		member:    env.clientsFor(t, "user-2", "m2@example.com"),
		stranger:  env.clientsFor(t, "user-9", "nobody@example.com"),
	}
	ctx := context.Background()

	resp, err := f.admin.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{
		Name:      "Savings Circle",
		Amount:    1000,
		Frequency: "monthly",
		StartDate: "2026-01-01",
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	f.group = resp.Msg.Group

	for _, email := range []string{"m1@example.com", "m2@example.com", "m3@example.com", "m4@example.com"} {
		resp, err := f.admin.groups.AddMember(ctx, connect.NewRequest(&pb.AddMemberRequest{
			GroupId: f.group.Id,
			Name:    email,
			Email:   email,
		}))
		if err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		f.members = append(f.members, resp.Msg.Member)
	}
	return f
}

// createCycle appends a cycle paid out to members[recipient].
func (f *fixture) createCycle(t *testing.T, recipient int, payout string) *pb.Cycle {
	t.Helper()
	resp, err := f.admin.cycles.CreateCycle(context.Background(), connect.NewRequest(&pb.CreateCycleRequest{
		GroupId:           f.group.Id,
		RecipientMemberId: f.members[recipient].Id,
		PayoutDate:        payout,
	}))
	if err != nil {
		t.Fatalf("CreateCycle failed: %v", err)
	}
	return resp.Msg.Cycle
}

func (f *fixture) activate(t *testing.T, cycleID string) {
	t.Helper()
	if _, err := f.admin.cycles.ActivateCycle(context.Background(), connect.NewRequest(&pb.ActivateCycleRequest{CycleId: cycleID})); err != nil {
		t.Fatalf("ActivateCycle failed: %v", err)
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}

// assertInvalidField checks that err rejects the named request field.
func assertInvalidField(t *testing.T, err error, field string) {
	t.Helper()
	assertCode(t, err, connect.CodeInvalidArgument)
	var connectErr *connect.Error
	if errors.As(err, &connectErr) && !strings.HasPrefix(connectErr.Message(), field+":") {
		t.Errorf("expected error on %s, got %q", field, connectErr.Message())
	}
}
