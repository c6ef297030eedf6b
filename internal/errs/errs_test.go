package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("disk I/O error")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("op", "amount", "must be positive"), KindValidation},
		{"not found", NotFound("op", "cycle", "c1"), KindNotFound},
		{"state", State("op", "cycle is %s", "completed"), KindState},
		{"authorization", Unauthorized("op", "permission denied"), KindAuthorization},
		{"upstream", Upstream("op", cause), KindUpstream},
		{"wrapped", fmt.Errorf("outer: %w", State("op", "x")), KindState},
		{"plain", cause, KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpstreamUnwrap(t *testing.T) {
	cause := errors.New("database is locked")
	err := Upstream("store.GetGroup", cause)

	if !errors.Is(err, cause) {
		t.Error("expected upstream error to wrap its cause")
	}
	if Upstream("op", nil) != nil {
		t.Error("expected Upstream(nil) to be nil")
	}
}

func TestValidationField(t *testing.T) {
	err := Validation("ledger.RecordPayment", "amount", "must be greater than 0, got %v", -5.0)

	if FieldOf(err) != "amount" {
		t.Errorf("FieldOf() = %q, want amount", FieldOf(err))
	}
	want := "ledger.RecordPayment: amount: must be greater than 0, got -5"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
