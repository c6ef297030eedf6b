package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/mmynk/tontine/internal/errs"
)

type groupInput struct {
	Name      string
	Amount    float64
	Frequency string
	StartDate string
	EndDate   string
	Email     string
}

func validInput() groupInput {
	return groupInput{
		Name:      "Family",
		Amount:    1000,
		Frequency: "monthly",
		StartDate: "2026-01-01",
	}
}

func (in groupInput) check() error {
	return Fields("test",
		F("name", in.Name, "notblank,max=100"),
		F("amount", in.Amount, "gt=0"),
		F("frequency", in.Frequency, "frequency"),
		F("start_date", in.StartDate, "date"),
		F("end_date", in.EndDate, "omitempty,date"),
		F("email", in.Email, "omitempty,email"),
	)
}

func TestFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*groupInput)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid",
			mutate: func(*groupInput) {},
		},
		{
			name:      "blank name",
			mutate:    func(in *groupInput) { in.Name = "   " },
			wantField: "name",
			wantMsg:   "cannot be blank",
		},
		{
			name:      "long name",
			mutate:    func(in *groupInput) { in.Name = strings.Repeat("x", 101) },
			wantField: "name",
			wantMsg:   "100",
		},
		{
			name:      "zero amount",
			mutate:    func(in *groupInput) { in.Amount = 0 },
			wantField: "amount",
			wantMsg:   "greater than 0",
		},
		{
			name:      "unknown frequency",
			mutate:    func(in *groupInput) { in.Frequency = "daily" },
			wantField: "frequency",
			wantMsg:   "must be one of",
		},
		{
			name:      "bad start date",
			mutate:    func(in *groupInput) { in.StartDate = "01/02/2026" },
			wantField: "start_date",
			wantMsg:   "YYYY-MM-DD",
		},
		{
			name:   "empty optional end date",
			mutate: func(in *groupInput) { in.EndDate = "" },
		},
		{
			name:      "bad optional end date",
			mutate:    func(in *groupInput) { in.EndDate = "2026-13-01" },
			wantField: "end_date",
		},
		{
			name:      "bad email",
			mutate:    func(in *groupInput) { in.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name: "first failure wins",
			mutate: func(in *groupInput) {
				in.Name = ""
				in.Amount = -1
			},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.check()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Fields() error = %v, want nil", err)
				}
				return
			}
			if !errs.Is(err, errs.KindValidation) {
				t.Fatalf("Fields() error = %v, want validation error", err)
			}
			if got := errs.FieldOf(err); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestFields_Required(t *testing.T) {
	err := Fields("test", F("cycle_id", "c1", "required"), F("member_id", "", "required"))
	if !errs.Is(err, errs.KindValidation) || errs.FieldOf(err) != "member_id" {
		t.Fatalf("Fields() error = %v, want validation error on member_id", err)
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("error %q does not mention required", err.Error())
	}
	if strings.Contains(err.Error(), "  ") {
		t.Errorf("error %q has a doubled space from the empty field name", err.Error())
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("test", "payout_date", "2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	got, err = ParseDate("test", "payout_date", "")
	if err != nil || !got.IsZero() {
		t.Errorf("ParseDate(\"\") = %v, %v; want zero time, nil", got, err)
	}

	_, err = ParseDate("test", "payout_date", "March 15")
	if !errs.Is(err, errs.KindValidation) || errs.FieldOf(err) != "payout_date" {
		t.Errorf("ParseDate(bad) error = %v, want validation error on payout_date", err)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
	d := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-10-01" {
		t.Errorf("FormatDate() = %q, want 2026-10-01", got)
	}
}
