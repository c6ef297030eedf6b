package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendGridNotifier emails reminders through the SendGrid v3 API.
type SendGridNotifier struct {
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
}

// NewSendGridNotifier creates a notifier sending from fromAddress.
func NewSendGridNotifier(apiKey, appName, fromAddress string) *SendGridNotifier {
	return &SendGridNotifier{
		key:        apiKey,
		host:       sendgridHost,
		from:       sgmail.NewEmail(appName, fromAddress),
		subjPrefix: "[" + appName + "] ",
	}
}

// SendReminders sends one email per reminder with an email address and
// keeps going past failures. Members without an email are skipped and
// left out of the result.
func (n *SendGridNotifier) SendReminders(ctx context.Context, reminders []Reminder) ([]Reminder, error) {
	var (
		sent     []Reminder
		failures []error
	)
	for _, r := range reminders {
		if r.Email == "" {
			slog.Debug("Skipping reminder without email", "member_id", r.MemberID)
			continue
		}
		if err := n.send(ctx, n.prepare(r)); err != nil {
			failures = append(failures, fmt.Errorf("failed to send reminder to member %s: %w", r.MemberID, err))
			continue
		}
		sent = append(sent, r)
	}
	return sent, errors.Join(failures...)
}

func (n *SendGridNotifier) prepare(r Reminder) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = fmt.Sprintf("%sContribution due for %s, cycle %d", n.subjPrefix, r.GroupName, r.CycleNumber)
	p.AddTos(sgmail.NewEmail(r.Name, r.Email))

	text := fmt.Sprintf("Hi %s,\n\nYour contribution of %.2f to %s for cycle %d is still pending.",
		r.Name, r.Amount, r.GroupName, r.CycleNumber)
	if !r.DueDate.IsZero() {
		text += fmt.Sprintf(" The payout date is %s.", r.DueDate.Format("Jan 2, 2006"))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(n.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", text))
	return m
}

func (n *SendGridNotifier) send(ctx context.Context, m *sgmail.SGMailV3) error {
	req := sendgrid.GetRequest(n.key, sendgridEndpoint, n.host)
	req.Method = rest.Post
	req.Body = sgmail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
