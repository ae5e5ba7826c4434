package ports

import (
	"context"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// ContactInput is a validated contact-form submission.
type ContactInput struct {
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	ReceivedAt time.Time
}

// ContactService archives a submission and relays it to the configured
// email/form endpoint. Relay failure is absorbed; archiving failure is the
// only reportable error.
type ContactService interface {
	Submit(ctx context.Context, input ContactInput) error
}

// ContactRepository persists contact messages.
type ContactRepository interface {
	Save(ctx context.Context, msg *domain.ContactMessage) error
}

// MailRelay hands a submission to the external form-to-email service.
type MailRelay interface {
	Send(ctx context.Context, input ContactInput) error
}
