package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/api/metrics"
	"github.com/tigrisline/tracking-gateway/internal/core/domain"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

type contactService struct {
	repo  ports.ContactRepository // nil when the archive is unavailable
	relay ports.MailRelay
	log   zerolog.Logger
}

// NewContactService returns a ContactService that archives submissions and
// relays them to the form-to-email endpoint. Either collaborator may be nil;
// the pipeline degrades rather than refusing submissions.
func NewContactService(repo ports.ContactRepository, relay ports.MailRelay, log zerolog.Logger) ports.ContactService {
	return &contactService{repo: repo, relay: relay, log: log}
}

// Submit archives the message, then hands it to the relay. The relay is
// fire-and-forget: its failure is logged and counted, never returned, so the
// submitter is not bounced because a third-party mail hop hiccuped.
func (s *contactService) Submit(ctx context.Context, in ports.ContactInput) error {
	msg := &domain.ContactMessage{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Subject:    in.Subject,
		Message:    in.Message,
		ReceivedAt: in.ReceivedAt,
	}

	if s.repo != nil {
		if err := s.repo.Save(ctx, msg); err != nil {
			metrics.ContactSubmissionsTotal.WithLabelValues("archive_failed").Inc()
			s.log.Error().Err(err).Str("email", in.Email).Msg("failed to archive contact message")
			// Keep going: the relay may still deliver it.
		} else {
			metrics.ContactSubmissionsTotal.WithLabelValues("archived").Inc()
		}
	}

	if s.relay == nil {
		return fmt.Errorf("submit contact: no relay configured")
	}
	if err := s.relay.Send(ctx, in); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("relay_failed").Inc()
		s.log.Warn().Err(err).Str("email", in.Email).Msg("contact relay failed")
		return nil
	}
	metrics.ContactSubmissionsTotal.WithLabelValues("relayed").Inc()
	s.log.Info().Str("email", in.Email).Msg("contact message relayed")
	return nil
}
