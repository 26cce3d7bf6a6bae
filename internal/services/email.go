package services

import (
	"context"
	"fmt"
	"log/slog"

	"campusevents/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRegistrationConfirmation sends the confirmation email using the
// "registration_confirmation" template and the given data.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render registration_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	s.logger.Info("confirmation email sent", "to", data.Email, "ticket", data.Ticket)
	return nil
}

type emailNotifier struct {
	emails domain.EmailService
}

// NewEmailNotifier adapts the EmailService into the post-registration
// notification port consumed by the registration service.
func NewEmailNotifier(emails domain.EmailService) domain.RegistrationNotifier {
	return &emailNotifier{emails: emails}
}

func (n *emailNotifier) NotifyRegistered(ctx context.Context, ev *domain.Event, reg *domain.Registration) error {
	return n.emails.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{
		Email:      reg.Email,
		Name:       reg.Name,
		EventTitle: ev.Title,
		EventDate:  ev.DateStart.Format("January 2, 2006"),
		Location:   ev.Location,
		Ticket:     reg.Ticket,
	})
}
