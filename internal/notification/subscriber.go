package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/job-portal/internal/core/events"
)

// Subscriber turns account events into outbound mail. It owns no state
// beyond the mailer and never fails the publishing side.
type Subscriber struct {
	mailer Mailer
	logger *slog.Logger
}

func NewSubscriber(mailer Mailer, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		mailer: mailer,
		logger: logger,
	}
}

// Register wires the subscriber to the bus.
func (s *Subscriber) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventUserRegistered, s.HandleUserRegistered)
	bus.Subscribe(events.EventPasswordResetRequested, s.HandlePasswordResetRequested)
}

func (s *Subscriber) HandleUserRegistered(ctx context.Context, event events.Event) error {
	data, ok := event.Payload().(map[string]interface{})
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.EventType())
	}

	email, _ := data["email"].(string)
	firstName, _ := data["first_name"].(string)
	if email == "" {
		return fmt.Errorf("registration event %s has no email", event.EventID())
	}

	greeting := firstName
	if greeting == "" {
		greeting = "there"
	}

	body := fmt.Sprintf("Hi %s,\r\n\r\nYour account has been created. You can now sign in and start using the portal.\r\n", greeting)
	if err := s.mailer.Send(email, "Welcome aboard", body); err != nil {
		s.logger.Error("failed to send welcome mail", "event_id", event.EventID(), "error", err)
		return err
	}

	s.logger.Info("welcome mail sent", "event_id", event.EventID())
	return nil
}

func (s *Subscriber) HandlePasswordResetRequested(ctx context.Context, event events.Event) error {
	data, ok := event.Payload().(map[string]interface{})
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.EventType())
	}

	email, _ := data["email"].(string)
	resetURL, _ := data["reset_url"].(string)
	if email == "" || resetURL == "" {
		return fmt.Errorf("reset event %s is missing email or link", event.EventID())
	}

	body := fmt.Sprintf("A password reset was requested for your account.\r\n\r\nFollow this link to choose a new password:\r\n%s\r\n\r\nIf you did not request this, you can ignore this mail.\r\n", resetURL)
	if err := s.mailer.Send(email, "Password reset", body); err != nil {
		s.logger.Error("failed to send reset mail", "event_id", event.EventID(), "error", err)
		return err
	}

	s.logger.Info("reset mail sent", "event_id", event.EventID())
	return nil
}
