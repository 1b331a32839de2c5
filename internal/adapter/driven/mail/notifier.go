package mail

import (
	"context"
	"fmt"
	"os"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/diillson/evcc-charging-report/internal/domain/repository"
	"github.com/diillson/evcc-charging-report/internal/shared/types"
)

// SMTPNotifier sends the report over an authenticated, STARTTLS-upgraded
// SMTP connection. Incomplete configuration downgrades every send to a
// logged skip; the notifier never fails the run.
type SMTPNotifier struct {
	cfg    *types.Config
	logger *zap.Logger
}

// NewSMTPNotifier cria um novo Notifier SMTP.
func NewSMTPNotifier(cfg *types.Config, logger *zap.Logger) repository.Notifier {
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

// Send mails a plain-text message with the report attached.
func (n *SMTPNotifier) Send(ctx context.Context, subject, body, attachmentPath string) error {
	if !n.cfg.EmailConfigured() {
		n.logger.Warn("email credentials or server details are incomplete, email will not be sent")
		return nil
	}

	if _, err := os.Stat(attachmentPath); err != nil {
		return fmt.Errorf("could not read attachment %q: %w", attachmentPath, err)
	}

	n.logger.Info("preparing email", zap.String("recipient", n.cfg.RecipientEmail))

	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.SenderEmail); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(n.cfg.RecipientEmail); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	msg.AttachFile(attachmentPath)

	client, err := gomail.NewClient(n.cfg.SMTPServer,
		gomail.WithPort(n.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.SenderEmail),
		gomail.WithPassword(n.cfg.SenderPassword),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("configuring SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	n.logger.Info("email sent successfully")
	return nil
}
