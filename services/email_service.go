package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
	"pedaltrack-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}

	if cfg.SMTPHost != "" {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}

	return service
}

// Enabled reports whether outgoing mail is configured.
func (es *EmailService) Enabled() bool {
	return es.dialer != nil
}

// Send welcome email to a newly registered user
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	if !es.Enabled() {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to PedalTrack")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #2f855a; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🚴 PedalTrack</h1>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Your PedalTrack account is ready. Register your bikes, log your
            kilometres and keep the maintenance checklist up to date.</p>
        </div>
        <div class="footer">
            <p>You received this email because an account was created with this address.</p>
        </div>
    </div>
</body>
</html>`, name)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
