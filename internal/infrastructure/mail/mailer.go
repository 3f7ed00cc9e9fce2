package mail

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"task-manager-api/config"
)

// Mailer dispatches the account-verification email over SMTP.
type Mailer struct {
	cfg       config.SMTP
	publicURL string
	log       *zap.Logger
}

func New(cfg config.SMTP, publicURL string, logger *zap.Logger) *Mailer {
	return &Mailer{
		cfg:       cfg,
		publicURL: publicURL,
		log:       logger,
	}
}

func (m *Mailer) SendVerification(name, email, userID string) error {
	if m.cfg.Host == "" || m.cfg.User == "" || m.cfg.From == "" {
		m.log.Warn("smtp config missing, skip verification email")
		return nil
	}
	if strings.TrimSpace(email) == "" {
		m.log.Warn("email recipient empty, skip verification email")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", fmt.Sprintf("%s - Verify your account", name))
	msg.SetBody("text/html", m.buildHTMLBody(name, userID))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.log.Info("verification email sent", zap.String("to", email))
	return nil
}

// VerifyLink is exposed so tests can assert the exact link mailed out.
func (m *Mailer) VerifyLink(userID string) string {
	return fmt.Sprintf("%s/users/verify/%s", strings.TrimRight(m.publicURL, "/"), userID)
}

func (m *Mailer) buildHTMLBody(name, userID string) string {
	link := m.VerifyLink(userID)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #eceff1;">
  <table border="0" cellpadding="0" cellspacing="0" width="100%%" style="padding: 30px;">
    <tr>
      <td bgcolor="#ffffff" style="padding: 40px;">
        <h2 style="margin: 0; font-size: 24px; color: #333333;">Hello %s,</h2>
        <p style="margin-top: 20px; font-size: 16px; color: #666666;">Thank you for signing up with us. Please verify your email address by clicking the button below:</p>
        <p style="margin-top: 20px;">
          <a href="%s" target="_blank" style="display: inline-block; padding: 12px 24px; background-color: #007bff; color: #ffffff; text-decoration: none; border-radius: 5px; font-size: 16px;">Confirm your email</a>
        </p>
        <p style="margin-top: 20px; font-size: 16px; color: #666666;">If the button above doesn't work, copy and paste the following link into your browser:</p>
        <p style="margin-top: 10px; font-size: 16px;"><a href="%s" target="_blank">%s</a></p>
        <p style="margin-top: 20px; font-size: 16px; color: #666666;">Thank you for choosing our service!</p>
      </td>
    </tr>
  </table>
</body>
</html>`, name, link, link, link)
}
