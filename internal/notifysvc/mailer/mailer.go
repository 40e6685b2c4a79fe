// Package mailer turns a transaction status change into the customer
// email for it, if the status has one. PENDING and CANCELLED transitions
// are deliberately silent.
package mailer

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

// Template is the canned subject/message pair for one status transition.
type Template struct {
	Subject string
	Message string
}

var depositTemplates = map[string]Template{
	"COMPLETED": {
		Subject: "Your deposit was successful!",
		Message: "The funds have been added to your balance.",
	},
	"FAILED": {
		Subject: "Deposit failed",
		Message: "Unfortunately your deposit could not be processed. Please contact support if funds left your account.",
	},
	"REFUND": {
		Subject: "Deposit refunded",
		Message: "Your deposit has been refunded to the originating account.",
	},
	"IN_REVIEW": {
		Subject: "Deposit under review",
		Message: "Your deposit is being reviewed by our compliance team. We will update you shortly.",
	},
}

var withdrawTemplates = map[string]Template{
	"COMPLETED": {
		Subject: "Withdrawal completed",
		Message: "Your withdrawal has been processed and the funds are on their way.",
	},
	"FAILED": {
		Subject: "Withdrawal failed",
		Message: "Unfortunately your withdrawal could not be processed. The amount remains on your balance.",
	},
	"REFUND": {
		Subject: "Withdrawal refunded",
		Message: "Your withdrawal was returned and the amount has been credited back to your balance.",
	},
	"IN_REVIEW": {
		Subject: "Withdrawal under review",
		Message: "Your withdrawal is being reviewed by our compliance team. We will update you shortly.",
	},
}

// TemplateFor returns the email template for a transaction type and
// status, or false when that transition sends no email.
func TemplateFor(transactionType, status string) (Template, bool) {
	var t Template
	var ok bool
	switch transactionType {
	case "WITHDRAW":
		t, ok = withdrawTemplates[status]
	default:
		t, ok = depositTemplates[status]
	}
	return t, ok
}

type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	logoPath string
}

// FromEnv builds the SMTP mailer from SMTP_HOST, SMTP_PORT, SMTP_USER,
// SMTP_PASSWORD, MAIL_FROM and MAIL_LOGO_PATH.
func FromEnv() (*Mailer, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST is not set")
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	return &Mailer{
		dialer:   gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:     os.Getenv("MAIL_FROM"),
		logoPath: os.Getenv("MAIL_LOGO_PATH"),
	}, nil
}

// Send renders the HTML body and delivers one email.
func (m *Mailer) Send(to, fullName string, t Template, transactionID, amount string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", t.Subject)
	msg.SetBody("text/html", renderBody(fullName, t, transactionID, amount))

	if m.logoPath != "" {
		if _, err := os.Stat(m.logoPath); err == nil {
			msg.Embed(m.logoPath)
		} else {
			log.Warnf("mail logo not found at %s, sending without it", m.logoPath)
		}
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func renderBody(fullName string, t Template, transactionID, amount string) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <img src="cid:logo.png" alt="FinPay" height="40"/>
  <h2>%s</h2>
  <p>Hi %s,</p>
  <p>%s</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Transaction</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Amount</td><td>%s</td></tr>
  </table>
  <p style="color: #999; font-size: 12px;">If you did not expect this email, please contact support immediately.</p>
</body>
</html>`, t.Subject, fullName, t.Message, transactionID, amount)
}
