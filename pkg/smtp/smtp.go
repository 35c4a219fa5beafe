package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendHandoffAlert(visitorMessage string) error
}

type smtp struct {
	auth    smtpPkg.Auth
	mail    string
	supInbox string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	auth := smtpPkg.PlainAuth("", mail, password, "smtp.gmail.com")

	supInbox := os.Getenv("SUPPORT_INBOX")
	if supInbox == "" {
		supInbox = mail
	}

	return &smtp{auth: auth, mail: mail, supInbox: supInbox}
}

// SendHandoffAlert mails the support inbox so an agent can pick up the
// conversation the visitor just escalated.
func (s *smtp) SendHandoffAlert(visitorMessage string) error {
	to := []string{s.supInbox}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Chat handoff requested\r\n\r\nA visitor asked for a human agent.\r\n\r\nLast message: %s\r\n",
		s.supInbox, visitorMessage))

	if err := smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
