package mail

import (
	"fmt"
	"net/smtp"
)

// Sender delivers a single message. Split from the dispatcher so tests can
// substitute a fake.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPClient struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPClient(host, port, username, password, from string) *SMTPClient {
	return &SMTPClient{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (c *SMTPClient) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		c.from, to, subject, body)

	return smtp.SendMail(
		c.host+":"+c.port,
		smtp.PlainAuth("", c.username, c.password, c.host),
		c.from,
		[]string{to},
		[]byte(msg),
	)
}
