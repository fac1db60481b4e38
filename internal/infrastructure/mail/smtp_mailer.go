package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"cropsight/internal/domain/service"
)

// SMTPMailer sends transactional HTML mail over plain SMTP. All callers treat
// sends as best-effort.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPMailer(host, port, username, password, from string) service.Mailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	body := strings.NewReplacer("{{USERNAME}}", name, "{{EMAIL}}", to).Replace(welcomeTemplate)
	return m.send(ctx, to, "Welcome To Cropsight", body)
}

func (m *SMTPMailer) SendVerifyOTP(ctx context.Context, to, name, otp string) error {
	body := strings.NewReplacer("{{USERNAME}}", name, "{{OTP}}", otp).Replace(verifyOTPTemplate)
	return m.send(ctx, to, "OTP for Email Verification", body)
}

func (m *SMTPMailer) SendResetOTP(ctx context.Context, to, name, otp string) error {
	body := strings.NewReplacer("{{USERNAME}}", name, "{{OTP}}", otp).Replace(resetOTPTemplate)
	return m.send(ctx, to, "Password Reset OTP", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody + "\r\n")

	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, msg)
}
