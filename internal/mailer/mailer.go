package mailer

import (
	"log"
	"net/smtp"
)

// 確認メールの送信口。
type Mailer interface {
	SendVerificationCode(toEmail string, code string) error
}

type SMTPMailer struct {
	host string
	port string
	from string
	pass string
}

func NewSMTPMailer(host, port, from, pass string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, pass: pass}
}

func (m *SMTPMailer) SendVerificationCode(toEmail string, code string) error {
	msg := []byte("Subject: Email Verification\n\nYour verification code is: " + code)

	auth := smtp.PlainAuth("", m.from, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{toEmail}, msg)
}

// SMTP未設定の開発環境向け。コードをログに出すだけ。
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendVerificationCode(toEmail string, code string) error {
	log.Printf("verification code for %s: %s", toEmail, code)
	return nil
}
