package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

type MailServiceInterface interface {
	SendPurchaseConfirmation(to, orderID string, templateNames []string, total string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587
	Username string
	Password string
	From     string // e.g. "no-reply@yourapp.com"
	FromName string
	AppName  string
}

type smtpMailService struct {
	cfg     SMTPConfig
	mailTpl *template.Template
}

const purchaseMailTemplate = `<html><body>
<h2>{{.AppName}} — thanks for your purchase!</h2>
<p>Order <strong>{{.OrderID}}</strong> is complete. Your downloads are now unlocked:</p>
<ul>{{range .Templates}}<li>{{.}}</li>{{end}}</ul>
<p>Total charged: <strong>${{.Total}}</strong></p>
</body></html>`

func NewSMTPMailService(cfg SMTPConfig) (MailServiceInterface, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("missing SMTP configuration")
	}
	tpl := template.Must(template.New("purchase").Parse(purchaseMailTemplate))
	return &smtpMailService{
		cfg:     cfg,
		mailTpl: tpl,
	}, nil
}

func (s *smtpMailService) SendPurchaseConfirmation(to, orderID string, templateNames []string, total string) error {
	var body bytes.Buffer
	err := s.mailTpl.Execute(&body, map[string]interface{}{
		"AppName":   s.cfg.AppName,
		"OrderID":   orderID,
		"Templates": templateNames,
		"Total":     total,
	})
	if err != nil {
		return fmt.Errorf("render purchase mail: %w", err)
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: Your %s order is complete\r\n", s.cfg.AppName))
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body.String())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send purchase mail to %s: %w", to, err)
	}
	return nil
}
