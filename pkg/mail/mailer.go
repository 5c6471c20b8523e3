package mail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
)

const (
	dialTimeout = 8 * time.Second
	sendTimeout = 15 * time.Second
)

// WelcomeData feeds the credential email sent to newly created candidates.
type WelcomeData struct {
	Name           string
	Phone          string
	Email          string
	Password       string
	PostAppliedFor string
	CompanyName    string
	LogoURL        string
	LoginURL       string
	Year           int
}

// Mailer delivers HTML mail over SMTP with STARTTLS.
type Mailer struct {
	cfg     config.SMTPConfig
	company config.CompanyConfig
	tmpl    *template.Template
}

// NewMailer parses the welcome template and returns a ready mailer.
func NewMailer(cfg config.SMTPConfig, company config.CompanyConfig) (*Mailer, error) {
	tmpl, err := template.New("welcome").Parse(welcomeTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing welcome template: %w", err)
	}
	return &Mailer{cfg: cfg, company: company, tmpl: tmpl}, nil
}

// SendWelcome renders and delivers the initial credentials email.
func (m *Mailer) SendWelcome(to string, data WelcomeData) error {
	if data.CompanyName == "" {
		data.CompanyName = m.company.Name
	}
	if data.LogoURL == "" {
		data.LogoURL = m.company.LogoURL
	}
	if data.LoginURL == "" {
		data.LoginURL = m.company.LoginURL
	}
	if data.PostAppliedFor == "" {
		data.PostAppliedFor = "Not specified"
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering welcome email: %w", err)
	}

	subject := fmt.Sprintf("Welcome to %s - Your Login Details", data.CompanyName)
	return m.send(to, subject, buf.String())
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	fromHeader := m.cfg.FromEmail
	if m.cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("dialing smtp %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(sendTimeout))

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer func() { _ = client.Quit() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("writing message: %w", err)
	}
	return w.Close()
}
