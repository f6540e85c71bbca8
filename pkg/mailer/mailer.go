package mailer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/Go4ItSports/go4it/pkg/logger"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_mailer.go -package=mocks github.com/Go4ItSports/go4it/pkg/mailer Mailer

// Message is a single outgoing email. HTML is optional; Text is always sent.
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTML     string
	Text     string
	ReplyTo  string
	Category string
}

// Validate checks the minimum a message needs to be deliverable
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("recipient is required")
	}
	if strings.TrimSpace(m.Subject) == "" && m.Category != "sms" {
		return fmt.Errorf("subject is required")
	}
	if m.HTML == "" && m.Text == "" {
		return fmt.Errorf("message body is required")
	}
	return nil
}

// Mailer sends transactional email
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds the SMTP settings
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SMTPMailer delivers through an SMTP relay
type SMTPMailer struct {
	config *Config
}

func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{config: config}
}

// BuildMessage converts a Message into a go-mail message
func (m *SMTPMailer) BuildMessage(msg Message) (*mail.Msg, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	out := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := out.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return nil, fmt.Errorf("failed to set email from address: %w", err)
	}

	if msg.ToName != "" {
		if err := out.AddToFormat(msg.ToName, msg.To); err != nil {
			return nil, fmt.Errorf("failed to set email recipient: %w", err)
		}
	} else if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("failed to set email recipient: %w", err)
	}

	if msg.ReplyTo != "" {
		if err := out.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("failed to set reply-to: %w", err)
		}
	}

	out.Subject(msg.Subject)

	switch {
	case msg.HTML != "" && msg.Text != "":
		out.SetBodyString(mail.TypeTextHTML, msg.HTML)
		out.AddAlternativeString(mail.TypeTextPlain, msg.Text)
	case msg.HTML != "":
		out.SetBodyString(mail.TypeTextHTML, msg.HTML)
	default:
		out.SetBodyString(mail.TypeTextPlain, msg.Text)
	}

	return out, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out, err := m.BuildMessage(msg)
	if err != nil {
		return err
	}

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// unauthenticated relays are allowed
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}

// ConsoleMailer logs messages instead of sending them, used in development
type ConsoleMailer struct {
	logger logger.Logger

	mu   sync.Mutex
	sent []Message
}

func NewConsoleMailer(log logger.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: log}
}

func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()

	body := msg.Text
	if body == "" {
		body = msg.HTML
	}
	m.logger.WithFields(map[string]interface{}{
		"to":       msg.To,
		"subject":  msg.Subject,
		"category": msg.Category,
	}).Info(fmt.Sprintf("Email (not sent):\n%s", body))
	return nil
}

// Sent returns a copy of every message handed to the console mailer
func (m *ConsoleMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
