package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"siris-blog/models"
)

// Subject is set on every contact message.
const Subject = "New Contact Form Submission for Siris's Blog"

// DefaultTimeout bounds dialing and the SMTP conversation.
const DefaultTimeout = 15 * time.Second

// Config describes the outbound relay and the sender/recipient identities.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
	Timeout  time.Duration

	// TLSConfig replaces the STARTTLS client config; nil verifies against Host.
	TLSConfig *tls.Config
}

// Dispatcher sends contact submissions over an authenticated STARTTLS session.
// A new session is opened for each message and closed on every path.
type Dispatcher struct {
	cfg   Config
	quota *SendQuota
}

func NewDispatcher(cfg Config, quota *SendQuota) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Dispatcher{cfg: cfg, quota: quota}
}

// ComposeBody renders the plaintext body of a contact message.
func ComposeBody(sub models.ContactSubmission) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage: %s",
		sub.Name, sub.Email, sub.Phone, sub.Message)
}

func (d *Dispatcher) newMessage(sub models.ContactSubmission) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(d.cfg.From); err != nil {
		return nil, fmt.Errorf("set sender %q: %w", d.cfg.From, err)
	}
	if err := m.To(d.cfg.To); err != nil {
		return nil, fmt.Errorf("set recipient %q: %w", d.cfg.To, err)
	}
	m.Subject(Subject)
	m.SetBodyString(mail.TypeTextPlain, ComposeBody(sub))
	return m, nil
}

func (d *Dispatcher) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(d.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
		mail.WithTimeout(d.cfg.Timeout),
	}
	if d.cfg.TLSConfig != nil {
		opts = append(opts, mail.WithTLSConfig(d.cfg.TLSConfig))
	}
	return mail.NewClient(d.cfg.Host, opts...)
}

// Send delivers sub to the configured recipient.
// A send that fails gives its quota slot back.
func (d *Dispatcher) Send(ctx context.Context, sub models.ContactSubmission) error {
	msg, err := d.newMessage(sub)
	if err != nil {
		return err
	}

	if err := d.quota.Reserve(ctx); err != nil {
		return err
	}

	client, err := d.newClient()
	if err != nil {
		d.quota.Release()
		return fmt.Errorf("create smtp client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		d.quota.Release()
		return fmt.Errorf("send via %s:%d: %w", d.cfg.Host, d.cfg.Port, err)
	}
	return nil
}
