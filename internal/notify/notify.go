package notify

import (
	"fmt"
	"time"

	"campusride/internal/config"
	"campusride/internal/utils"

	"gopkg.in/gomail.v2"
)

// Message is the contract with the mail transport: subject plus an HTML body.
type Message struct {
	Subject string
	HTML    string
}

// Sender performs a single delivery attempt.
type Sender interface {
	Send(to string, msg Message) error
}

// SMTPSender delivers through the configured SMTP relay. A fresh dial per
// send keeps the gateway free of shared connection state.
type SMTPSender struct {
	cfg config.SMTP
}

func NewSMTPSender(cfg config.SMTP) SMTPSender {
	return SMTPSender{cfg: cfg}
}

func (s SMTPSender) Send(to string, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	return d.DialAndSend(m)
}

// Notifier wraps a Sender with bounded retry and a per-attempt timeout.
// Delivery is best-effort: callers fire it after their transaction commits
// and only ever observe the outcome through logs.
type Notifier struct {
	Sender  Sender
	Retries int
	Backoff time.Duration
	Timeout time.Duration
}

func NewNotifier(sender Sender) *Notifier {
	return &Notifier{
		Sender:  sender,
		Retries: 2,
		Backoff: 2 * time.Second,
		Timeout: 15 * time.Second,
	}
}

// Send attempts delivery up to Retries+1 times with linear backoff.
func (n *Notifier) Send(requestID, to string, msg Message) error {
	var lastErr error
	for attempt := 1; attempt <= n.Retries+1; attempt++ {
		if err := n.sendOnce(to, msg); err != nil {
			lastErr = err
			utils.LogError(requestID, "notify", "send_attempt", fmt.Errorf("attempt %d to=%s: %w", attempt, to, err))
			if attempt <= n.Retries {
				time.Sleep(n.Backoff * time.Duration(attempt))
			}
			continue
		}
		utils.LogEvent(requestID, "notify", "sent", fmt.Sprintf("to=%s subject=%q attempt=%d", to, msg.Subject, attempt))
		return nil
	}
	return fmt.Errorf("email to %s failed after %d attempts: %w", to, n.Retries+1, lastErr)
}

func (n *Notifier) sendOnce(to string, msg Message) error {
	if n.Timeout <= 0 {
		return n.Sender.Send(to, msg)
	}
	done := make(chan error, 1)
	go func() { done <- n.Sender.Send(to, msg) }()
	select {
	case err := <-done:
		return err
	case <-time.After(n.Timeout):
		return fmt.Errorf("send timed out after %s", n.Timeout)
	}
}
