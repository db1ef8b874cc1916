package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/siddarthan007/laf/internal/config"
	"github.com/siddarthan007/laf/internal/model"
)

// Mailer delivers notifications over SMTP.
type Mailer struct {
	cfg config.SMTP
}

// NewMailer creates an SMTP notifier.
func NewMailer(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) MatchCreated(_ context.Context, match *model.Match, lostItem, foundItem *model.Item, loser, finder *model.User) error {
	summary := fmt.Sprintf(
		"Match confidence: %.0f%%\n\nLost item: %s\nLast seen: %s\n\nFound item: %s\nFound at: %s\n",
		match.ConfidenceScore*100,
		lostItem.Description, lostItem.Location,
		foundItem.Description, foundItem.Location,
	)

	loserBody := fmt.Sprintf(
		"Hi %s,\n\nWe may have found your lost item.\n\n%s\nSign in to the Lost & Found portal to approve or reject this match.\n",
		loser.Name, summary,
	)
	finderBody := fmt.Sprintf(
		"Hi %s,\n\nYour reported item might belong to someone. Once the owner approves the match we will share their contact details.\n\n%s\nNo action is needed yet.\n",
		finder.Name, summary,
	)

	if err := m.send(loser.Email, "Potential match found for your lost item", loserBody); err != nil {
		return err
	}
	return m.send(finder.Email, "Item match awaiting confirmation", finderBody)
}

func (m *Mailer) MatchApproved(_ context.Context, match *model.Match, loserContact, finderContact model.Contact) error {
	loserBody := fmt.Sprintf(
		"Hi %s,\n\nYour item has been matched. Contact the finder to arrange pickup:\n\nName: %s\nEmail: %s\nContact number: %s\n",
		loserContact.Name, finderContact.Name, finderContact.Email, finderContact.ContactNumber,
	)
	finderBody := fmt.Sprintf(
		"Hi %s,\n\nThe owner approved the match. Their contact details:\n\nName: %s\nEmail: %s\nContact number: %s\n",
		finderContact.Name, loserContact.Name, loserContact.Email, loserContact.ContactNumber,
	)

	if err := m.send(loserContact.Email, "Your lost item has been found", loserBody); err != nil {
		return err
	}
	return m.send(finderContact.Email, "Lost & Found match confirmed", finderBody)
}

func (m *Mailer) send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("sending %q: empty recipient", subject)
	}

	msg := buildMessage(m.cfg.SenderName, m.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}

// buildMessage assembles an RFC 5322 plain-text message.
func buildMessage(senderName, from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", senderName, from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
