// Package handoff builds the channel links offered once a lead has been
// submitted: a pre-filled WhatsApp message, an email address and a phone
// number. Pure construction, no network access.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atlasdmc/leadbot/internal/catalog"
	"github.com/atlasdmc/leadbot/internal/lead"
)

// Builder constructs hand-off channels from a completed profile.
type Builder struct {
	catalog        *catalog.Catalog
	whatsAppNumber string
	email          string
	phone          string
}

// Channels is what the terminal step offers the visitor.
type Channels struct {
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// NewBuilder creates a hand-off builder. Empty channel values simply drop
// that channel from the offer.
func NewBuilder(c *catalog.Catalog, whatsAppNumber, email, phone string) *Builder {
	return &Builder{
		catalog:        c,
		whatsAppNumber: whatsAppNumber,
		email:          email,
		phone:          phone,
	}
}

// Message renders the pre-filled chat message summarizing the lead in the
// visitor's locale.
func (b *Builder) Message(p *lead.Profile, refID, locale string) string {
	l := b.catalog.Locale(locale)

	dates := p.Dates
	if p.FlexibleDates {
		dates = fmt.Sprintf("%s (%s)", dates, strings.ToLower(l.FlexibleLabel))
	}

	return fmt.Sprintf(l.HandoffTemplate,
		refID,
		b.labels(locale, catalog.StepEventType, p.EventTypes),
		b.labels(locale, catalog.StepCity, p.Cities),
		b.catalog.Label(locale, catalog.StepGroupSize, p.GroupSize),
		dates,
	)
}

// Channels builds the full hand-off offer for a submitted lead.
func (b *Builder) Channels(p *lead.Profile, refID, locale string) Channels {
	ch := Channels{
		Email: b.email,
		Phone: b.phone,
	}
	if b.whatsAppNumber != "" {
		number := strings.TrimPrefix(b.whatsAppNumber, "+")
		ch.WhatsAppURL = fmt.Sprintf("https://wa.me/%s?text=%s",
			number, url.QueryEscape(b.Message(p, refID, locale)))
	}
	return ch
}

func (b *Builder) labels(locale string, step catalog.StepKey, ids []string) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, b.catalog.Label(locale, step, id))
	}
	return strings.Join(labels, ", ")
}
