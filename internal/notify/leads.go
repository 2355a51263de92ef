// Package notify emails the sales team about freshly submitted leads.
// Best-effort: a delivery failure is logged and never surfaced to the
// visitor.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlasdmc/leadbot/internal/catalog"
	"github.com/atlasdmc/leadbot/internal/lead"
	"github.com/atlasdmc/leadbot/pkg/logging"
)

// LeadNotifier formats and sends the new-lead summary email.
type LeadNotifier struct {
	sender  EmailSender
	catalog *catalog.Catalog
	to      string
	logger  *logging.Logger
}

// NewLeadNotifier creates a lead notifier. Returns nil when either the
// sender or the recipient is missing, so callers can skip the nil check
// chain and just guard once.
func NewLeadNotifier(sender EmailSender, c *catalog.Catalog, to string, logger *logging.Logger) *LeadNotifier {
	if sender == nil || to == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadNotifier{sender: sender, catalog: c, to: to, logger: logger}
}

// NotifyLead sends the summary. Safe on a nil receiver.
func (n *LeadNotifier) NotifyLead(ctx context.Context, p lead.Profile, refID, locale string) {
	if n == nil {
		return
	}
	msg := EmailMessage{
		To:      n.to,
		Subject: fmt.Sprintf("New lead %s - %s", refID, p.Company),
		Body:    n.formatBody(p, refID, locale),
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		n.logger.Error("notify: lead email failed", "error", err, "reference_id", refID)
		return
	}
	n.logger.Info("notify: lead email sent", "reference_id", refID)
}

// formatBody renders the summary with canonical (default-locale) labels so
// the sales inbox reads consistently regardless of the visitor's language.
func (n *LeadNotifier) formatBody(p lead.Profile, refID, locale string) string {
	def := n.catalog.DefaultLocale()

	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", refID)
	fmt.Fprintf(&b, "Company: %s\n", p.Company)
	fmt.Fprintf(&b, "Contact: %s %s <%s>\n", p.FirstName, p.LastName, p.Email)
	if p.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", p.Phone)
	}
	fmt.Fprintf(&b, "Event types: %s\n", n.labels(def, catalog.StepEventType, p.EventTypes))
	fmt.Fprintf(&b, "Destinations: %s\n", n.labels(def, catalog.StepCity, p.Cities))
	fmt.Fprintf(&b, "Group size: %s\n", n.catalog.Label(def, catalog.StepGroupSize, p.GroupSize))
	dates := p.Dates
	if p.FlexibleDates {
		dates += " (flexible)"
	}
	fmt.Fprintf(&b, "Dates: %s\n", dates)
	fmt.Fprintf(&b, "Budget: %s\n", n.catalog.Label(def, catalog.StepBudget, p.Budget))
	fmt.Fprintf(&b, "Special requirements: %s\n", p.SpecialNeeds)
	fmt.Fprintf(&b, "Widget language: %s\n", locale)
	return b.String()
}

func (n *LeadNotifier) labels(locale string, step catalog.StepKey, ids []string) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, n.catalog.Label(locale, step, id))
	}
	return strings.Join(labels, ", ")
}
