package webchat

import (
	"errors"

	"github.com/atlasdmc/leadbot/internal/engine"
	"github.com/atlasdmc/leadbot/internal/faq"
	"github.com/atlasdmc/leadbot/internal/lead"
)

// InboundEvent is what the widget sends.
type InboundEvent struct {
	Type      string             `json:"type"`
	SessionID string             `json:"session_id,omitempty"`
	Locale    string             `json:"locale,omitempty"`
	OptionID  string             `json:"option_id,omitempty"`
	Category  string             `json:"category,omitempty"`
	Text      string             `json:"text,omitempty"`
	Flexible  bool               `json:"flexible,omitempty"`
	Granted   bool               `json:"granted,omitempty"`
	Contact   *lead.ContactInput `json:"contact,omitempty"`
}

// Inbound event types.
const (
	EventStart     = "start"
	EventFAQ       = "faq"
	EventFAQFilter = "faq_filter"
	EventFAQBack   = "faq_back"
	EventToggle    = "toggle"
	EventContinue  = "continue"
	EventSelect    = "select"
	EventText      = "text"
	EventContact   = "contact"
	EventConsent   = "consent"
	EventSubmit    = "submit"
	EventLocale    = "locale"
	EventPing      = "ping"
)

// OutboundFrame is what we send to the widget.
type OutboundFrame struct {
	Type      string           `json:"type"` // "session", "update", "error", "pong"
	SessionID string           `json:"session_id,omitempty"`
	Messages  []engine.Message `json:"messages,omitempty"`
	View      *engine.View     `json:"view,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func updateFrame(upd *engine.Update) OutboundFrame {
	view := upd.View
	return OutboundFrame{Type: "update", Messages: upd.Messages, View: &view}
}

// localizeError maps engine/validation errors to the visitor-facing string
// of the session's locale. Unknown errors get the generic submission text;
// they never leak internals.
func localizeError(e *engine.Engine, err error) string {
	l := e.Content()
	switch {
	case errors.Is(err, lead.ErrEmptySelection):
		return l.EmptySelection
	case errors.Is(err, lead.ErrInvalidEmail):
		return l.InvalidEmail
	case errors.Is(err, lead.ErrMissingCompany),
		errors.Is(err, lead.ErrMissingName),
		errors.Is(err, lead.ErrMissingEmail):
		return l.RequiredFields
	case errors.Is(err, engine.ErrEmptyInput):
		return l.AnswerRequired
	case errors.Is(err, lead.ErrConsentRequired):
		return l.ConsentLabel
	case errors.Is(err, engine.ErrSubmissionInFlight):
		return l.SubmissionFailed
	}
	return l.SubmissionFailed
}

// parseCategory narrows a raw category string; the Browser itself resets
// unknown values to all, this just avoids the string conversion spreading.
func parseCategory(s string) faq.Category {
	return faq.Category(s)
}
