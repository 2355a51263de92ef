// Package engine drives the lead-qualification conversation: one state
// machine per widget session, owning the lead profile and the transcript.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atlasdmc/leadbot/internal/catalog"
	"github.com/atlasdmc/leadbot/internal/faq"
	"github.com/atlasdmc/leadbot/internal/gateway"
	"github.com/atlasdmc/leadbot/internal/handoff"
	"github.com/atlasdmc/leadbot/internal/lead"
	"github.com/atlasdmc/leadbot/internal/observability/metrics"
	"github.com/atlasdmc/leadbot/pkg/logging"
)

// Role distinguishes transcript authorship.
type Role string

const (
	RoleBot  Role = "bot"
	RoleUser Role = "user"
)

// Message is one transcript entry. The transcript is append-only; entries
// are never mutated or reordered.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Update is what an operation hands back to the transport layer: the
// transcript entries it appended and the view the widget should render next.
type Update struct {
	Messages []Message `json:"messages"`
	View     View      `json:"view"`
}

// Config wires an engine instance.
type Config struct {
	Catalog   *catalog.Catalog
	Submitter gateway.Submitter
	Handoff   *handoff.Builder
	Metrics   *metrics.ChatMetrics
	Logger    *logging.Logger
	Locale    string
	Now       func() time.Time
}

// Engine owns the conversation state of a single session. All exported
// methods are safe for concurrent use; the submission call is the only
// operation that releases the lock mid-flight, protected by the submitting
// flag.
type Engine struct {
	mu         sync.Mutex
	step       Step
	locale     string
	profile    *lead.Profile
	transcript []Message
	browser    *faq.Browser
	submitting bool
	// consentLogged marks that the consent acknowledgement is already in the
	// transcript, so retries after a failed submission do not repeat it.
	consentLogged bool
	refID         string

	catalog   *catalog.Catalog
	submitter gateway.Submitter
	handoff   *handoff.Builder
	metrics   *metrics.ChatMetrics
	logger    *logging.Logger
	now       func() time.Time
}

// New creates an engine in the Greeting step and appends the greeting to the
// transcript.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	e := &Engine{
		step:      StepGreeting,
		profile:   lead.New(),
		catalog:   cfg.Catalog,
		submitter: cfg.Submitter,
		handoff:   cfg.Handoff,
		metrics:   cfg.Metrics,
		logger:    logger,
		now:       now,
	}
	e.locale = cfg.Catalog.Resolve(cfg.Locale)
	e.appendBot(e.content().Greeting)
	e.metrics.ObserveSessionStarted()
	return e
}

// Step returns the current step.
func (e *Engine) Step() Step {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.step
}

// Locale returns the active locale code.
func (e *Engine) Locale() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locale
}

// Profile returns a copy of the accumulated lead record.
func (e *Engine) Profile() lead.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.profile
}

// ReferenceID returns the reference of the successful submission, or empty.
func (e *Engine) ReferenceID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.refID
}

// Snapshot returns the full transcript and the current view, for widgets
// that reconnect mid-conversation.
func (e *Engine) Snapshot() *Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	msgs := make([]Message, len(e.transcript))
	copy(msgs, e.transcript)
	return &Update{Messages: msgs, View: e.view()}
}

// StartProposal begins the questionnaire. Available from Greeting and, re-
// entrant, from FAQ; the FAQ filter state is discarded either way.
func (e *Engine) StartProposal() (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepGreeting && e.step != StepFAQ {
		return nil, ErrInvalidAction
	}
	e.browser = nil
	mark := len(e.transcript)
	e.transition(StepEventType)
	e.appendBot(e.content().Prompts[catalog.StepEventType])
	return e.updateSince(mark), nil
}

// BrowseFAQ switches to the FAQ sub-mode with a fresh unfiltered browser.
func (e *Engine) BrowseFAQ() (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepGreeting {
		return nil, ErrInvalidAction
	}
	e.browser = faq.NewBrowser(e.locale)
	mark := len(e.transcript)
	e.transition(StepFAQ)
	e.appendBot(e.content().FAQIntro)
	return e.updateSince(mark), nil
}

// FAQFilter narrows the FAQ list to one category. Local to the FAQ visit.
func (e *Engine) FAQFilter(cat faq.Category) (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepFAQ || e.browser == nil {
		return nil, ErrInvalidAction
	}
	e.browser.SetCategory(cat)
	return e.updateSince(len(e.transcript)), nil
}

// FAQBack leaves the FAQ sub-mode, discarding its filter state.
func (e *Engine) FAQBack() (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepFAQ {
		return nil, ErrInvalidAction
	}
	e.browser = nil
	mark := len(e.transcript)
	e.transition(StepGreeting)
	return e.updateSince(mark), nil
}

// Toggle flips an option on a multi-select step. It only mutates the
// selection; advancing is the Continue trigger's job.
func (e *Engine) Toggle(optionID string) (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.step {
	case StepEventType:
		if !e.catalog.HasOption(catalog.StepEventType, optionID) {
			return nil, ErrUnknownOption
		}
		if _, err := e.profile.ToggleEventType(optionID); err != nil {
			return nil, err
		}
	case StepCity:
		if !e.catalog.HasOption(catalog.StepCity, optionID) {
			return nil, ErrUnknownOption
		}
		if _, err := e.profile.ToggleCity(optionID); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidAction
	}
	return e.updateSince(len(e.transcript)), nil
}

// Continue advances past a multi-select step. The guard is a non-empty
// selection; an empty one refuses the transition and leaves everything
// untouched.
func (e *Engine) Continue() (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var selected []string
	var next Step
	switch e.step {
	case StepEventType:
		selected, next = e.profile.EventTypes, StepCity
	case StepCity:
		selected, next = e.profile.Cities, StepGroupSize
	default:
		return nil, ErrInvalidAction
	}
	if len(selected) == 0 {
		e.metrics.ObserveValidationFailure(string(e.step))
		return nil, lead.ErrEmptySelection
	}

	mark := len(e.transcript)
	e.appendUser(e.joinedLabels(e.step.contentKey(), selected))
	e.transition(next)
	e.appendBot(e.content().Prompts[next.contentKey()])
	return e.updateSince(mark), nil
}

// Select answers a single-choice step (group size or budget).
func (e *Engine) Select(optionID string) (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var next Step
	switch e.step {
	case StepGroupSize:
		if !e.catalog.HasOption(catalog.StepGroupSize, optionID) {
			return nil, ErrUnknownOption
		}
		if err := e.profile.SetGroupSize(optionID); err != nil {
			return nil, err
		}
		next = StepDates
	case StepBudget:
		if !e.catalog.HasOption(catalog.StepBudget, optionID) {
			return nil, ErrUnknownOption
		}
		if err := e.profile.SetBudget(optionID); err != nil {
			return nil, err
		}
		next = StepContact
	default:
		return nil, ErrInvalidAction
	}

	mark := len(e.transcript)
	e.appendUser(e.catalog.Label(e.locale, e.step.contentKey(), optionID))
	e.transition(next)
	e.appendBot(e.content().Prompts[next.contentKey()])
	return e.updateSince(mark), nil
}

// SubmitDates answers the free-text dates step.
func (e *Engine) SubmitDates(text string, flexible bool) (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepDates {
		return nil, ErrInvalidAction
	}
	text = strings.TrimSpace(text)
	if text == "" {
		e.metrics.ObserveValidationFailure(string(e.step))
		return nil, ErrEmptyInput
	}
	if err := e.profile.SetDates(text, flexible); err != nil {
		return nil, err
	}

	shown := text
	if flexible {
		shown = fmt.Sprintf("%s (%s)", text, strings.ToLower(e.content().FlexibleLabel))
	}
	mark := len(e.transcript)
	e.appendUser(shown)
	e.transition(StepBudget)
	e.appendBot(e.content().Prompts[catalog.StepBudget])
	return e.updateSince(mark), nil
}

// SubmitContact answers the contact form. Required-field failures refuse the
// transition without touching the transcript; a malformed email additionally
// appends the localized explanation as a bot message, the way the bot talks
// the visitor through it.
func (e *Engine) SubmitContact(in lead.ContactInput) (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepContact {
		return nil, ErrInvalidAction
	}

	if err := e.profile.SetContact(in); err != nil {
		e.metrics.ObserveValidationFailure(string(e.step))
		if err == lead.ErrInvalidEmail {
			mark := len(e.transcript)
			e.appendBot(e.content().InvalidEmail)
			return e.updateSince(mark), nil
		}
		return nil, err
	}

	mark := len(e.transcript)
	e.appendUser(fmt.Sprintf("%s - %s %s", in.Company, in.FirstName, in.LastName))
	e.transition(StepSpecialNeeds)
	e.appendBot(e.content().Prompts[catalog.StepSpecialNeeds])
	return e.updateSince(mark), nil
}

// SubmitSpecialNeeds answers the optional free-text step. A blank answer
// records the localized "none" sentinel.
func (e *Engine) SubmitSpecialNeeds(text string) (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepSpecialNeeds {
		return nil, ErrInvalidAction
	}
	text = strings.TrimSpace(text)
	if text == "" {
		text = e.content().NoneSentinel
	}
	if err := e.profile.SetSpecialNeeds(text); err != nil {
		return nil, err
	}

	mark := len(e.transcript)
	e.appendUser(text)
	e.transition(StepConsent)
	e.appendBot(e.content().Prompts[catalog.StepConsent])
	return e.updateSince(mark), nil
}

// SetConsent flips the consent checkbox. No transition.
func (e *Engine) SetConsent(granted bool) (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepConsent {
		return nil, ErrInvalidAction
	}
	if err := e.profile.SetConsent(granted); err != nil {
		return nil, err
	}
	return e.updateSince(len(e.transcript)), nil
}

// Submit performs the final submission. Consent must be granted and no other
// submission may be in flight. On failure the step stays at Consent and the
// visitor may retry; on success the profile freezes and the conversation
// reaches its terminal step.
func (e *Engine) Submit(ctx context.Context) (*Update, error) {
	e.mu.Lock()
	if e.step != StepConsent {
		e.mu.Unlock()
		return nil, ErrInvalidAction
	}
	if e.submitting {
		e.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if !e.profile.Consent {
		e.metrics.ObserveValidationFailure(string(e.step))
		e.mu.Unlock()
		return nil, lead.ErrConsentRequired
	}
	e.submitting = true
	profile := *e.profile
	locale := e.locale
	mark := len(e.transcript)
	// The acknowledgement is the visitor's turn and precedes the gateway
	// call; it is recorded once, on the first attempt.
	if !e.consentLogged {
		e.appendUser(e.content().ConsentGranted)
		e.consentLogged = true
	}
	e.mu.Unlock()

	refID, err := e.submitter.Submit(ctx, &profile, locale)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.submitting = false

	if err != nil {
		e.logger.Error("engine: submission failed", "error", err)
		e.appendBot(e.content().SubmissionFailed)
		return e.updateSince(mark), nil
	}

	e.profile.Freeze()
	e.refID = refID
	e.transition(StepSuccess)
	e.appendBot(fmt.Sprintf(e.content().SuccessTemplate, refID))
	e.logger.Info("engine: lead submitted", "reference_id", refID, "locale", locale)
	return e.updateSince(mark), nil
}

// SetLocale switches the conversation language. Orthogonal to the step
// machine: the step and the profile are untouched, and a fresh greeting in
// the new language lands in the transcript.
func (e *Engine) SetLocale(code string) (*Update, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.locale = e.catalog.Resolve(code)
	if e.browser != nil {
		e.browser.SetLocale(e.locale)
	}
	mark := len(e.transcript)
	e.appendBot(e.content().Greeting)
	return e.updateSince(mark), nil
}

// Content returns the catalog table of the active locale.
func (e *Engine) Content() *catalog.Locale {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content()
}

func (e *Engine) content() *catalog.Locale {
	return e.catalog.Locale(e.locale)
}

func (e *Engine) transition(to Step) {
	e.metrics.ObserveTransition(string(e.step), string(to))
	e.step = to
}

func (e *Engine) appendBot(content string) {
	e.transcript = append(e.transcript, Message{Role: RoleBot, Content: content, Timestamp: e.now()})
}

func (e *Engine) appendUser(content string) {
	e.transcript = append(e.transcript, Message{Role: RoleUser, Content: content, Timestamp: e.now()})
}

func (e *Engine) updateSince(mark int) *Update {
	delta := make([]Message, len(e.transcript)-mark)
	copy(delta, e.transcript[mark:])
	return &Update{Messages: delta, View: e.view()}
}

func (e *Engine) joinedLabels(step catalog.StepKey, ids []string) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, e.catalog.Label(e.locale, step, id))
	}
	return strings.Join(labels, ", ")
}
