package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasdmc/leadbot/internal/catalog"
	"github.com/atlasdmc/leadbot/internal/faq"
	"github.com/atlasdmc/leadbot/internal/handoff"
	"github.com/atlasdmc/leadbot/internal/lead"
	"github.com/atlasdmc/leadbot/pkg/logging"
)

// stubSubmitter records submissions and can be told to fail.
type stubSubmitter struct {
	mu       sync.Mutex
	calls    int
	fail     bool
	profiles []lead.Profile
	locales  []string
	block    chan struct{} // when set, Submit waits until closed
}

func (s *stubSubmitter) Submit(_ context.Context, p *lead.Profile, locale string) (string, error) {
	s.mu.Lock()
	s.calls++
	n := s.calls
	s.profiles = append(s.profiles, *p)
	s.locales = append(s.locales, locale)
	block := s.block
	fail := s.fail
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	if fail {
		return "", errors.New("webhook unavailable")
	}
	return fmt.Sprintf("AT-20260314-150926-%06x", n), nil
}

func newTestEngine(t *testing.T, sub *stubSubmitter) *Engine {
	t.Helper()
	cat := catalog.New("en")
	return New(Config{
		Catalog:   cat,
		Submitter: sub,
		Handoff:   handoff.NewBuilder(cat, "+212600000000", "events@atlasdmc.com", "+212500000000"),
		Logger:    logging.New("error"),
	})
}

// driveToContact walks the happy path up to the contact step.
func driveToContact(t *testing.T, e *Engine) {
	t.Helper()
	_, err := e.StartProposal()
	require.NoError(t, err)
	_, err = e.Toggle("conference")
	require.NoError(t, err)
	_, err = e.Continue()
	require.NoError(t, err)
	_, err = e.Toggle("marrakech")
	require.NoError(t, err)
	_, err = e.Continue()
	require.NoError(t, err)
	_, err = e.Select("30-80")
	require.NoError(t, err)
	_, err = e.SubmitDates("March 2026", false)
	require.NoError(t, err)
	_, err = e.Select("500-800")
	require.NoError(t, err)
	require.Equal(t, StepContact, e.Step())
}

// driveToConsent continues from contact to the consent step.
func driveToConsent(t *testing.T, e *Engine) {
	t.Helper()
	driveToContact(t, e)
	_, err := e.SubmitContact(lead.ContactInput{
		Company: "Acme", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com",
	})
	require.NoError(t, err)
	_, err = e.SubmitSpecialNeeds("none")
	require.NoError(t, err)
	require.Equal(t, StepConsent, e.Step())
}

func TestGreetingOpensConversation(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	snap := e.Snapshot()
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, RoleBot, snap.Messages[0].Role)
	assert.Equal(t, StepGreeting, snap.View.Step)
	assert.Equal(t, InputActions, snap.View.Input)
	require.Len(t, snap.View.Actions, 2)
}

func TestRoundTripProducesExactPayload(t *testing.T) {
	sub := &stubSubmitter{}
	e := newTestEngine(t, sub)
	driveToConsent(t, e)

	_, err := e.SetConsent(true)
	require.NoError(t, err)
	upd, err := e.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StepSuccess, e.Step())
	require.Equal(t, 1, sub.calls)

	got := sub.profiles[0]
	assert.Equal(t, []string{"conference"}, got.EventTypes)
	assert.Equal(t, []string{"marrakech"}, got.Cities)
	assert.Equal(t, "30-80", got.GroupSize)
	assert.Equal(t, "March 2026", got.Dates)
	assert.Equal(t, "500-800", got.Budget)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "jane@acme.com", got.Email)
	assert.Equal(t, "none", got.SpecialNeeds)
	assert.True(t, got.Consent)
	assert.Equal(t, "en", sub.locales[0])

	assert.NotEmpty(t, e.ReferenceID())
	profile := e.Profile()
	assert.True(t, profile.Frozen())

	// The terminal view offers all three hand-off channels.
	require.NotNil(t, upd.View.Handoff)
	assert.Equal(t, e.ReferenceID(), upd.View.Handoff.ReferenceID)
	assert.Contains(t, upd.View.Handoff.Channels.WhatsAppURL, "wa.me")
	assert.Equal(t, "events@atlasdmc.com", upd.View.Handoff.Channels.Email)
	assert.Equal(t, "+212500000000", upd.View.Handoff.Channels.Phone)
	// Confirmation message carries the reference id.
	assert.Contains(t, upd.Messages[len(upd.Messages)-1].Content, e.ReferenceID())
}

func TestEmptySelectionGuard(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	_, err := e.StartProposal()
	require.NoError(t, err)

	before := len(e.Snapshot().Messages)

	_, err = e.Continue()
	assert.ErrorIs(t, err, lead.ErrEmptySelection)
	assert.Equal(t, StepEventType, e.Step())

	// Toggling on and off again leaves an empty set and an unchanged engine.
	_, err = e.Toggle("conference")
	require.NoError(t, err)
	_, err = e.Toggle("conference")
	require.NoError(t, err)
	_, err = e.Continue()
	assert.ErrorIs(t, err, lead.ErrEmptySelection)
	assert.Equal(t, StepEventType, e.Step())
	assert.Empty(t, e.Profile().EventTypes)
	assert.Len(t, e.Snapshot().Messages, before)
}

func TestContinueAppendsSelectionAsUserMessage(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	_, err := e.StartProposal()
	require.NoError(t, err)
	_, err = e.Toggle("conference")
	require.NoError(t, err)
	_, err = e.Toggle("gala-dinner")
	require.NoError(t, err)

	upd, err := e.Continue()
	require.NoError(t, err)
	require.Len(t, upd.Messages, 2)
	assert.Equal(t, RoleUser, upd.Messages[0].Role)
	assert.Equal(t, "Conference, Gala dinner", upd.Messages[0].Content)
	assert.Equal(t, RoleBot, upd.Messages[1].Role)
	assert.Equal(t, StepCity, e.Step())
}

func TestInvalidEmailKeepsContactStep(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	driveToContact(t, e)

	upd, err := e.SubmitContact(lead.ContactInput{
		Company: "Acme", FirstName: "Jane", LastName: "Doe", Email: "not-an-email",
	})
	require.NoError(t, err)

	// Exactly one new message, the bot's validation explanation.
	require.Len(t, upd.Messages, 1)
	assert.Equal(t, RoleBot, upd.Messages[0].Role)
	assert.Equal(t, catalog.New("en").Locale("en").InvalidEmail, upd.Messages[0].Content)

	assert.Equal(t, StepContact, e.Step())
	assert.Empty(t, e.Profile().Email)
	assert.Empty(t, e.Profile().Company)
}

func TestMissingRequiredContactFieldIsRejected(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	driveToContact(t, e)

	before := len(e.Snapshot().Messages)
	_, err := e.SubmitContact(lead.ContactInput{FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com"})
	assert.ErrorIs(t, err, lead.ErrMissingCompany)
	assert.Equal(t, StepContact, e.Step())
	assert.Len(t, e.Snapshot().Messages, before)
}

func TestBlankSpecialNeedsRecordsSentinel(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	driveToContact(t, e)
	_, err := e.SubmitContact(lead.ContactInput{
		Company: "Acme", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com",
	})
	require.NoError(t, err)

	upd, err := e.SubmitSpecialNeeds("   ")
	require.NoError(t, err)
	sentinel := catalog.New("en").Locale("en").NoneSentinel
	assert.Equal(t, sentinel, e.Profile().SpecialNeeds)
	assert.Equal(t, sentinel, upd.Messages[0].Content)
	assert.Equal(t, StepConsent, e.Step())
}

func TestConsentGateBlocksSubmission(t *testing.T) {
	sub := &stubSubmitter{}
	e := newTestEngine(t, sub)
	driveToConsent(t, e)

	_, err := e.Submit(context.Background())
	assert.ErrorIs(t, err, lead.ErrConsentRequired)
	assert.Equal(t, StepConsent, e.Step())
	assert.Zero(t, sub.calls)

	// Toggling consent off again after granting it also blocks.
	_, err = e.SetConsent(true)
	require.NoError(t, err)
	_, err = e.SetConsent(false)
	require.NoError(t, err)
	_, err = e.Submit(context.Background())
	assert.ErrorIs(t, err, lead.ErrConsentRequired)
	assert.Zero(t, sub.calls)
}

func TestSubmissionFailureAllowsRetry(t *testing.T) {
	sub := &stubSubmitter{fail: true}
	e := newTestEngine(t, sub)
	driveToConsent(t, e)
	_, err := e.SetConsent(true)
	require.NoError(t, err)

	l := catalog.New("en").Locale("en")
	upd, err := e.Submit(context.Background())
	require.NoError(t, err)
	// The consent acknowledgement lands before the gateway call, so the
	// failed attempt still reads as a visitor turn followed by the error.
	require.Len(t, upd.Messages, 2)
	assert.Equal(t, RoleUser, upd.Messages[0].Role)
	assert.Equal(t, l.ConsentGranted, upd.Messages[0].Content)
	assert.Equal(t, l.SubmissionFailed, upd.Messages[1].Content)
	assert.Equal(t, StepConsent, e.Step())
	profile := e.Profile()
	assert.False(t, profile.Frozen())
	assert.Empty(t, e.ReferenceID())

	// Retry without re-entering prior steps.
	sub.fail = false
	_, err = e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepSuccess, e.Step())
	assert.Equal(t, 2, sub.calls)
	assert.Equal(t, sub.profiles[0], sub.profiles[1])

	// The acknowledgement is not repeated by the retry.
	acks := 0
	for _, m := range e.Snapshot().Messages {
		if m.Role == RoleUser && m.Content == l.ConsentGranted {
			acks++
		}
	}
	assert.Equal(t, 1, acks)
}

func TestSubmissionInFlightGuard(t *testing.T) {
	block := make(chan struct{})
	sub := &stubSubmitter{block: block}
	e := newTestEngine(t, sub)
	driveToConsent(t, e)
	_, err := e.SetConsent(true)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = e.Submit(context.Background())
	}()

	// Wait until the first submission is inside the gateway call.
	require.Eventually(t, func() bool {
		sub.mu.Lock()
		defer sub.mu.Unlock()
		return sub.calls == 1
	}, 2*time.Second, 10*time.Millisecond)

	_, err = e.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(block)
	<-done
	assert.Equal(t, StepSuccess, e.Step())
	assert.Equal(t, 1, sub.calls)
}

func TestLocaleSwitchIsOrthogonalAndIdempotent(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	_, err := e.StartProposal()
	require.NoError(t, err)
	_, err = e.Toggle("conference")
	require.NoError(t, err)

	profileBefore := e.Profile()
	stepBefore := e.Step()

	upd1, err := e.SetLocale("fr")
	require.NoError(t, err)
	upd2, err := e.SetLocale("fr")
	require.NoError(t, err)

	// Same lookups both times, step and profile untouched.
	assert.Equal(t, upd1.Messages[0].Content, upd2.Messages[0].Content)
	assert.Equal(t, upd1.View.Options, upd2.View.Options)
	assert.Equal(t, stepBefore, e.Step())
	assert.Equal(t, profileBefore, e.Profile())

	// The view now renders French labels; selection ids are unchanged.
	assert.Equal(t, "fr", e.Locale())
	assert.Equal(t, []string{"conference"}, upd2.View.Selected)
	assert.Equal(t, "Conférence", upd2.View.Options[0].Label)
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	_, err := e.SetLocale("de")
	require.NoError(t, err)
	assert.Equal(t, "en", e.Locale())
}

func TestFAQRoundTripResetsFilter(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})

	upd, err := e.BrowseFAQ()
	require.NoError(t, err)
	require.NotNil(t, upd.View.FAQ)
	assert.Equal(t, faq.CategoryAll, upd.View.FAQ.Active)

	upd, err = e.FAQFilter(faq.CategoryPlanning)
	require.NoError(t, err)
	assert.Equal(t, faq.CategoryPlanning, upd.View.FAQ.Active)
	for _, entry := range upd.View.FAQ.Entries {
		assert.Equal(t, faq.CategoryPlanning, entry.Category)
	}

	_, err = e.FAQBack()
	require.NoError(t, err)
	assert.Equal(t, StepGreeting, e.Step())

	upd, err = e.BrowseFAQ()
	require.NoError(t, err)
	assert.Equal(t, faq.CategoryAll, upd.View.FAQ.Active)
}

func TestFAQStartProposalIsReentrant(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	_, err := e.BrowseFAQ()
	require.NoError(t, err)
	_, err = e.FAQFilter(faq.CategoryLogistics)
	require.NoError(t, err)

	upd, err := e.StartProposal()
	require.NoError(t, err)
	assert.Equal(t, StepEventType, e.Step())
	assert.Equal(t, InputMultiSelect, upd.View.Input)
	assert.Nil(t, upd.View.FAQ)
}

func TestUndefinedTriggersAreRejected(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})

	_, err := e.Select("30-80")
	assert.ErrorIs(t, err, ErrInvalidAction)
	_, err = e.Toggle("conference")
	assert.ErrorIs(t, err, ErrInvalidAction)
	_, err = e.SubmitDates("June", false)
	assert.ErrorIs(t, err, ErrInvalidAction)
	_, err = e.FAQBack()
	assert.ErrorIs(t, err, ErrInvalidAction)
	_, err = e.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, StepGreeting, e.Step())

	_, err = e.StartProposal()
	require.NoError(t, err)
	_, err = e.Toggle("bogus-option")
	assert.ErrorIs(t, err, ErrUnknownOption)
	_, err = e.BrowseFAQ()
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestEmptyDatesRejected(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	_, err := e.StartProposal()
	require.NoError(t, err)
	_, err = e.Toggle("seminar")
	require.NoError(t, err)
	_, err = e.Continue()
	require.NoError(t, err)
	_, err = e.Toggle("agadir")
	require.NoError(t, err)
	_, err = e.Continue()
	require.NoError(t, err)
	_, err = e.Select("under-30")
	require.NoError(t, err)

	_, err = e.SubmitDates("   ", false)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, StepDates, e.Step())
	assert.Empty(t, e.Profile().Dates)
}

func TestTranscriptIsAppendOnlyAndOrdered(t *testing.T) {
	e := newTestEngine(t, &stubSubmitter{})
	driveToConsent(t, e)

	msgs := e.Snapshot().Messages
	require.NotEmpty(t, msgs)
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].Timestamp.Before(msgs[i-1].Timestamp),
			"transcript out of order at %d", i)
	}

	// A later snapshot only ever grows.
	_, err := e.SetConsent(true)
	require.NoError(t, err)
	after := e.Snapshot().Messages
	require.GreaterOrEqual(t, len(after), len(msgs))
	for i := range msgs {
		assert.Equal(t, msgs[i], after[i])
	}
}
