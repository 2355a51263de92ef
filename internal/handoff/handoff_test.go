package handoff

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasdmc/leadbot/internal/catalog"
	"github.com/atlasdmc/leadbot/internal/lead"
)

func submittedProfile() *lead.Profile {
	p := lead.New()
	p.ToggleEventType("conference")
	p.ToggleEventType("gala-dinner")
	p.ToggleCity("marrakech")
	p.SetGroupSize("30-80")
	p.SetDates("March 2026", true)
	return p
}

func TestMessageSummarizesLead(t *testing.T) {
	b := NewBuilder(catalog.New("en"), "+212600000000", "events@atlasdmc.com", "+212500000000")
	msg := b.Message(submittedProfile(), "AT-20260314-150926-ab12cd", "en")

	assert.Contains(t, msg, "AT-20260314-150926-ab12cd")
	assert.Contains(t, msg, "Conference, Gala dinner")
	assert.Contains(t, msg, "Marrakech")
	assert.Contains(t, msg, "30 to 80")
	assert.Contains(t, msg, "March 2026")
	assert.Contains(t, msg, "flexible")
}

func TestMessageUsesLocaleLabels(t *testing.T) {
	b := NewBuilder(catalog.New("en"), "", "", "")
	msg := b.Message(submittedProfile(), "AT-x", "fr")
	assert.Contains(t, msg, "Conférence")
	assert.Contains(t, msg, "30 à 80")
}

func TestChannelsBuildsWhatsAppDeepLink(t *testing.T) {
	b := NewBuilder(catalog.New("en"), "+212600000000", "events@atlasdmc.com", "+212500000000")
	ch := b.Channels(submittedProfile(), "AT-x", "en")

	require.True(t, strings.HasPrefix(ch.WhatsAppURL, "https://wa.me/212600000000?text="), ch.WhatsAppURL)
	u, err := url.Parse(ch.WhatsAppURL)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "Conference")
	assert.Equal(t, "events@atlasdmc.com", ch.Email)
	assert.Equal(t, "+212500000000", ch.Phone)
}

func TestChannelsWithoutWhatsAppNumber(t *testing.T) {
	b := NewBuilder(catalog.New("en"), "", "events@atlasdmc.com", "")
	ch := b.Channels(submittedProfile(), "AT-x", "en")
	assert.Empty(t, ch.WhatsAppURL)
	assert.Equal(t, "events@atlasdmc.com", ch.Email)
	assert.Empty(t, ch.Phone)
}
