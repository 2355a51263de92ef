package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSetSemantics(t *testing.T) {
	p := New()

	n, err := p.ToggleEventType("conference")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = p.ToggleEventType("incentive")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Toggling an existing value removes it
	n, err = p.ToggleEventType("conference")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"incentive"}, p.EventTypes)
}

func TestSetContactRejectsInvalidWithoutMutation(t *testing.T) {
	p := New()

	err := p.SetContact(ContactInput{
		Company:   "Acme",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Empty(t, p.Company)
	assert.Empty(t, p.Email)

	require.NoError(t, p.SetContact(ContactInput{
		Company:   "Acme",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@acme.com",
	}))
	assert.Equal(t, "jane@acme.com", p.Email)
}

func TestFreezeBlocksAllMutators(t *testing.T) {
	p := New()
	require.NoError(t, p.SetGroupSize("30-80"))
	p.Freeze()

	assert.True(t, p.Frozen())
	assert.ErrorIs(t, p.SetGroupSize("80-200"), ErrProfileFrozen)
	assert.ErrorIs(t, p.SetDates("June", false), ErrProfileFrozen)
	assert.ErrorIs(t, p.SetBudget("500-800"), ErrProfileFrozen)
	assert.ErrorIs(t, p.SetSpecialNeeds("none"), ErrProfileFrozen)
	assert.ErrorIs(t, p.SetConsent(false), ErrProfileFrozen)
	_, err := p.ToggleCity("marrakech")
	assert.ErrorIs(t, err, ErrProfileFrozen)
	assert.Equal(t, "30-80", p.GroupSize)
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name string
		in   ContactInput
		want error
	}{
		{"valid", ContactInput{Company: "Acme", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com"}, nil},
		{"valid with phone", ContactInput{Company: "Acme", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com", Phone: "+212600000000"}, nil},
		{"missing company", ContactInput{FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com"}, ErrMissingCompany},
		{"missing last name", ContactInput{Company: "Acme", FirstName: "Jane", Email: "jane@acme.com"}, ErrMissingName},
		{"missing email", ContactInput{Company: "Acme", FirstName: "Jane", LastName: "Doe"}, ErrMissingEmail},
		{"bad email", ContactInput{Company: "Acme", FirstName: "Jane", LastName: "Doe", Email: "not-an-email"}, ErrInvalidEmail},
		{"email without tld", ContactInput{Company: "Acme", FirstName: "Jane", LastName: "Doe", Email: "jane@acme"}, ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@acme.com", "j.doe+tag@sub.acme.co.uk", "a@b.io"}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "@acme.com", "jane@.com"}
	for _, s := range valid {
		assert.True(t, ValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), s)
	}
}
