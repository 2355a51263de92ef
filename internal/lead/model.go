package lead

// Profile is the lead record accumulated across the questionnaire. Fields are
// only ever written by the step that owns them and are never rolled back; the
// whole record is frozen once a submission succeeds.
type Profile struct {
	Company       string   `json:"company"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	EventTypes    []string `json:"eventTypes"`
	Cities        []string `json:"cities"`
	GroupSize     string   `json:"groupSize"`
	Dates         string   `json:"dates"`
	FlexibleDates bool     `json:"flexibleDates"`
	Budget        string   `json:"budget"`
	SpecialNeeds  string   `json:"specialNeeds"`
	Consent       bool     `json:"consent"`

	frozen bool
}

// New creates an empty profile for a fresh widget session.
func New() *Profile {
	return &Profile{}
}

// Frozen reports whether the profile has been sealed by a successful submission.
func (p *Profile) Frozen() bool {
	return p.frozen
}

// Freeze seals the profile. Every mutator refuses to run afterwards.
func (p *Profile) Freeze() {
	p.frozen = true
}

// ToggleEventType adds or removes an event type and returns the resulting
// selection size.
func (p *Profile) ToggleEventType(id string) (int, error) {
	if p.frozen {
		return len(p.EventTypes), ErrProfileFrozen
	}
	p.EventTypes = toggle(p.EventTypes, id)
	return len(p.EventTypes), nil
}

// ToggleCity adds or removes a city and returns the resulting selection size.
func (p *Profile) ToggleCity(id string) (int, error) {
	if p.frozen {
		return len(p.Cities), ErrProfileFrozen
	}
	p.Cities = toggle(p.Cities, id)
	return len(p.Cities), nil
}

// SetGroupSize records the selected group-size bracket.
func (p *Profile) SetGroupSize(id string) error {
	if p.frozen {
		return ErrProfileFrozen
	}
	p.GroupSize = id
	return nil
}

// SetDates records the free-text dates answer and its flexibility flag.
func (p *Profile) SetDates(text string, flexible bool) error {
	if p.frozen {
		return ErrProfileFrozen
	}
	p.Dates = text
	p.FlexibleDates = flexible
	return nil
}

// SetBudget records the selected budget bracket.
func (p *Profile) SetBudget(id string) error {
	if p.frozen {
		return ErrProfileFrozen
	}
	p.Budget = id
	return nil
}

// SetContact validates and records the contact details in one shot. On a
// validation failure nothing is written.
func (p *Profile) SetContact(in ContactInput) error {
	if p.frozen {
		return ErrProfileFrozen
	}
	if err := in.Validate(); err != nil {
		return err
	}
	p.Company = in.Company
	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Email = in.Email
	p.Phone = in.Phone
	return nil
}

// SetSpecialNeeds records the optional special-needs text.
func (p *Profile) SetSpecialNeeds(text string) error {
	if p.frozen {
		return ErrProfileFrozen
	}
	p.SpecialNeeds = text
	return nil
}

// SetConsent flips the consent flag.
func (p *Profile) SetConsent(granted bool) error {
	if p.frozen {
		return ErrProfileFrozen
	}
	p.Consent = granted
	return nil
}

func toggle(set []string, id string) []string {
	for i, v := range set {
		if v == id {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, id)
}
