// Package catalog holds the per-locale conversation content: prompts, option
// labels, placeholders and validation strings. Pure lookup, no logic beyond
// locale fallback.
package catalog

// StepKey identifies the piece of content a step renders.
type StepKey string

const (
	StepGreeting     StepKey = "greeting"
	StepEventType    StepKey = "event_type"
	StepCity         StepKey = "city"
	StepGroupSize    StepKey = "group_size"
	StepDates        StepKey = "dates"
	StepBudget       StepKey = "budget"
	StepContact      StepKey = "contact"
	StepSpecialNeeds StepKey = "special_needs"
	StepConsent      StepKey = "consent"
	StepSuccess      StepKey = "success"
)

// Option pairs a stable identifier with its display label. Identifiers are
// locale-independent; only the label is translated.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Locale is the complete content table for one language. Adding a language
// means supplying every field; partial tables are not supported.
type Locale struct {
	Code string

	Greeting           string
	StartProposalLabel string
	BrowseFAQLabel     string

	Prompts      map[StepKey]string
	Options      map[StepKey][]Option
	Placeholders map[StepKey]string

	// ContactFields lists the contact form fields in display order. IDs are
	// stable across locales, same as step options.
	ContactFields []Option

	ContinueLabel  string
	FlexibleLabel  string
	NoneSentinel   string
	ConsentLabel   string
	ConsentGranted string

	InvalidEmail   string
	EmptySelection string
	RequiredFields string
	AnswerRequired string

	// SuccessTemplate takes the reference id as its single argument.
	SuccessTemplate  string
	SubmissionFailed string

	HandoffIntro string
	HandoffChat  string
	HandoffEmail string
	HandoffPhone string

	// HandoffTemplate takes reference id, event types, destinations, group
	// size and dates, in that order.
	HandoffTemplate string

	FAQIntro      string
	FAQBackLabel  string
	FAQCategories map[string]string // category id -> label, includes "all"
}

// Catalog resolves locales with fallback to a default.
type Catalog struct {
	defaultLocale string
	locales       map[string]*Locale
}

// New builds the catalog with the built-in locales. An unknown defaultLocale
// falls back to English.
func New(defaultLocale string) *Catalog {
	c := &Catalog{
		defaultLocale: defaultLocale,
		locales: map[string]*Locale{
			"en": localeEN,
			"fr": localeFR,
		},
	}
	if _, ok := c.locales[defaultLocale]; !ok {
		c.defaultLocale = "en"
	}
	return c
}

// DefaultLocale returns the fallback locale code.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Resolve maps an arbitrary locale code to a supported one.
func (c *Catalog) Resolve(code string) string {
	if _, ok := c.locales[code]; ok {
		return code
	}
	return c.defaultLocale
}

// Locale returns the content table for code, falling back to the default
// locale rather than returning nil.
func (c *Catalog) Locale(code string) *Locale {
	if l, ok := c.locales[code]; ok {
		return l
	}
	return c.locales[c.defaultLocale]
}

// Locales lists the supported locale codes.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for code := range c.locales {
		out = append(out, code)
	}
	return out
}

// Label returns the display label for an option id in the given locale, or
// the id itself when unknown.
func (c *Catalog) Label(code string, step StepKey, id string) string {
	for _, opt := range c.Locale(code).Options[step] {
		if opt.ID == id {
			return opt.Label
		}
	}
	return id
}

// HasOption reports whether id is a valid option for step. Option identity is
// locale-independent, so the default locale is authoritative.
func (c *Catalog) HasOption(step StepKey, id string) bool {
	for _, opt := range c.Locale(c.defaultLocale).Options[step] {
		if opt.ID == id {
			return true
		}
	}
	return false
}
