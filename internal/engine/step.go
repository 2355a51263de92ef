package engine

import "github.com/atlasdmc/leadbot/internal/catalog"

// Step is the closed set of conversation states. The engine holds exactly one
// current value; transitions happen only through the methods on Engine, so an
// undefined step is unreachable.
type Step string

const (
	StepGreeting     Step = "greeting"
	StepEventType    Step = "event_type"
	StepCity         Step = "city"
	StepGroupSize    Step = "group_size"
	StepDates        Step = "dates"
	StepBudget       Step = "budget"
	StepContact      Step = "contact"
	StepSpecialNeeds Step = "special_needs"
	StepConsent      Step = "consent"
	StepSuccess      Step = "success"
	StepFAQ          Step = "faq"
)

// contentKey maps a step to its catalog key. FAQ and Greeting carry their own
// dedicated catalog fields.
func (s Step) contentKey() catalog.StepKey {
	switch s {
	case StepEventType:
		return catalog.StepEventType
	case StepCity:
		return catalog.StepCity
	case StepGroupSize:
		return catalog.StepGroupSize
	case StepDates:
		return catalog.StepDates
	case StepBudget:
		return catalog.StepBudget
	case StepContact:
		return catalog.StepContact
	case StepSpecialNeeds:
		return catalog.StepSpecialNeeds
	case StepConsent:
		return catalog.StepConsent
	case StepSuccess:
		return catalog.StepSuccess
	}
	return catalog.StepGreeting
}
