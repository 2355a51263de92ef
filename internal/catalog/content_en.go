package catalog

var localeEN = &Locale{
	Code: "en",

	Greeting:           "Hi! I'm the Atlas DMC assistant. I can put together a tailored event proposal for you in under two minutes, or answer common questions about planning events in Morocco.",
	StartProposalLabel: "Request a proposal",
	BrowseFAQLabel:     "Browse FAQ",

	Prompts: map[StepKey]string{
		StepEventType:    "Great! What kind of event are you planning? Pick everything that applies.",
		StepCity:         "Which destinations are you considering?",
		StepGroupSize:    "How many guests are you expecting?",
		StepDates:        "When would the event take place? A month or a rough period is fine.",
		StepBudget:       "What budget per person are you working with?",
		StepContact:      "Almost done. Who should the proposal be addressed to?",
		StepSpecialNeeds: "Any special requirements we should know about? Dietary needs, accessibility, production equipment...",
		StepConsent:      "Last step: we need your consent to process these details and send you the proposal.",
	},

	Options: map[StepKey][]Option{
		StepEventType: {
			{ID: "conference", Label: "Conference"},
			{ID: "incentive", Label: "Incentive trip"},
			{ID: "team-building", Label: "Team building"},
			{ID: "gala-dinner", Label: "Gala dinner"},
			{ID: "product-launch", Label: "Product launch"},
			{ID: "seminar", Label: "Seminar"},
		},
		StepCity: {
			{ID: "marrakech", Label: "Marrakech"},
			{ID: "casablanca", Label: "Casablanca"},
			{ID: "agadir", Label: "Agadir"},
			{ID: "fes", Label: "Fes"},
			{ID: "rabat", Label: "Rabat"},
			{ID: "essaouira", Label: "Essaouira"},
			{ID: "ouarzazate", Label: "Ouarzazate"},
		},
		StepGroupSize: {
			{ID: "under-30", Label: "Fewer than 30"},
			{ID: "30-80", Label: "30 to 80"},
			{ID: "80-200", Label: "80 to 200"},
			{ID: "over-200", Label: "More than 200"},
		},
		StepBudget: {
			{ID: "under-500", Label: "Under 500€"},
			{ID: "500-800", Label: "500–800€"},
			{ID: "800-1200", Label: "800–1,200€"},
			{ID: "over-1200", Label: "More than 1,200€"},
		},
	},

	Placeholders: map[StepKey]string{
		StepDates:        "e.g. March 2026, or second half of May",
		StepSpecialNeeds: "Leave empty if nothing comes to mind",
	},

	ContactFields: []Option{
		{ID: "company", Label: "Company*"},
		{ID: "first_name", Label: "First name*"},
		{ID: "last_name", Label: "Last name*"},
		{ID: "email", Label: "Work email*"},
		{ID: "phone", Label: "Phone (optional)"},
	},

	ContinueLabel:  "Continue",
	FlexibleLabel:  "Our dates are flexible",
	NoneSentinel:   "No special requirements",
	ConsentLabel:   "I agree that Atlas DMC stores and processes these details to prepare my proposal.",
	ConsentGranted: "Consent given — send my request",

	InvalidEmail:   "That email address doesn't look right — could you double-check it?",
	EmptySelection: "Please pick at least one option so I can tailor the proposal.",
	RequiredFields: "Please fill in your company, name and email so we can send the proposal.",
	AnswerRequired: "Please type an answer before continuing.",

	SuccessTemplate:  "Thank you! Your request has been sent. Your reference is %s — keep it handy, our team will come back to you within one business day.",
	SubmissionFailed: "Sorry, something went wrong sending your request. Nothing was lost — please try again in a moment.",

	HandoffIntro: "Prefer to talk to a human right away?",
	HandoffChat:  "Continue on WhatsApp",
	HandoffEmail: "Email us",
	HandoffPhone: "Call us",

	HandoffTemplate: "Hello! I just sent an event request (ref %s). Event type: %s. Destinations: %s. Group size: %s. Dates: %s.",

	FAQIntro:     "Here are the questions we get most often. Filter by topic or scroll through.",
	FAQBackLabel: "Back",
	FAQCategories: map[string]string{
		"all":       "All topics",
		"general":   "General",
		"planning":  "Planning",
		"logistics": "Logistics",
	},
}
