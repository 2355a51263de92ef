package engine

import (
	"github.com/atlasdmc/leadbot/internal/catalog"
	"github.com/atlasdmc/leadbot/internal/faq"
	"github.com/atlasdmc/leadbot/internal/handoff"
)

// InputKind tells the widget which input surface to render.
type InputKind string

const (
	InputActions      InputKind = "actions"
	InputMultiSelect  InputKind = "multi_select"
	InputSingleSelect InputKind = "single_select"
	InputText         InputKind = "text"
	InputContact      InputKind = "contact"
	InputConsent      InputKind = "consent"
	InputFAQ          InputKind = "faq"
	InputHandoff      InputKind = "handoff"
)

// View describes the current step for rendering. Everything the widget shows
// comes from here; it never reaches into engine state directly.
type View struct {
	Step   Step      `json:"step"`
	Input  InputKind `json:"input"`
	Locale string    `json:"locale"`

	Actions     []catalog.Option `json:"actions,omitempty"`
	Options     []catalog.Option `json:"options,omitempty"`
	Selected    []string         `json:"selected,omitempty"`
	Fields      []catalog.Option `json:"fields,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`

	ContinueLabel string `json:"continueLabel,omitempty"`
	FlexibleLabel string `json:"flexibleLabel,omitempty"`
	ConsentLabel  string `json:"consentLabel,omitempty"`
	SubmitLabel   string `json:"submitLabel,omitempty"`
	ConsentGiven  bool   `json:"consentGiven,omitempty"`

	FAQ     *FAQView     `json:"faq,omitempty"`
	Handoff *HandoffView `json:"handoff,omitempty"`
}

// FAQView is the FAQ sub-mode rendering state.
type FAQView struct {
	Intro      string           `json:"intro"`
	Categories []catalog.Option `json:"categories"`
	Active     faq.Category     `json:"active"`
	Entries    []faq.Entry      `json:"entries"`
	BackLabel  string           `json:"backLabel"`
	StartLabel string           `json:"startLabel"`
}

// HandoffView is the terminal-step rendering state.
type HandoffView struct {
	Intro       string          `json:"intro"`
	ReferenceID string          `json:"referenceId"`
	Channels    handoff.Channels `json:"channels"`
	ChatLabel   string          `json:"chatLabel,omitempty"`
	EmailLabel  string          `json:"emailLabel,omitempty"`
	PhoneLabel  string          `json:"phoneLabel,omitempty"`
}

// faqCategoryOrder fixes the display order of category filters.
var faqCategoryOrder = []string{"all", "general", "planning", "logistics"}

// view builds the render descriptor for the current step. Callers hold e.mu.
func (e *Engine) view() View {
	l := e.content()
	v := View{Step: e.step, Locale: e.locale}

	switch e.step {
	case StepGreeting:
		v.Input = InputActions
		v.Actions = []catalog.Option{
			{ID: "start", Label: l.StartProposalLabel},
			{ID: "faq", Label: l.BrowseFAQLabel},
		}

	case StepEventType, StepCity:
		v.Input = InputMultiSelect
		v.Options = l.Options[e.step.contentKey()]
		if e.step == StepEventType {
			v.Selected = append([]string(nil), e.profile.EventTypes...)
		} else {
			v.Selected = append([]string(nil), e.profile.Cities...)
		}
		v.ContinueLabel = l.ContinueLabel

	case StepGroupSize, StepBudget:
		v.Input = InputSingleSelect
		v.Options = l.Options[e.step.contentKey()]

	case StepDates:
		v.Input = InputText
		v.Placeholder = l.Placeholders[catalog.StepDates]
		v.FlexibleLabel = l.FlexibleLabel
		v.ContinueLabel = l.ContinueLabel

	case StepContact:
		v.Input = InputContact
		v.Fields = l.ContactFields
		v.ContinueLabel = l.ContinueLabel

	case StepSpecialNeeds:
		v.Input = InputText
		v.Placeholder = l.Placeholders[catalog.StepSpecialNeeds]
		v.ContinueLabel = l.ContinueLabel

	case StepConsent:
		v.Input = InputConsent
		v.ConsentLabel = l.ConsentLabel
		v.SubmitLabel = l.ConsentGranted
		v.ConsentGiven = e.profile.Consent

	case StepSuccess:
		v.Input = InputHandoff
		h := &HandoffView{
			Intro:       l.HandoffIntro,
			ReferenceID: e.refID,
			ChatLabel:   l.HandoffChat,
			EmailLabel:  l.HandoffEmail,
			PhoneLabel:  l.HandoffPhone,
		}
		if e.handoff != nil {
			h.Channels = e.handoff.Channels(e.profile, e.refID, e.locale)
		}
		v.Handoff = h

	case StepFAQ:
		v.Input = InputFAQ
		categories := make([]catalog.Option, 0, len(faqCategoryOrder))
		for _, id := range faqCategoryOrder {
			categories = append(categories, catalog.Option{ID: id, Label: l.FAQCategories[id]})
		}
		fv := &FAQView{
			Intro:      l.FAQIntro,
			Categories: categories,
			BackLabel:  l.FAQBackLabel,
			StartLabel: l.StartProposalLabel,
		}
		if e.browser != nil {
			fv.Active = e.browser.Category()
			fv.Entries = e.browser.Entries()
		}
		v.FAQ = fv
	}

	return v
}
