// Package faq serves the static frequently-asked-questions tables shown by
// the widget's FAQ mode. Entries are locale-keyed and read-only.
package faq

// Category groups FAQ entries by topic.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryGeneral   Category = "general"
	CategoryPlanning  Category = "planning"
	CategoryLogistics Category = "logistics"
)

// ValidCategory reports whether c is a known filter value.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryAll, CategoryGeneral, CategoryPlanning, CategoryLogistics:
		return true
	}
	return false
}

// Link is an optional pointer attached to an entry.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Entry is a single question/answer pair.
type Entry struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category Category `json:"category"`
	Links    []Link   `json:"links,omitempty"`
}

// Entries returns the full ordered table for a locale, falling back to
// English for unknown codes.
func Entries(locale string) []Entry {
	if entries, ok := tables[locale]; ok {
		return entries
	}
	return tables["en"]
}

// Filter returns the entries of a locale matching the category, preserving
// table order. CategoryAll and unknown categories return everything.
func Filter(locale string, cat Category) []Entry {
	entries := Entries(locale)
	if cat == CategoryAll || !ValidCategory(cat) {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Browser holds the transient filter state of one FAQ visit. It is created
// fresh each time the visitor enters FAQ mode, so a previous visit's filter
// never leaks into the next one.
type Browser struct {
	locale   string
	category Category
}

// NewBrowser starts a browsing session showing all topics.
func NewBrowser(locale string) *Browser {
	return &Browser{locale: locale, category: CategoryAll}
}

// SetCategory changes the active filter. Unknown values reset to all.
func (b *Browser) SetCategory(c Category) {
	if !ValidCategory(c) {
		c = CategoryAll
	}
	b.category = c
}

// Category returns the active filter.
func (b *Browser) Category() Category {
	return b.category
}

// SetLocale switches the language the entries render in. The filter is kept:
// a language switch is not a navigation event.
func (b *Browser) SetLocale(locale string) {
	b.locale = locale
}

// Entries returns the currently visible entries.
func (b *Browser) Entries() []Entry {
	return Filter(b.locale, b.category)
}
