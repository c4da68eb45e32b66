package gallery

import (
	"github.com/alexisbeaulieu97/gallery/internal/theme"
)

// Section identifies one framed area of the page.
type Section int

const (
	SectionButtons Section = iota
	SectionChart
	SectionAccordion
	SectionSelect
	SectionInventory
	sectionCount

	noSection Section = -1
)

// Sections returns every section in display order.
func Sections() []Section {
	return []Section{SectionButtons, SectionChart, SectionAccordion, SectionSelect, SectionInventory}
}

func (s Section) String() string {
	switch s {
	case SectionButtons:
		return "Buttons"
	case SectionChart:
		return "Chart"
	case SectionAccordion:
		return "Accordion"
	case SectionSelect:
		return "Select"
	case SectionInventory:
		return "Inventory"
	default:
		return "Unknown"
	}
}

// ThemeChangedMsg is delivered after the store switched themes, whoever
// initiated the change.
type ThemeChangedMsg struct {
	Theme theme.Theme
}

// ErrorMsg shows a message in the error banner.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg hides the error banner.
type ClearErrorMsg struct{}
