package dashboard

import (
	"github.com/pkg/errors"
)

// Tab identifies one dashboard section. The set is closed: dispatching on a
// Tab value is always exhaustive and ParseTab rejects anything else.
type Tab int

const (
	TabOverview Tab = iota
	TabLeads
	TabCases
	TabMessages
	TabSettings
)

func Tabs() []Tab {
	return []Tab{TabOverview, TabLeads, TabCases, TabMessages, TabSettings}
}

func ParseTab(raw string) (Tab, error) {
	switch raw {
	case "", "overview":
		return TabOverview, nil
	case "leads":
		return TabLeads, nil
	case "cases":
		return TabCases, nil
	case "messages":
		return TabMessages, nil
	case "settings":
		return TabSettings, nil
	}

	return TabOverview, errors.Errorf("unknown dashboard tab %q", raw)
}

func (t Tab) Slug() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabLeads:
		return "leads"
	case TabCases:
		return "cases"
	case TabMessages:
		return "messages"
	case TabSettings:
		return "settings"
	}

	return "overview"
}

func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabLeads:
		return "Leads"
	case TabCases:
		return "Case studies"
	case TabMessages:
		return "Messages"
	case TabSettings:
		return "Settings"
	}

	return "Overview"
}
