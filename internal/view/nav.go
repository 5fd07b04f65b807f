// Package view turns typed entity lists into the rows and states the
// dashboard shows. Everything here is a pure function of its input so
// the rendering rules are testable without a browser.
package view

import "swiftaid/pkg/e"

// HomeSection is the tab shown on load and after a navigation miss.
const HomeSection = "incidents"

var sectionOrder = []string{"incidents", "map", "ambulances", "resolved", "profile"}

type SectionState struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
	Active  bool   `json:"active"`
}

type NavState struct {
	Active   string         `json:"active"`
	Sections []SectionState `json:"sections"`
}

// Navigate activates exactly one section and hides the rest. An
// unknown target keeps the home section visible and reports the miss
// instead of hiding every section.
func Navigate(target string) (NavState, error) {
	for _, id := range sectionOrder {
		if id == target {
			return activate(target), nil
		}
	}
	return activate(HomeSection), e.ErrUnknownSection
}

func activate(target string) NavState {
	st := NavState{Active: target, Sections: make([]SectionState, 0, len(sectionOrder))}
	for _, id := range sectionOrder {
		st.Sections = append(st.Sections, SectionState{
			ID:      id,
			Visible: id == target,
			Active:  id == target,
		})
	}
	return st
}
