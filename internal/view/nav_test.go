package view_test

import (
	"errors"
	"testing"

	"swiftaid/internal/view"
	"swiftaid/pkg/e"
)

func TestNavigate_ExactlyOneSectionVisible(t *testing.T) {
	t.Parallel()

	for _, target := range []string{"incidents", "map", "ambulances", "resolved", "profile"} {
		target := target
		t.Run(target, func(t *testing.T) {
			t.Parallel()

			nav, err := view.Navigate(target)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if nav.Active != target {
				t.Fatalf("expected active=%q got=%q", target, nav.Active)
			}

			visible := 0
			for _, s := range nav.Sections {
				if s.Visible {
					visible++
					if s.ID != target {
						t.Fatalf("wrong section visible: %q", s.ID)
					}
				}
				if s.Active != s.Visible {
					t.Fatalf("active/visible mismatch on %q", s.ID)
				}
			}
			if visible != 1 {
				t.Fatalf("expected exactly 1 visible section, got %d", visible)
			}
		})
	}
}

func TestNavigate_UnknownTargetFallsBackToHome(t *testing.T) {
	t.Parallel()

	nav, err := view.Navigate("no-such-tab")
	if !errors.Is(err, e.ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
	if nav.Active != view.HomeSection {
		t.Fatalf("expected home fallback, got %q", nav.Active)
	}

	// never the hidden-everything state
	visible := 0
	for _, s := range nav.Sections {
		if s.Visible {
			visible++
		}
	}
	if visible != 1 {
		t.Fatalf("expected home visible, got %d visible sections", visible)
	}
}
