package view_test

import (
	"testing"

	"swiftaid/internal/domain"
	"swiftaid/internal/view"
)

func TestRenderAssignPopup_FiltersAvailable(t *testing.T) {
	t.Parallel()

	popup := view.RenderAssignPopup("I1", []domain.Ambulance{
		{ID: "a1", VehicleNumber: "KA-01", DriverName: "Asha Rao", Phone: "9876543210", Status: domain.AmbulanceAvailable},
		{ID: "a2", VehicleNumber: "KA-02", Status: domain.AmbulanceOnDuty, AssignedCase: "inc-7"},
	})

	if popup.IncidentID != "I1" {
		t.Fatalf("expected incident I1, got %q", popup.IncidentID)
	}
	if len(popup.Options) != 1 || popup.Options[0].AmbulanceID != "a1" {
		t.Fatalf("unexpected options: %+v", popup.Options)
	}
	if popup.Empty != "" {
		t.Fatalf("unexpected empty message: %q", popup.Empty)
	}
}

func TestRenderAssignPopup_NoneAvailable(t *testing.T) {
	t.Parallel()

	popup := view.RenderAssignPopup("I1", []domain.Ambulance{
		{ID: "a1", Status: domain.AmbulanceOnDuty},
	})

	if len(popup.Options) != 0 {
		t.Fatalf("expected no options, got %+v", popup.Options)
	}
	if popup.Empty != "No available ambulances right now." {
		t.Fatalf("unexpected empty message: %q", popup.Empty)
	}
}

// A stale record claiming availability while still holding a case must
// never be offered for a second assignment.
func TestRenderAssignPopup_AssignedNeverOffered(t *testing.T) {
	t.Parallel()

	popup := view.RenderAssignPopup("I1", []domain.Ambulance{
		{ID: "a1", Status: domain.AmbulanceAvailable, AssignedCase: "inc-1"},
	})
	if len(popup.Options) != 0 {
		t.Fatalf("expected no options, got %+v", popup.Options)
	}
}
