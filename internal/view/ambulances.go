package view

import "swiftaid/internal/domain"

type ToggleAction string

const (
	ActionMarkOnDuty    ToggleAction = "mark-on-duty"
	ActionMarkAvailable ToggleAction = "mark-available"
	// ActionLocked means the unit is bound to a case: no toggle is
	// offered until the assignment is released.
	ActionLocked ToggleAction = "locked"
)

type AmbulanceCard struct {
	ID            string                 `json:"id"`
	VehicleNumber string                 `json:"vehicle_number"`
	DriverName    string                 `json:"driver_name"`
	Phone         string                 `json:"phone"`
	Status        domain.AmbulanceStatus `json:"status"`
	Action        ToggleAction           `json:"action"`
	ActionLabel   string                 `json:"action_label"`
	AssignedCase  string                 `json:"assigned_case,omitempty"`
}

type AmbulanceList struct {
	Cards []AmbulanceCard `json:"cards"`
	Empty string          `json:"empty,omitempty"`
}

// RenderAmbulances rebuilds the fleet list from scratch. Records are
// reconciled first, so a unit holding a case always renders on-duty
// and locked regardless of what the raw status field said.
func RenderAmbulances(ambs []domain.Ambulance) AmbulanceList {
	if len(ambs) == 0 {
		return AmbulanceList{Empty: "No ambulances added yet."}
	}

	cards := make([]AmbulanceCard, 0, len(ambs))
	for _, raw := range ambs {
		amb := raw.Normalized()
		card := AmbulanceCard{
			ID:            amb.ID,
			VehicleNumber: amb.VehicleNumber,
			DriverName:    amb.DriverName,
			Phone:         amb.Phone,
			Status:        amb.Status,
			AssignedCase:  amb.AssignedCase,
		}
		switch {
		case amb.Locked():
			card.Action = ActionLocked
			card.ActionLabel = "On Call"
		case amb.Status == domain.AmbulanceAvailable:
			card.Action = ActionMarkOnDuty
			card.ActionLabel = "Mark On-Duty"
		default:
			card.Action = ActionMarkAvailable
			card.ActionLabel = "Mark Available"
		}
		cards = append(cards, card)
	}
	return AmbulanceList{Cards: cards}
}
