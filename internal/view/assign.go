package view

import "swiftaid/internal/domain"

type AssignOption struct {
	AmbulanceID   string `json:"ambulance_id"`
	VehicleNumber string `json:"vehicle_number"`
	DriverName    string `json:"driver_name"`
	Phone         string `json:"phone"`
}

// AssignPopup binds one incident to one ambulance selection flow.
type AssignPopup struct {
	IncidentID string         `json:"incident_id"`
	Options    []AssignOption `json:"options"`
	Empty      string         `json:"empty,omitempty"`
}

// RenderAssignPopup lists only units that are free to take the case.
// The upstream list endpoint already reconciles status with the
// assigned-case link, so the raw status is trusted here; a unit
// carrying a case is excluded even if its status field lags.
func RenderAssignPopup(incidentID string, ambs []domain.Ambulance) AssignPopup {
	popup := AssignPopup{IncidentID: incidentID}
	for _, amb := range ambs {
		if amb.Status != domain.AmbulanceAvailable || amb.AssignedCase != "" {
			continue
		}
		popup.Options = append(popup.Options, AssignOption{
			AmbulanceID:   amb.ID,
			VehicleNumber: amb.VehicleNumber,
			DriverName:    amb.DriverName,
			Phone:         amb.Phone,
		})
	}
	if len(popup.Options) == 0 {
		popup.Empty = "No available ambulances right now."
	}
	return popup
}
