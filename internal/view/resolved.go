package view

import "swiftaid/internal/domain"

type ResolvedRow struct {
	ID            string `json:"id"`
	IncidentID    string `json:"incident_id"`
	HospitalName  string `json:"hospital_name"`
	UserEmail     string `json:"user_email"`
	DriverName    string `json:"driver_name,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	ResolvedAt    string `json:"resolved_at"`
}

type ResolvedList struct {
	Rows  []ResolvedRow `json:"rows"`
	Empty string        `json:"empty,omitempty"`
}

func RenderResolvedCases(cases []domain.ResolvedCase) ResolvedList {
	if len(cases) == 0 {
		return ResolvedList{Empty: "No resolved cases yet."}
	}
	rows := make([]ResolvedRow, 0, len(cases))
	for _, rc := range cases {
		rows = append(rows, ResolvedRow{
			ID:            rc.ID,
			IncidentID:    rc.IncidentID,
			HospitalName:  rc.HospitalName,
			UserEmail:     rc.UserEmail,
			DriverName:    rc.DriverName,
			VehicleNumber: rc.VehicleNumber,
			ResolvedAt:    rc.ResolvedAt,
		})
	}
	return ResolvedList{Rows: rows}
}
