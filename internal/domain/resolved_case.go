package domain

// ResolvedCase is a read-only projection of a finalized incident.
type ResolvedCase struct {
	ID            string `json:"_id"`
	IncidentID    string `json:"incident_id"`
	HospitalName  string `json:"hospital_name"`
	UserEmail     string `json:"user_email"`
	DriverName    string `json:"driver_name,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	ResolvedAt    string `json:"resolved_at"`
}
