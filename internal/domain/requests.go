package domain

type AddAmbulanceRequest struct {
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	DriverName    string `json:"driver_name" validate:"required,drivername"`
	Phone         string `json:"phone" validate:"required,phone10"`
}

type ToggleAmbulanceRequest struct {
	AmbulanceID string          `json:"ambulance_id" validate:"required"`
	Current     AmbulanceStatus `json:"current_status" validate:"required,oneof=available on-duty"`
	Confirmed   bool            `json:"confirmed"`
}

type DecideCaseRequest struct {
	Status CaseStatus `json:"status" validate:"required,oneof=accepted rejected"`
}

type AssignAmbulanceRequest struct {
	AmbulanceID string `json:"ambulance_id" validate:"required"`
}

// UpdateProfileRequest is submitted as a full multipart form on save.
type UpdateProfileRequest struct {
	HospitalName string `json:"hospital_name" validate:"required"`
	Phone        string `json:"phone" validate:"required,phone10"`
	Location     string `json:"location" validate:"required"`
}
