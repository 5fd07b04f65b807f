package domain

type AmbulanceStatus string

const (
	AmbulanceAvailable AmbulanceStatus = "available"
	AmbulanceOnDuty    AmbulanceStatus = "on-duty"
)

// Toggled returns the status a manual toggle would switch to.
func (s AmbulanceStatus) Toggled() AmbulanceStatus {
	if s == AmbulanceAvailable {
		return AmbulanceOnDuty
	}
	return AmbulanceAvailable
}

type Ambulance struct {
	ID            string          `json:"_id"`
	VehicleNumber string          `json:"vehicle_number"`
	DriverName    string          `json:"driver_name"`
	Phone         string          `json:"phone"`
	Status        AmbulanceStatus `json:"status"`
	AssignedCase  string          `json:"assigned_case,omitempty"`
}

// Locked reports whether the unit is bound to a case and must not
// offer a manual status toggle.
func (a Ambulance) Locked() bool {
	return a.AssignedCase != ""
}

// Normalized enforces the assignment invariant: a unit linked to a
// case is on-duty no matter what its raw status field says. An
// unlinked unit keeps its status, a manual on-duty toggle is not
// reverted.
func (a Ambulance) Normalized() Ambulance {
	if a.AssignedCase != "" {
		a.Status = AmbulanceOnDuty
	}
	return a
}
