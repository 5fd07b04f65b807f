package domain

type CaseStatus string

const (
	CasePending  CaseStatus = "pending"
	CaseAccepted CaseStatus = "accepted"
	CaseRejected CaseStatus = "rejected"
	CaseResolved CaseStatus = "resolved"
)

// Incident is a reported emergency event as supplied to the console
// (the dashboard page injects the same array for the map).
type Incident struct {
	ID        string   `json:"_id"`
	UserEmail string   `json:"user_email"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	AccelMag  float64  `json:"accel_mag"`
	Speed     float64  `json:"speed"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// HasCoordinates reports whether the incident carries a plottable
// location. Lat -90..90, lng -180..180.
func (i Incident) HasCoordinates() bool {
	if i.Lat == nil || i.Lng == nil {
		return false
	}
	if *i.Lat < -90 || *i.Lat > 90 {
		return false
	}
	if *i.Lng < -180 || *i.Lng > 180 {
		return false
	}
	return true
}
