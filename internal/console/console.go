// Package console holds the dispatch-console orchestration layer: each
// operation turns one operator gesture into at most one upstream call
// and a typed Outcome naming the collections the UI must refetch.
package console

import (
	"context"
	"errors"

	"swiftaid/internal/domain"
	"swiftaid/internal/upstream"
	"swiftaid/internal/view"
)

//go:generate mockgen -source=console.go -destination=mocks/mock.go

// UpstreamAPI is the slice of the SwiftAid core API the console drives.
type UpstreamAPI interface {
	UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (upstream.Ack, error)
	AddAmbulance(ctx context.Context, req domain.AddAmbulanceRequest) (upstream.Ack, error)
	Ambulances(ctx context.Context) ([]domain.Ambulance, error)
	UpdateAmbulanceStatus(ctx context.Context, ambulanceID string, status domain.AmbulanceStatus) (upstream.Ack, error)
	UpdateCaseStatus(ctx context.Context, incidentID string, status domain.CaseStatus) (upstream.Ack, error)
	DeleteCaseStatus(ctx context.Context, incidentID string) (upstream.Ack, error)
	DeleteIncident(ctx context.Context, incidentID string) (upstream.Ack, error)
	AssignAmbulance(ctx context.Context, incidentID, ambulanceID string) (upstream.Ack, error)
	ResolvedCases(ctx context.Context) ([]domain.ResolvedCase, error)
	DeleteResolvedCase(ctx context.Context, caseID string) (upstream.Ack, error)
	DownloadResolvedCaseURL(caseID string) string
}

type FleetService interface {
	List(ctx context.Context) (view.AmbulanceList, error)
	Add(ctx context.Context, req domain.AddAmbulanceRequest) (domain.Outcome, error)
	Toggle(ctx context.Context, req domain.ToggleAmbulanceRequest) (domain.Outcome, error)
}

type CaseService interface {
	Decide(ctx context.Context, sessionID, incidentID string, status domain.CaseStatus) (domain.Outcome, *view.AssignPopup, error)
	Assign(ctx context.Context, sessionID, ambulanceID string) (domain.Outcome, error)
	CloseAssign(ctx context.Context, sessionID string) error
	DeleteIncident(ctx context.Context, incidentID string) (domain.Outcome, error)
	DeleteDecision(ctx context.Context, incidentID string) (domain.Outcome, error)
}

type ProfileService interface {
	Save(ctx context.Context, req domain.UpdateProfileRequest) (domain.Outcome, error)
}

type ResolvedService interface {
	List(ctx context.Context) (view.ResolvedList, error)
	Delete(ctx context.Context, caseID string) (domain.Outcome, error)
	DocumentURL(caseID string) string
}

// Presentation hints, in milliseconds: the profile form collapses one
// second after a successful save, a deleted incident card fades out
// over 400ms before removal.
const (
	profileCollapseDelayMS = 1000
	incidentFadeDelayMS    = 400
)

type Service struct {
	Fleet    FleetService
	Cases    CaseService
	Profile  ProfileService
	Resolved ResolvedService
}

func NewService(fleet FleetService, cases CaseService, profile ProfileService, resolved ResolvedService) *Service {
	return &Service{
		Fleet:    fleet,
		Cases:    cases,
		Profile:  profile,
		Resolved: resolved,
	}
}

// upstreamMessage pulls the server's human-readable message out of a
// non-2xx answer, if one was attached.
func upstreamMessage(err error) string {
	var se *upstream.StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
