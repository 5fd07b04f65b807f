package console

import (
	"context"
	"errors"
	"log/slog"

	"swiftaid/internal/domain"
	"swiftaid/internal/view"
	"swiftaid/pkg/e"
	"swiftaid/pkg/validator"
)

type Fleet struct {
	api    UpstreamAPI
	logger *slog.Logger
}

func NewFleetService(api UpstreamAPI, logger *slog.Logger) *Fleet {
	return &Fleet{api: api, logger: logger}
}

// List fetches the full fleet and rebuilds the card list from scratch.
// Callers refresh through here after every mutating action.
func (f *Fleet) List(ctx context.Context) (view.AmbulanceList, error) {
	ambs, err := f.api.Ambulances(ctx)
	if err != nil {
		return view.AmbulanceList{}, e.WrapError(ctx, "fleet.List", err)
	}
	return view.RenderAmbulances(ambs), nil
}

// Add validates the submission client-side before any request leaves
// the console; the upstream message is still authoritative.
func (f *Fleet) Add(ctx context.Context, req domain.AddAmbulanceRequest) (domain.Outcome, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return domain.Outcome{}, e.Wrap(err.Error(), e.ErrInvalidInput)
	}

	ack, err := f.api.AddAmbulance(ctx, req)
	if err != nil {
		f.logger.Warn("add ambulance failed", slog.String("vehicle", req.VehicleNumber), slog.Any("error", err))
		return domain.Outcome{Message: "Failed to add ambulance. Try again.", Retryable: true}, nil
	}
	if !ack.Success {
		return domain.Outcome{Message: ack.Message}, nil
	}

	f.logger.Info("ambulance added", slog.String("vehicle", req.VehicleNumber))
	return domain.Outcome{
		Success: true,
		Message: ack.Message,
		Refresh: []domain.Collection{domain.CollectionAmbulances},
	}, nil
}

// Toggle flips a unit between available and on-duty after operator
// confirmation. Units holding a case are locked and never toggled.
func (f *Fleet) Toggle(ctx context.Context, req domain.ToggleAmbulanceRequest) (domain.Outcome, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return domain.Outcome{}, e.Wrap(err.Error(), e.ErrInvalidInput)
	}
	if !req.Confirmed {
		return domain.Outcome{}, e.ErrNotConfirmed
	}

	ambs, err := f.api.Ambulances(ctx)
	if err != nil {
		return domain.Outcome{Message: "Failed to update status. Try again.", Retryable: true}, nil
	}
	for _, amb := range ambs {
		if amb.ID == req.AmbulanceID && amb.Locked() {
			return domain.Outcome{}, e.Wrap("fleet.Toggle: "+req.AmbulanceID, e.ErrLocked)
		}
	}

	next := req.Current.Toggled()
	ack, err := f.api.UpdateAmbulanceStatus(ctx, req.AmbulanceID, next)
	if err != nil {
		if errors.Is(err, e.ErrCanceled) || errors.Is(err, e.ErrDeadline) {
			return domain.Outcome{}, err
		}
		f.logger.Warn("toggle status failed", slog.String("ambulance_id", req.AmbulanceID), slog.Any("error", err))
		return domain.Outcome{Message: "Failed to update status. Try again.", Retryable: true}, nil
	}
	if !ack.Success {
		return domain.Outcome{Message: ack.Message}, nil
	}

	f.logger.Info("ambulance status updated",
		slog.String("ambulance_id", req.AmbulanceID),
		slog.String("status", string(next)),
	)
	return domain.Outcome{
		Success: true,
		Message: ack.Message,
		Refresh: []domain.Collection{domain.CollectionAmbulances},
	}, nil
}
