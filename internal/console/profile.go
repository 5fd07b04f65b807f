package console

import (
	"context"
	"log/slog"

	"swiftaid/internal/domain"
	"swiftaid/pkg/e"
	"swiftaid/pkg/validator"
)

type Profile struct {
	api    UpstreamAPI
	logger *slog.Logger
}

func NewProfileService(api UpstreamAPI, logger *slog.Logger) *Profile {
	return &Profile{api: api, logger: logger}
}

// Save submits the whole profile form in one multipart request. On
// success the form collapses after a fixed delay and every collection
// refetches; on failure the message shows in place and the form stays
// open.
func (p *Profile) Save(ctx context.Context, req domain.UpdateProfileRequest) (domain.Outcome, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return domain.Outcome{}, e.Wrap(err.Error(), e.ErrInvalidInput)
	}

	ack, err := p.api.UpdateProfile(ctx, req)
	if err != nil {
		p.logger.Warn("profile save failed", slog.Any("error", err))
		return domain.Outcome{Message: "Error saving profile.", Retryable: true}, nil
	}
	if !ack.Success {
		return domain.Outcome{Message: ack.Message}, nil
	}

	p.logger.Info("profile updated", slog.String("hospital", req.HospitalName))
	return domain.Outcome{
		Success: true,
		Message: ack.Message,
		DelayMS: profileCollapseDelayMS,
		Refresh: domain.RefreshAll(),
	}, nil
}
