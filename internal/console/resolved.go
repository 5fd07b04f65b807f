package console

import (
	"context"
	"log/slog"

	"swiftaid/internal/domain"
	"swiftaid/internal/view"
	"swiftaid/pkg/e"
)

type Resolved struct {
	api    UpstreamAPI
	logger *slog.Logger
}

func NewResolvedService(api UpstreamAPI, logger *slog.Logger) *Resolved {
	return &Resolved{api: api, logger: logger}
}

func (r *Resolved) List(ctx context.Context) (view.ResolvedList, error) {
	cases, err := r.api.ResolvedCases(ctx)
	if err != nil {
		return view.ResolvedList{}, e.WrapError(ctx, "resolved.List", err)
	}
	return view.RenderResolvedCases(cases), nil
}

func (r *Resolved) Delete(ctx context.Context, caseID string) (domain.Outcome, error) {
	ack, err := r.api.DeleteResolvedCase(ctx, caseID)
	if err != nil {
		r.logger.Warn("delete resolved case failed", slog.String("case_id", caseID), slog.Any("error", err))
		return domain.Outcome{Message: "Failed to delete resolved case. Try again.", Retryable: true}, nil
	}
	if !ack.Success {
		return domain.Outcome{Message: ack.Message}, nil
	}
	return domain.Outcome{
		Success: true,
		Message: ack.Message,
		Removed: caseID,
		Refresh: []domain.Collection{domain.CollectionResolved, domain.CollectionAmbulances},
	}, nil
}

// DocumentURL is handed to the browser as a plain navigation; the
// console never streams the document itself.
func (r *Resolved) DocumentURL(caseID string) string {
	return r.api.DownloadResolvedCaseURL(caseID)
}
