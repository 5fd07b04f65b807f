package console

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"swiftaid/internal/domain"
	"swiftaid/internal/session"
	"swiftaid/internal/view"
	"swiftaid/pkg/e"
)

type Cases struct {
	api        UpstreamAPI
	selections session.SelectionStore
	logger     *slog.Logger

	mu     sync.Mutex
	inFlight map[string]struct{}
}

func NewCaseService(api UpstreamAPI, selections session.SelectionStore, logger *slog.Logger) *Cases {
	return &Cases{
		api:        api,
		selections: selections,
		logger:     logger,
		inFlight:   make(map[string]struct{}),
	}
}

// Decide handles accept/reject. Accepting never talks upstream: it
// opens the assignment popup, recording the incident as the session's
// current selection. Rejecting is a single upstream call.
func (c *Cases) Decide(ctx context.Context, sessionID, incidentID string, status domain.CaseStatus) (domain.Outcome, *view.AssignPopup, error) {
	switch status {
	case domain.CaseAccepted:
		return c.openAssign(ctx, sessionID, incidentID)
	case domain.CaseRejected:
		out, err := c.reject(ctx, incidentID)
		return out, nil, err
	default:
		return domain.Outcome{}, nil, e.Wrap("cases.Decide: status "+string(status), e.ErrInvalidInput)
	}
}

func (c *Cases) openAssign(ctx context.Context, sessionID, incidentID string) (domain.Outcome, *view.AssignPopup, error) {
	if err := c.selections.Put(ctx, sessionID, incidentID); err != nil {
		return domain.Outcome{}, nil, e.WrapError(ctx, "cases.openAssign", err)
	}

	ambs, err := c.api.Ambulances(ctx)
	if err != nil {
		// Selection stays: the popup is open, the operator may retry
		// loading the list.
		c.logger.Warn("assign popup list fetch failed", slog.String("incident_id", incidentID), slog.Any("error", err))
		return domain.Outcome{Message: "Could not load ambulances. Try again.", Retryable: true}, nil, nil
	}

	popup := view.RenderAssignPopup(incidentID, ambs)
	return domain.Outcome{Success: true}, &popup, nil
}

func (c *Cases) reject(ctx context.Context, incidentID string) (domain.Outcome, error) {
	ack, err := c.api.UpdateCaseStatus(ctx, incidentID, domain.CaseRejected)
	if err != nil {
		c.logger.Warn("reject case failed", slog.String("incident_id", incidentID), slog.Any("error", err))
		return domain.Outcome{Message: "Failed to update case. Try again.", Retryable: true}, nil
	}
	if !ack.Success {
		return domain.Outcome{Message: ack.Message}, nil
	}
	return domain.Outcome{Success: true, Message: ack.Message, Refresh: domain.RefreshAll()}, nil
}

// Assign binds the session's selected incident to one ambulance.
// A second submit for the same session while one is in flight is
// refused, mirroring the disabled "Assigning..." control. A conflict
// means another operator claimed the resource first: the selection is
// dropped and the whole view resynchronized.
func (c *Cases) Assign(ctx context.Context, sessionID, ambulanceID string) (domain.Outcome, error) {
	incidentID, err := c.selections.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, e.ErrNoSelection) {
			return domain.Outcome{}, e.ErrNoSelection
		}
		return domain.Outcome{}, e.WrapError(ctx, "cases.Assign", err)
	}

	if !c.latch(sessionID) {
		return domain.Outcome{Message: "Assignment already in progress"}, nil
	}
	defer c.unlatch(sessionID)

	ack, err := c.api.AssignAmbulance(ctx, incidentID, ambulanceID)
	if err != nil {
		if errors.Is(err, e.ErrConflict) {
			// Lost the race. Local retry is pointless, the server's
			// view wins.
			_ = c.selections.Clear(ctx, sessionID)
			c.logger.Info("assignment conflict",
				slog.String("incident_id", incidentID),
				slog.String("ambulance_id", ambulanceID),
			)
			msg := upstreamMessage(err)
			if msg == "" {
				msg = "Failed to assign ambulance"
			}
			return domain.Outcome{Message: msg, Resync: true}, nil
		}
		c.logger.Warn("assign failed", slog.String("incident_id", incidentID), slog.Any("error", err))
		return domain.Outcome{Message: "Network or server error while assigning ambulance", Retryable: true}, nil
	}
	if !ack.Success {
		return domain.Outcome{Message: ack.Message, Retryable: true}, nil
	}

	if err := c.selections.Clear(ctx, sessionID); err != nil {
		c.logger.Warn("clear selection failed", slog.String("session_id", sessionID), slog.Any("error", err))
	}
	msg := ack.Message
	if msg == "" {
		msg = "Assigned!"
	}
	c.logger.Info("ambulance assigned",
		slog.String("incident_id", incidentID),
		slog.String("ambulance_id", ambulanceID),
	)
	return domain.Outcome{Success: true, Message: msg, Refresh: domain.RefreshAll()}, nil
}

// CloseAssign dismisses the popup; the stored selection always goes
// with it.
func (c *Cases) CloseAssign(ctx context.Context, sessionID string) error {
	return c.selections.Clear(ctx, sessionID)
}

// DeleteIncident removes the case permanently. The card fades out
// client-side and the fleet list refreshes once: the deletion may have
// freed an assigned ambulance.
func (c *Cases) DeleteIncident(ctx context.Context, incidentID string) (domain.Outcome, error) {
	ack, err := c.api.DeleteIncident(ctx, incidentID)
	if err != nil {
		c.logger.Warn("delete incident failed", slog.String("incident_id", incidentID), slog.Any("error", err))
		return domain.Outcome{Message: "Failed to clear case. Please try again.", Retryable: true}, nil
	}
	if !ack.Success {
		return domain.Outcome{Message: ack.Message}, nil
	}

	c.logger.Info("incident deleted", slog.String("incident_id", incidentID))
	return domain.Outcome{
		Success: true,
		Message: ack.Message,
		Removed: incidentID,
		DelayMS: incidentFadeDelayMS,
		Refresh: []domain.Collection{domain.CollectionAmbulances},
	}, nil
}

// DeleteDecision reverts this hospital's accept/reject decision.
func (c *Cases) DeleteDecision(ctx context.Context, incidentID string) (domain.Outcome, error) {
	ack, err := c.api.DeleteCaseStatus(ctx, incidentID)
	if err != nil {
		c.logger.Warn("delete decision failed", slog.String("incident_id", incidentID), slog.Any("error", err))
		return domain.Outcome{Message: "Failed to delete case decision. Try again.", Retryable: true}, nil
	}
	if !ack.Success {
		return domain.Outcome{Message: ack.Message}, nil
	}
	return domain.Outcome{
		Success: true,
		Message: ack.Message,
		Refresh: domain.RefreshAll(),
	}, nil
}

func (c *Cases) latch(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[sessionID]; busy {
		return false
	}
	c.inFlight[sessionID] = struct{}{}
	return true
}

func (c *Cases) unlatch(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, sessionID)
}
