package console_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"

	"swiftaid/internal/console"
	mock_console "swiftaid/internal/console/mocks"
	"swiftaid/internal/domain"
	"swiftaid/internal/upstream"
	"swiftaid/internal/view"
	"swiftaid/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFleetAdd_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)

	req := domain.AddAmbulanceRequest{
		VehicleNumber: "KA-01",
		DriverName:    "Asha Rao",
		Phone:         "9876543210",
	}

	api.EXPECT().
		AddAmbulance(gomock.Any(), req).
		Return(upstream.Ack{Success: true, Message: "Added"}, nil).
		Times(1)

	svc := console.NewFleetService(api, newTestLogger())

	out, err := svc.Add(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !out.Success || out.Message != "Added" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if len(out.Refresh) != 1 || out.Refresh[0] != domain.CollectionAmbulances {
		t.Fatalf("expected ambulance refresh, got %+v", out.Refresh)
	}
}

// Bad input never reaches the wire: the mock has no expectations, any
// upstream call would fail the test.
func TestFleetAdd_ValidationBlocksRequest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  domain.AddAmbulanceRequest
	}{
		{"digits_in_driver_name", domain.AddAmbulanceRequest{VehicleNumber: "KA-01", DriverName: "As4a Rao", Phone: "9876543210"}},
		{"punctuation_in_driver_name", domain.AddAmbulanceRequest{VehicleNumber: "KA-01", DriverName: "Asha, Rao", Phone: "9876543210"}},
		{"phone_too_short", domain.AddAmbulanceRequest{VehicleNumber: "KA-01", DriverName: "Asha Rao", Phone: "98765"}},
		{"phone_too_long", domain.AddAmbulanceRequest{VehicleNumber: "KA-01", DriverName: "Asha Rao", Phone: "98765432100"}},
		{"phone_not_digits", domain.AddAmbulanceRequest{VehicleNumber: "KA-01", DriverName: "Asha Rao", Phone: "98765abcde"}},
		{"missing_vehicle_number", domain.AddAmbulanceRequest{DriverName: "Asha Rao", Phone: "9876543210"}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := console.NewFleetService(mock_console.NewMockUpstreamAPI(ctrl), newTestLogger())

			_, err := svc.Add(context.Background(), c.req)
			if !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestFleetAdd_BusinessFailureKeepsForm(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		AddAmbulance(gomock.Any(), gomock.Any()).
		Return(upstream.Ack{Success: false, Message: "Vehicle already registered"}, nil).
		Times(1)

	svc := console.NewFleetService(api, newTestLogger())

	out, err := svc.Add(context.Background(), domain.AddAmbulanceRequest{
		VehicleNumber: "KA-01", DriverName: "Asha Rao", Phone: "9876543210",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Success {
		t.Fatalf("expected failure outcome")
	}
	if out.Message != "Vehicle already registered" {
		t.Fatalf("server message must surface verbatim, got %q", out.Message)
	}
	if len(out.Refresh) != 0 {
		t.Fatalf("no refresh on failure, got %+v", out.Refresh)
	}
}

func TestFleetToggle_AvailableToOnDuty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		Ambulances(gomock.Any()).
		Return([]domain.Ambulance{{ID: "a1", Status: domain.AmbulanceAvailable}}, nil).
		Times(1)
	api.EXPECT().
		UpdateAmbulanceStatus(gomock.Any(), "a1", domain.AmbulanceOnDuty).
		Return(upstream.Ack{Success: true, Message: "Ambulance marked as on-duty"}, nil).
		Times(1)

	svc := console.NewFleetService(api, newTestLogger())

	out, err := svc.Toggle(context.Background(), domain.ToggleAmbulanceRequest{
		AmbulanceID: "a1",
		Current:     domain.AmbulanceAvailable,
		Confirmed:   true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !out.Success {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if len(out.Refresh) != 1 || out.Refresh[0] != domain.CollectionAmbulances {
		t.Fatalf("expected ambulance refresh, got %+v", out.Refresh)
	}
}

func TestFleetToggle_NotConfirmed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := console.NewFleetService(mock_console.NewMockUpstreamAPI(ctrl), newTestLogger())

	_, err := svc.Toggle(context.Background(), domain.ToggleAmbulanceRequest{
		AmbulanceID: "a1",
		Current:     domain.AmbulanceAvailable,
	})
	if !errors.Is(err, e.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
}

func TestFleetToggle_LockedUnitRefused(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		Ambulances(gomock.Any()).
		Return([]domain.Ambulance{{ID: "a1", Status: domain.AmbulanceOnDuty, AssignedCase: "inc-1"}}, nil).
		Times(1)

	svc := console.NewFleetService(api, newTestLogger())

	_, err := svc.Toggle(context.Background(), domain.ToggleAmbulanceRequest{
		AmbulanceID: "a1",
		Current:     domain.AmbulanceOnDuty,
		Confirmed:   true,
	})
	if !errors.Is(err, e.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestFleetToggle_TransportFailureIsRetryable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		Ambulances(gomock.Any()).
		Return([]domain.Ambulance{{ID: "a1", Status: domain.AmbulanceAvailable}}, nil).
		Times(1)
	api.EXPECT().
		UpdateAmbulanceStatus(gomock.Any(), "a1", domain.AmbulanceOnDuty).
		Return(upstream.Ack{}, e.ErrTransport).
		Times(1)

	svc := console.NewFleetService(api, newTestLogger())

	out, err := svc.Toggle(context.Background(), domain.ToggleAmbulanceRequest{
		AmbulanceID: "a1",
		Current:     domain.AmbulanceAvailable,
		Confirmed:   true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Success || !out.Retryable {
		t.Fatalf("expected retryable failure, got %+v", out)
	}
	if out.Message != "Failed to update status. Try again." {
		t.Fatalf("unexpected message: %q", out.Message)
	}
}

func TestFleetList_RendersCards(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		Ambulances(gomock.Any()).
		Return([]domain.Ambulance{
			{ID: "a1", Status: domain.AmbulanceOnDuty, AssignedCase: "inc-1"},
		}, nil).
		Times(1)

	svc := console.NewFleetService(api, newTestLogger())

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list.Cards) != 1 || list.Cards[0].Action != view.ActionLocked {
		t.Fatalf("unexpected list: %+v", list)
	}
}
