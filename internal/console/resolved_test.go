package console_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"swiftaid/internal/console"
	mock_console "swiftaid/internal/console/mocks"
	"swiftaid/internal/domain"
	"swiftaid/internal/upstream"
	"swiftaid/pkg/e"
)

func TestResolvedList(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		ResolvedCases(gomock.Any()).
		Return([]domain.ResolvedCase{
			{ID: "rc-1", IncidentID: "inc-1", HospitalName: "City General", ResolvedAt: "2026-03-01 10:00:00"},
		}, nil).
		Times(1)

	svc := console.NewResolvedService(api, newTestLogger())

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list.Rows) != 1 || list.Rows[0].ID != "rc-1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestResolvedDelete_RemovesRowAndRefreshesFleet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		DeleteResolvedCase(gomock.Any(), "rc-1").
		Return(upstream.Ack{Success: true, Message: "Deleted"}, nil).
		Times(1)

	svc := console.NewResolvedService(api, newTestLogger())

	out, err := svc.Delete(context.Background(), "rc-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Removed != "rc-1" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	want := []domain.Collection{domain.CollectionResolved, domain.CollectionAmbulances}
	if len(out.Refresh) != len(want) || out.Refresh[0] != want[0] || out.Refresh[1] != want[1] {
		t.Fatalf("unexpected refresh set: %+v", out.Refresh)
	}
}

func TestResolvedDelete_TransportFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		DeleteResolvedCase(gomock.Any(), "rc-1").
		Return(upstream.Ack{}, e.ErrTransport).
		Times(1)

	svc := console.NewResolvedService(api, newTestLogger())

	out, err := svc.Delete(context.Background(), "rc-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !out.Retryable || out.Message != "Failed to delete resolved case. Try again." {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

func TestResolvedDocumentURL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_console.NewMockUpstreamAPI(ctrl)
	api.EXPECT().
		DownloadResolvedCaseURL("rc-1").
		Return("http://swiftaid-api:5000/download_resolved_case/rc-1").
		Times(1)

	svc := console.NewResolvedService(api, newTestLogger())

	got := svc.DocumentURL("rc-1")
	if got != "http://swiftaid-api:5000/download_resolved_case/rc-1" {
		t.Fatalf("unexpected url: %q", got)
	}
}
