package upstream_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swiftaid/internal/domain"
	"swiftaid/internal/upstream"
	"swiftaid/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newClient(t *testing.T, h http.HandlerFunc) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return upstream.NewClient(srv.URL, 5*time.Second, newTestLogger())
}

func TestAmbulances_DecodesEnvelope(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/ambulances" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"ambulances": [
				{"_id":"a1","vehicle_number":"KA-01","driver_name":"Asha Rao","phone":"9876543210","status":"available"},
				{"_id":"a2","vehicle_number":"KA-02","driver_name":"Ravi Kumar","phone":"9876543211","status":"on-duty","assigned_case":"inc-9"}
			]
		}`))
	})

	ambs, err := c.Ambulances(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ambs) != 2 {
		t.Fatalf("want 2 ambulances, got %d", len(ambs))
	}
	if ambs[1].AssignedCase != "inc-9" || ambs[1].Status != domain.AmbulanceOnDuty {
		t.Fatalf("unexpected record: %+v", ambs[1])
	}
}

func TestAmbulances_EnvelopeFailure(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "Hospital not registered"}`))
	})

	_, err := c.Ambulances(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var se *upstream.StatusError
	if !errors.As(err, &se) || se.Message != "Hospital not registered" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssignAmbulance_Conflict(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/assign_ambulance" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["incident_id"] != "inc-1" || body["ambulance_id"] != "a1" {
			t.Errorf("unexpected payload: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success": false, "message": "Ambulance was just assigned to another case"}`))
	})

	_, err := c.AssignAmbulance(context.Background(), "inc-1", "a1")
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("409 must unwrap to ErrConflict, got %v", err)
	}
	var se *upstream.StatusError
	if !errors.As(err, &se) || se.Message != "Ambulance was just assigned to another case" {
		t.Fatalf("server message must be preserved, got %v", err)
	}
}

func TestAssignAmbulance_BusinessFailure(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "Incident already resolved"}`))
	})

	ack, err := c.AssignAmbulance(context.Background(), "inc-1", "a1")
	if err != nil {
		t.Fatalf("200 with success=false is not a Go error: %v", err)
	}
	if ack.Success || ack.Message != "Incident already resolved" {
		t.Fatalf("unexpected ack: %+v", ack)
	}
}

func TestUpdateProfile_MultipartFields(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
		}
		for field, want := range map[string]string{
			"hospital_name": "City General",
			"phone":         "9876543210",
			"location":      "Davangere",
		} {
			if got := r.FormValue(field); got != want {
				t.Errorf("field %s = %q, want %q", field, got, want)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "Profile updated"}`))
	})

	ack, err := c.UpdateProfile(context.Background(), domain.UpdateProfileRequest{
		HospitalName: "City General",
		Phone:        "9876543210",
		Location:     "Davangere",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ack.Success {
		t.Fatalf("unexpected ack: %+v", ack)
	}
}

func TestPost_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse connections

	c := upstream.NewClient(srv.URL, time.Second, newTestLogger())

	_, err := c.AddAmbulance(context.Background(), domain.AddAmbulanceRequest{
		VehicleNumber: "KA-01", DriverName: "Asha Rao", Phone: "9876543210",
	})
	if !errors.Is(err, e.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestPost_ContextCanceled(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := c.DeleteIncident(ctx, "inc-1")
	if !errors.Is(err, e.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}

func TestUpdateAmbulanceStatus_Payload(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["ambulance_id"] != "a1" || body["status"] != "on-duty" {
			t.Errorf("unexpected payload: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "Ambulance marked as on-duty"}`))
	})

	ack, err := c.UpdateAmbulanceStatus(context.Background(), "a1", domain.AmbulanceOnDuty)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ack.Message != "Ambulance marked as on-duty" {
		t.Fatalf("unexpected ack: %+v", ack)
	}
}

func TestDownloadResolvedCaseURL_Escapes(t *testing.T) {
	t.Parallel()

	c := upstream.NewClient("http://swiftaid-api:5000/", time.Second, newTestLogger())

	got := c.DownloadResolvedCaseURL("rc 1/x")
	want := "http://swiftaid-api:5000/download_resolved_case/rc%201%2Fx"
	if got != want {
		t.Fatalf("url = %q, want %q", got, want)
	}
}
