package view_test

import (
	"testing"

	"swiftaid/internal/domain"
	"swiftaid/internal/view"
)

func f64ptr(v float64) *float64 { return &v }

func TestRenderMap_SkipsRecordsWithoutCoordinates(t *testing.T) {
	t.Parallel()

	incidents := []domain.Incident{
		{ID: "i1", UserEmail: "a@b.c", Lat: f64ptr(14.47), Lng: f64ptr(75.92), AccelMag: 3.456, Speed: 42},
		{ID: "i2", UserEmail: "x@y.z"},
		{ID: "i3", UserEmail: "bad@range.io", Lat: f64ptr(120), Lng: f64ptr(75)},
	}

	mv := view.RenderMap(incidents)
	if len(mv.Markers) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(mv.Markers))
	}
	if mv.Markers[0].Popup.Reporter != "a@b.c" {
		t.Fatalf("unexpected reporter: %q", mv.Markers[0].Popup.Reporter)
	}
}

func TestRenderMap_AccelTwoDecimals(t *testing.T) {
	t.Parallel()

	mv := view.RenderMap([]domain.Incident{
		{ID: "i1", Lat: f64ptr(1), Lng: f64ptr(2), AccelMag: 3.456},
	})
	if got := mv.Markers[0].Popup.AccelMag; got != "3.46" {
		t.Fatalf("expected accel %q, got %q", "3.46", got)
	}
}

func TestRenderMap_FixedCenter(t *testing.T) {
	t.Parallel()

	mv := view.RenderMap(nil)
	if mv.CenterLat != view.MapCenterLat || mv.CenterLng != view.MapCenterLng || mv.Zoom != view.MapZoom {
		t.Fatalf("unexpected map frame: %+v", mv)
	}
	if len(mv.Markers) != 0 {
		t.Fatalf("expected no markers, got %d", len(mv.Markers))
	}
}
