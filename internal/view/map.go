package view

import (
	"fmt"

	"swiftaid/internal/domain"
)

// Fixed map center over the service area.
const (
	MapCenterLat = 14.4663
	MapCenterLng = 75.9219
	MapZoom      = 12
)

type Marker struct {
	Lat   float64     `json:"lat"`
	Lng   float64     `json:"lng"`
	Popup MarkerPopup `json:"popup"`
}

type MarkerPopup struct {
	Reporter string  `json:"reporter"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	AccelMag string  `json:"accel_mag"`
	Speed    float64 `json:"speed"`
}

type MapView struct {
	CenterLat float64  `json:"center_lat"`
	CenterLng float64  `json:"center_lng"`
	Zoom      int      `json:"zoom"`
	Markers   []Marker `json:"markers"`
}

// RenderMap places one marker per incident with a plottable location;
// records without coordinates are skipped silently.
func RenderMap(incidents []domain.Incident) MapView {
	mv := MapView{CenterLat: MapCenterLat, CenterLng: MapCenterLng, Zoom: MapZoom}
	for _, inc := range incidents {
		if !inc.HasCoordinates() {
			continue
		}
		mv.Markers = append(mv.Markers, Marker{
			Lat: *inc.Lat,
			Lng: *inc.Lng,
			Popup: MarkerPopup{
				Reporter: inc.UserEmail,
				Lat:      *inc.Lat,
				Lng:      *inc.Lng,
				AccelMag: fmt.Sprintf("%.2f", inc.AccelMag),
				Speed:    inc.Speed,
			},
		})
	}
	return mv
}
