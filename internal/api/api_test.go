package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/svemuri/ghatika/internal/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	cfg := &config.Config{
		Addr:       ":0",
		DefaultLat: 23.0,
		DefaultLon: 77.0,
		DefaultTZ:  ist,
	}

	r := gin.New()
	RegisterRoutes(r, cfg)
	return r
}

func get(t *testing.T, r *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
	return w, body
}

func TestSunriseEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/sunrise?date=2025-03-20")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	rise, ok := body["sunrise"].(map[string]any)
	if !ok {
		t.Fatalf("missing sunrise object: %v", body)
	}
	if found, _ := rise["found"].(bool); !found {
		t.Errorf("sunrise.found = %v, want true", rise["found"])
	}
	if _, ok := body["daylight_hours"]; !ok {
		t.Error("missing daylight_hours for a normal day")
	}
}

func TestSunriseEndpoint_PolarNight(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/sunrise?lat=78.2&lon=15.6&tz=UTC&date=2025-01-05")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	rise := body["sunrise"].(map[string]any)
	if found, _ := rise["found"].(bool); found {
		t.Error("sunrise.found = true during polar night, want false")
	}
	if _, ok := body["daylight_hours"]; ok {
		t.Error("daylight_hours present during polar night")
	}
}

func TestAncientEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/ancient?at=2025-03-20T09:30:00%2B05:30")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if found, _ := body["found"].(bool); !found {
		t.Fatalf("found = %v, want true", body["found"])
	}
	reading, ok := body["reading"].(map[string]any)
	if !ok {
		t.Fatalf("missing reading: %v", body)
	}
	ghati, _ := reading["ghati"].(float64)
	if ghati < 0 || ghati >= 60 {
		t.Errorf("ghati = %v, want within [0, 60)", ghati)
	}
}

func TestSkyEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/sky?at=2025-03-20T21:00:00%2B05:30")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	stars, ok := body["stars"].([]any)
	if !ok || len(stars) == 0 {
		t.Fatalf("missing stars: %v", body)
	}
	if _, ok := body["sidereal_hours"].(float64); !ok {
		t.Errorf("missing sidereal_hours: %v", body)
	}
}

func TestTransitEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/transit?star=Sirius&date=2025-03-20")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if _, ok := body["transit"].(string); !ok {
		t.Errorf("missing transit time: %v", body)
	}
	pos, ok := body["pos"].(map[string]any)
	if !ok {
		t.Fatalf("missing pos: %v", body)
	}
	// Sirius culminates around 50° from 23°N.
	alt, _ := pos["alt_deg"].(float64)
	if alt < 45 || alt > 55 {
		t.Errorf("transit altitude = %v, want ~50", alt)
	}
}

func TestTransitEndpoint_UnknownStar(t *testing.T) {
	r := newTestRouter(t)

	w, _ := get(t, r, "/api/transit?star=Nibiru&date=2025-03-20")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSolveEndpoint_Unreachable(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/solve?star=Sirius&alt=80&date=2025-03-20")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	candidates, ok := body["candidates"].([]any)
	if !ok {
		t.Fatalf("candidates missing or null: %v", body)
	}
	if len(candidates) != 0 {
		t.Errorf("candidates = %v, want empty for an unreachable altitude", candidates)
	}
}

func TestSolveEndpoint_MissingAlt(t *testing.T) {
	r := newTestRouter(t)

	w, _ := get(t, r, "/api/solve?star=Sirius&date=2025-03-20")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBadParams(t *testing.T) {
	r := newTestRouter(t)

	urls := []string{
		"/api/sunrise?lat=north",
		"/api/sunrise?tz=Mars/Olympus",
		"/api/sunrise?date=20-03-2025",
		"/api/sunrise?at=yesterday",
	}
	for _, url := range urls {
		w, _ := get(t, r, url)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", url, w.Code)
		}
	}
}

func TestPanchangEndpoint(t *testing.T) {
	r := newTestRouter(t)

	// 2025-03-20 is a Thursday.
	w, body := get(t, r, "/api/panchang?date=2025-03-20")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if vaar, _ := body["vaar"].(string); vaar != "Guruvāra" {
		t.Errorf("vaar = %q, want Guruvāra", vaar)
	}
}
