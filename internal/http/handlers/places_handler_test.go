// README: Tests for place autocomplete and details handlers.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cabsafar/internal/http/handlers"
	mapssvc "cabsafar/internal/maps"
	"cabsafar/internal/modules/catalog"
)

// stubCatalogStore serves a fixed city list; other catalog methods are unused.
type stubCatalogStore struct {
	catalog.CatalogSource
	cities []catalog.City
}

func (s stubCatalogStore) ListCities(_ context.Context) ([]catalog.City, error) {
	return s.cities, nil
}

type stubPlaceSource struct {
	preds     []mapssvc.Prediction
	predsErr  error
	detail    mapssvc.PlaceDetail
	detailErr error
}

func (s stubPlaceSource) Autocomplete(_ context.Context, _ string) ([]mapssvc.Prediction, error) {
	return s.preds, s.predsErr
}

func (s stubPlaceSource) Detail(_ context.Context, _ string) (mapssvc.PlaceDetail, error) {
	return s.detail, s.detailErr
}

func newPlacesRouter(places handlers.PlaceSource, cities []catalog.City) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewPlacesHandler(places, catalog.NewService(stubCatalogStore{cities: cities}))
	r := gin.New()
	r.GET("/api/places/autocomplete", h.Autocomplete)
	r.GET("/api/places/details", h.Detail)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
	}
	return w, body
}

func suggestionList(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["suggestions"].([]any)
	if !ok {
		t.Fatalf("no suggestions in %v", body)
	}
	out := make([]map[string]any, 0, len(raw))
	for _, s := range raw {
		out = append(out, s.(map[string]any))
	}
	return out
}

func TestAutocomplete_QueryTooShort(t *testing.T) {
	r := newPlacesRouter(nil, nil)
	w, _ := getJSON(t, r, "/api/places/autocomplete?q=v")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAutocomplete_CatalogOnlyWithoutPlaceSource(t *testing.T) {
	cities := []catalog.City{{ID: "ct-var", Name: "Varanasi"}, {ID: "ct-del", Name: "Delhi"}}
	r := newPlacesRouter(nil, cities)

	w, body := getJSON(t, r, "/api/places/autocomplete?q=var")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := suggestionList(t, body)
	if len(got) != 1 || got[0]["name"] != "Varanasi" || got[0]["city_id"] != "ct-var" {
		t.Errorf("suggestions = %v, want only Varanasi flagged as a catalog city", got)
	}
}

func TestAutocomplete_PredictionsFlaggedByNormalizedCity(t *testing.T) {
	cities := []catalog.City{{ID: "ct-var", Name: "Varanasi"}}
	places := stubPlaceSource{preds: []mapssvc.Prediction{
		{Description: "Varanasi Cantt, Uttar Pradesh, India", MainText: "Varanasi Cantt", PlaceID: "p1"},
		{Description: "Vapi, Gujarat, India", MainText: "Vapi", PlaceID: "p2"},
	}}
	r := newPlacesRouter(places, cities)

	// "varanasi cantt" does not prefix-match the catalog entry, so both
	// suggestions come from predictions.
	w, body := getJSON(t, r, "/api/places/autocomplete?q=varanasi+cantt")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := suggestionList(t, body)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if got[0]["city_id"] != "ct-var" {
		t.Errorf("prediction %v not flagged with the Varanasi city id", got[0])
	}
	if _, ok := got[1]["city_id"]; ok {
		t.Errorf("prediction %v wrongly flagged as a catalog city", got[1])
	}
}

func TestAutocomplete_DuplicateCityNotRepeated(t *testing.T) {
	cities := []catalog.City{{ID: "ct-del", Name: "Delhi"}}
	places := stubPlaceSource{preds: []mapssvc.Prediction{
		{Description: "Delhi, India", MainText: "Delhi", PlaceID: "p1"},
	}}
	r := newPlacesRouter(places, cities)

	w, body := getJSON(t, r, "/api/places/autocomplete?q=del")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := suggestionList(t, body)
	if len(got) != 1 || got[0]["city_id"] != "ct-del" {
		t.Errorf("suggestions = %v, want the catalog entry once", got)
	}
}

func TestAutocomplete_PredictionErrorNonFatal(t *testing.T) {
	cities := []catalog.City{{ID: "ct-del", Name: "Delhi"}}
	places := stubPlaceSource{predsErr: errors.New("quota exceeded")}
	r := newPlacesRouter(places, cities)

	w, body := getJSON(t, r, "/api/places/autocomplete?q=del")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := suggestionList(t, body); len(got) != 1 {
		t.Errorf("suggestions = %v, want catalog match despite lookup failure", got)
	}
}

func TestDetail(t *testing.T) {
	places := stubPlaceSource{detail: mapssvc.PlaceDetail{
		Name:    "Lal Bahadur Shastri Airport",
		Address: "Babatpur, Varanasi, Uttar Pradesh",
	}}
	r := newPlacesRouter(places, nil)

	w, body := getJSON(t, r, "/api/places/details?place_id=p1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["name"] != "Lal Bahadur Shastri Airport" {
		t.Errorf("name = %v, want the resolved place name", body["name"])
	}
	if body["address"] == "" {
		t.Error("address missing from response")
	}
}

func TestDetail_MissingPlaceID(t *testing.T) {
	r := newPlacesRouter(stubPlaceSource{}, nil)
	w, _ := getJSON(t, r, "/api/places/details")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDetail_NoPlaceSource(t *testing.T) {
	r := newPlacesRouter(nil, nil)
	w, _ := getJSON(t, r, "/api/places/details?place_id=p1")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestDetail_LookupFailure(t *testing.T) {
	r := newPlacesRouter(stubPlaceSource{detailErr: errors.New("not found")}, nil)
	w, _ := getJSON(t, r, "/api/places/details?place_id=p1")
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}
