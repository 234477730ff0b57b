package webd

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tuw-geo/equi7go/params"
)

func newTestDaemon(t *testing.T) *WebDaemon {
	t.Helper()
	d, err := NewWebDaemon(params.DefaultTestWebDaemonConfig())
	if err != nil {
		t.Fatalf("NewWebDaemon: %v", err)
	}
	return d
}

func doRequest(t *testing.T, d *WebDaemon, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	d.NewRouter().ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	d := newTestDaemon(t)
	rec := doRequest(t, d, http.MethodGet, "/ping", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "pong" {
		t.Fatalf("got body %q, want pong", got)
	}
}

func TestConvertLonLat(t *testing.T) {
	d := newTestDaemon(t)
	rec := doRequest(t, d, http.MethodGet, "/convert/lonlat?lon=15.1&lat=45.3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Zone string  `json:"zone"`
		X    float64 `json:"x"`
		Y    float64 `json:"y"`
		Tile struct {
			Name string `json:"name"`
		} `json:"tile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Zone != "EU" {
		t.Fatalf("got zone %q, want EU", resp.Zone)
	}
	if math.Abs(resp.X-5138743.127891) > 0.5 || math.Abs(resp.Y-1307029.157093) > 0.5 {
		t.Fatalf("got (%.6f, %.6f)", resp.X, resp.Y)
	}
	if resp.Tile.Name != "EU500M_E048N012T6" {
		t.Fatalf("got tile %q, want EU500M_E048N012T6", resp.Tile.Name)
	}
}

func TestConvertLonLatRejects(t *testing.T) {
	d := newTestDaemon(t)
	if rec := doRequest(t, d, http.MethodGet, "/convert/lonlat?lon=abc&lat=45.3", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
	if rec := doRequest(t, d, http.MethodGet, "/convert/lonlat?lon=190&lat=45.3", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestConvertXY(t *testing.T) {
	d := newTestDaemon(t)
	rec := doRequest(t, d, http.MethodGet, "/convert/xy?zone=EU&x=5138743.127891&y=1307029.157093", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body)
	}
	var resp struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if math.Abs(resp.Lon-15.1) > 1e-5 || math.Abs(resp.Lat-45.3) > 1e-5 {
		t.Fatalf("got (%.8f, %.8f), want (15.1, 45.3)", resp.Lon, resp.Lat)
	}
}

func TestDecodeTilenameEndpoint(t *testing.T) {
	d := newTestDaemon(t)
	rec := doRequest(t, d, http.MethodGet, "/tiles/EU500M_E042N006T6", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body)
	}
	var resp tileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Zone != "EU" || resp.Sampling != 500 || resp.Type != "T6" {
		t.Fatalf("got %+v", resp)
	}
	if resp.Extent != [4]float64{4200000, 600000, 4800000, 1200000} {
		t.Fatalf("got extent %v", resp.Extent)
	}

	if rec := doRequest(t, d, http.MethodGet, "/tiles/EU500M_E042N006T3", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestSearchTilesEndpoint(t *testing.T) {
	d := newTestDaemon(t)
	body := `{"bbox": [-8, 44, -2, 47.5], "coverland": true}`

	for run := 0; run < 2; run++ { // second run hits the cache
		rec := doRequest(t, d, http.MethodPost, "/tiles/search", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("run %d: got status %d, want 200: %s", run, rec.Code, rec.Body)
		}
		var resp struct {
			Count int      `json:"count"`
			Tiles []string `json:"tiles"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		want := []string{
			"EU500M_E030N012T6", "EU500M_E036N012T6", "EU500M_E036N018T6",
		}
		if resp.Count != len(want) {
			t.Fatalf("run %d: got count %d, want %d: %v", run, resp.Count, len(want), resp.Tiles)
		}
		for i, name := range want {
			if resp.Tiles[i] != name {
				t.Fatalf("run %d: tile %d = %q, want %q", run, i, resp.Tiles[i], name)
			}
		}
	}
}

func TestSearchTilesEndpointRejects(t *testing.T) {
	d := newTestDaemon(t)
	if rec := doRequest(t, d, http.MethodPost, "/tiles/search", "not json"); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want 422", rec.Code)
	}
	if rec := doRequest(t, d, http.MethodPost, "/tiles/search", `{}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want 422", rec.Code)
	}
	if rec := doRequest(t, d, http.MethodPost, "/tiles/search", `{"bbox": [1, 2, 3]}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want 422", rec.Code)
	}
}
