package webd

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jellydator/ttlcache/v3"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"

	"github.com/tuw-geo/equi7go/grid"
	"github.com/tuw-geo/equi7go/zone"
)

func pingPong(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

// httpStatusFor maps grid errors onto status codes: caller mistakes are
// 400s, everything else is a 500.
func httpStatusFor(err error) int {
	if errors.Is(err, grid.ErrInvalidParameter) || errors.Is(err, grid.ErrTileName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *WebDaemon) writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to write response", "error", err)
	}
}

func queryFloat(r *http.Request, key string) (float64, error) {
	return strconv.ParseFloat(r.URL.Query().Get(key), 64)
}

type tileResponse struct {
	Name     string     `json:"name"`
	Zone     zone.ID    `json:"zone"`
	Sampling int        `json:"sampling"`
	Type     string     `json:"tiletype"`
	Extent   [4]float64 `json:"extent"`
}

func newTileResponse(t grid.Tile) tileResponse {
	ext := t.Extent()
	return tileResponse{
		Name:     t.Name(),
		Zone:     t.Zone,
		Sampling: t.Sampling,
		Type:     string(t.Type),
		Extent:   [4]float64{ext.Min[0], ext.Min[1], ext.Max[0], ext.Max[1]},
	}
}

// handleLonLatToXY converts a geographic point to projected coordinates,
// e.g. GET /convert/lonlat?lon=15.1&lat=45.3. With a zone query parameter
// the point projects into that zone; otherwise the owning zone is found
// first. The containing tile rides along in the response.
func (s *WebDaemon) handleLonLatToXY(w http.ResponseWriter, r *http.Request) {
	lon, errLon := queryFloat(r, "lon")
	lat, errLat := queryFloat(r, "lat")
	if errLon != nil || errLat != nil {
		http.Error(w, "lon and lat query parameters are required", http.StatusBadRequest)
		return
	}

	var id zone.ID
	var x, y float64
	var err error
	if z := r.URL.Query().Get("zone"); z != "" {
		id = zone.ID(z)
		x, y, err = s.grid.LonLatToXYZone(id, lon, lat)
	} else {
		id, x, y, err = s.grid.LonLatToXY(lon, lat)
	}
	if err != nil {
		s.logger.Warn("Failed to convert", "lon", lon, "lat", lat, "error", err)
		http.Error(w, err.Error(), httpStatusFor(err))
		return
	}

	sg, err := s.grid.SubGrid(id)
	if err != nil {
		http.Error(w, err.Error(), httpStatusFor(err))
		return
	}
	t, err := sg.Tilesys.CreateTile(x, y)
	if err != nil {
		http.Error(w, err.Error(), httpStatusFor(err))
		return
	}
	s.writeJSON(w, struct {
		Zone zone.ID      `json:"zone"`
		X    float64      `json:"x"`
		Y    float64      `json:"y"`
		Tile tileResponse `json:"tile"`
	}{id, x, y, newTileResponse(t)})
}

// handleXYToLonLat converts projected coordinates back to lon/lat,
// e.g. GET /convert/xy?zone=EU&x=5138743&y=1307029.
func (s *WebDaemon) handleXYToLonLat(w http.ResponseWriter, r *http.Request) {
	x, errX := queryFloat(r, "x")
	y, errY := queryFloat(r, "y")
	id := zone.ID(r.URL.Query().Get("zone"))
	if errX != nil || errY != nil || id == "" {
		http.Error(w, "zone, x and y query parameters are required", http.StatusBadRequest)
		return
	}
	lon, lat, err := s.grid.XYToLonLat(id, x, y)
	if err != nil {
		http.Error(w, err.Error(), httpStatusFor(err))
		return
	}
	s.writeJSON(w, struct {
		Zone zone.ID `json:"zone"`
		Lon  float64 `json:"lon"`
		Lat  float64 `json:"lat"`
	}{id, lon, lat})
}

// handleDecodeTilename decodes a long-form tilename, e.g.
// GET /tiles/EU500M_E042N006T6.
func (s *WebDaemon) handleDecodeTilename(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	t, err := grid.DecodeTilename(name)
	if err != nil {
		http.Error(w, err.Error(), httpStatusFor(err))
		return
	}
	s.writeJSON(w, newTileResponse(t))
}

// handleSearchTiles searches tiles overlapping a region of interest posted
// as JSON. Exactly one of the region keys must be present:
//
//	{"bbox": [xmin, ymin, xmax, ymax]}
//	{"points": [[lon, lat], ...]}
//	{"xybbox": {"zone": "EU", "bbox": [xmin, ymin, xmax, ymax]}}
//	{"geometry": <GeoJSON Polygon or MultiPolygon>}
//
// plus an optional "coverland" flag. Identical request bodies are answered
// from cache.
func (s *WebDaemon) handleSearchTiles(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil {
		http.Error(w, "Please send a request body", http.StatusBadRequest)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error("Failed to read request body", "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if item := s.searchCache.Get(string(body)); item != nil {
		s.writeTiles(w, item.Value())
		return
	}

	roi, coverland, err := decodeSearchRequest(body)
	if err != nil {
		s.logger.Warn("Failed to decode search request", "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	tiles, err := s.grid.SearchTilesInROI(roi, coverland)
	if err != nil {
		s.logger.Warn("Search failed", "error", err)
		http.Error(w, err.Error(), httpStatusFor(err))
		return
	}

	s.searchCache.Set(string(body), tiles, ttlcache.DefaultTTL)
	s.writeTiles(w, tiles)
}

func (s *WebDaemon) writeTiles(w http.ResponseWriter, tiles []string) {
	s.writeJSON(w, struct {
		Count int      `json:"count"`
		Tiles []string `json:"tiles"`
	}{len(tiles), tiles})
}

func decodeSearchRequest(body []byte) (grid.ROI, bool, error) {
	if !gjson.ValidBytes(body) {
		return grid.ROI{}, false, errors.New("request body is not valid JSON")
	}
	res := gjson.ParseBytes(body)
	coverland := res.Get("coverland").Bool()

	switch {
	case res.Get("bbox").Exists():
		b, err := floats4(res.Get("bbox"))
		if err != nil {
			return grid.ROI{}, false, err
		}
		return grid.BBoxROI(b[0], b[1], b[2], b[3]), coverland, nil

	case res.Get("points").Exists():
		var points []orb.Point
		for _, p := range res.Get("points").Array() {
			pair := p.Array()
			if len(pair) != 2 {
				return grid.ROI{}, false, errors.New("points entries must be [lon, lat] pairs")
			}
			points = append(points, orb.Point{pair[0].Float(), pair[1].Float()})
		}
		if len(points) == 0 {
			return grid.ROI{}, false, errors.New("points must not be empty")
		}
		return grid.PointsROI(points...), coverland, nil

	case res.Get("xybbox").Exists():
		id := zone.ID(res.Get("xybbox.zone").String())
		b, err := floats4(res.Get("xybbox.bbox"))
		if err != nil {
			return grid.ROI{}, false, err
		}
		return grid.XYBBoxROI(id, b[0], b[1], b[2], b[3]), coverland, nil

	case res.Get("geometry").Exists():
		geom, err := geojson.UnmarshalGeometry([]byte(res.Get("geometry").Raw))
		if err != nil {
			return grid.ROI{}, false, err
		}
		return grid.GeometryROI(geom.Geometry()), coverland, nil
	}
	return grid.ROI{}, false, errors.New("one of bbox, points, xybbox or geometry is required")
}

func floats4(res gjson.Result) ([4]float64, error) {
	arr := res.Array()
	if len(arr) != 4 {
		return [4]float64{}, errors.New("bbox must be [xmin, ymin, xmax, ymax]")
	}
	var out [4]float64
	for i, v := range arr {
		out[i] = v.Float()
	}
	return out, nil
}
