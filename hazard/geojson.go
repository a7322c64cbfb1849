package hazard

import (
	"encoding/json"
	"fmt"

	index "github.com/blevesearch/bleve_index_api"

	"github.com/irregularpack/cde/geom"
)

// GeoJSONAdapter exposes one quality-zone hazard's shape as a
// bleve_index_api.GeoJSON value: a one-way, read-only view so an
// external geo search index can enumerate and intersect-test quality
// zones without this module depending on bleve for anything beyond
// that interface. The CDE's own collision queries never go through
// this type; it exists purely for external indexing.
type GeoJSONAdapter struct {
	shape *geom.Shape
	tol   geom.Tolerance
}

// NewGeoJSONAdapter wraps shape for indexing.
func NewGeoJSONAdapter(shape *geom.Shape, tol geom.Tolerance) *GeoJSONAdapter {
	return &GeoJSONAdapter{shape: shape, tol: tol}
}

// Type reports the GeoJSON geometry type, always "Polygon".
func (a *GeoJSONAdapter) Type() string { return "Polygon" }

// Value returns the shape encoded as GeoJSON Polygon coordinates:
// exterior ring first, then each hole.
func (a *GeoJSONAdapter) Value() []byte {
	rings := make([][][2]float64, 0, 1+len(a.shape.Holes))
	rings = append(rings, ringCoords(a.shape.Exterior))
	for _, h := range a.shape.Holes {
		rings = append(rings, ringCoords(h))
	}
	b, err := json.Marshal(struct {
		Type        string         `json:"type"`
		Coordinates [][][2]float64 `json:"coordinates"`
	}{Type: "Polygon", Coordinates: rings})
	if err != nil {
		return nil
	}
	return b
}

func ringCoords(r geom.Ring) [][2]float64 {
	out := make([][2]float64, len(r))
	for i, p := range r {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// Intersects reports whether other overlaps this zone. Only other
// *GeoJSONAdapter values are understood; anything else is rejected
// rather than guessed at, since there is no shared geometry to test.
func (a *GeoJSONAdapter) Intersects(other index.GeoJSON) (bool, error) {
	o, ok := other.(*GeoJSONAdapter)
	if !ok {
		return false, fmt.Errorf("hazard: cannot test intersection against %T", other)
	}
	if !geom.RectsCollide(a.shape.Bound(), o.shape.Bound()) {
		return false, nil
	}
	for i := 0; i < a.shape.NumEdges(); i++ {
		for j := 0; j < o.shape.NumEdges(); j++ {
			if geom.EdgesCollide(a.shape.Edge(i), o.shape.Edge(j), a.tol) {
				return true, nil
			}
		}
	}
	if a.shape.Contains(o.shape.Centroid(), a.tol) == geom.Inside {
		return true, nil
	}
	if o.shape.Contains(a.shape.Centroid(), a.tol) == geom.Inside {
		return true, nil
	}
	return false, nil
}
