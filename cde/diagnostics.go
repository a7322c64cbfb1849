package cde

import (
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

// Stats counts engine activity for observability; it is not part of
// any collision decision. Each field is a point-in-time snapshot of an
// atomic counter taken by Stats(); it is a plain int64, not itself
// atomic, since a snapshot is read-only and never shared as a counter.
type Stats struct {
	Registered             int64
	Activated              int64
	Deactivated            int64
	Deregistered           int64
	Queries                int64
	SurrogateShortCircuits int64
	ExactSweeps            int64
}

// statCounters holds the engine's live counters as atomics so that
// concurrent queries (which only take Engine.mu.RLock) never race on
// the same word: read queries must never contend on shared mutable
// state.
type statCounters struct {
	registered             atomic.Int64
	activated              atomic.Int64
	deactivated            atomic.Int64
	deregistered           atomic.Int64
	queries                atomic.Int64
	surrogateShortCircuits atomic.Int64
	exactSweeps            atomic.Int64
}

func (c *statCounters) snapshot() Stats {
	return Stats{
		Registered:             c.registered.Load(),
		Activated:              c.activated.Load(),
		Deactivated:            c.deactivated.Load(),
		Deregistered:           c.deregistered.Load(),
		Queries:                c.queries.Load(),
		SurrogateShortCircuits: c.surrogateShortCircuits.Load(),
		ExactSweeps:            c.exactSweeps.Load(),
	}
}

// Stats returns a snapshot of the engine's activity counters. It takes
// no lock: every counter is an atomic, so a concurrent query or mutation
// can never torn-read it.
func (e *Engine) Stats() Stats {
	return e.stats.snapshot()
}

// dump is the shape DebugDump serializes; it is deliberately a
// separate type from Engine so internal locks and the registry are
// never reachable through the dumped value.
type dump struct {
	Bound struct {
		MinX, MinY, MaxX, MaxY float64
	} `json:"bound"`
	Stats   Stats        `json:"stats"`
	Hazards []dumpHazard `json:"hazards"`
}

type dumpHazard struct {
	Index      uint32  `json:"index"`
	Generation uint32  `json:"generation"`
	Scope      string  `json:"scope"`
	Mode       string  `json:"mode"`
	Active     bool    `json:"active"`
	Area       float64 `json:"area"`
}

// DebugDump serializes the engine's hazard set and stats to JSON via
// json-iterator (faster than encoding/json for the ad-hoc dumps a live
// debug endpoint produces repeatedly). It is a diagnostics aid only:
// nothing in the engine reads this format back in.
func (e *Engine) DebugDump() ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var d dump
	b := e.tree.Bound()
	d.Bound.MinX, d.Bound.MinY = b.Min().X, b.Min().Y
	d.Bound.MaxX, d.Bound.MaxY = b.Max().X, b.Max().Y
	d.Stats = e.stats.snapshot()

	for _, hit := range e.tree.CollectAll(Filter{}) {
		h, err := e.registry.Lookup(hit.Key)
		if err != nil {
			continue
		}
		d.Hazards = append(d.Hazards, dumpHazard{
			Index:      hit.Key.Index(),
			Generation: hit.Key.Generation(),
			Scope:      h.Scope,
			Mode:       h.Mode.String(),
			Active:     h.Active,
			Area:       h.Shape.Area(),
		})
	}

	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(d)
}
