package cde

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/irregularpack/cde/geom"
	"github.com/irregularpack/cde/hazard"
	"github.com/irregularpack/cde/quadtree"
	"github.com/irregularpack/cde/surrogate"
)

// Filter re-exports quadtree.Filter so callers never need to import
// the quadtree package directly.
type Filter = quadtree.Filter

// Mode re-exports quadtree.Mode for the same reason.
type Mode = quadtree.Mode

const (
	Enclosure = quadtree.Enclosure
	Exclusion = quadtree.Exclusion
)

// HazardKey re-exports quadtree.HazardKey.
type HazardKey = quadtree.HazardKey

// Engine is the collision detection engine façade (component G). It is
// safe for concurrent use: queries (Detect*, Collect*) may run
// concurrently with each other and are only excluded by mutating calls
// (Register, SetActive, Deregister, Restore), matching spec.md §5's
// single-writer/many-reader model.
type Engine struct {
	mu sync.RWMutex

	cfg Config
	tol geom.Tolerance

	tree     *quadtree.Tree
	registry *hazard.Registry
	surCfg   surrogate.BuildConfig

	log  *slog.Logger
	snap snapshotLog

	stats statCounters
}

// New builds an engine over bound with cfg. A zero Config is not
// valid; use DefaultConfig() as a starting point.
func New(bound geom.Rect, cfg Config, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	tol := cfg.tolerance(bound.Diagonal())
	tree := quadtree.NewTree(bound, cfg.quadtreeConfig(), tol)
	return &Engine{
		cfg:      cfg,
		tol:      tol,
		tree:     tree,
		registry: hazard.NewRegistry(tree),
		surCfg:   cfg.surrogateConfig(bound, tol),
		log:      log.With("component", "cde"),
	}
}

// Bound returns the bin rectangle the engine was built over.
func (e *Engine) Bound() geom.Rect { return e.tree.Bound() }

// Tolerance returns the engine's geometric tolerance.
func (e *Engine) Tolerance() geom.Tolerance { return e.tol }

// Preprocess runs the shape preprocessing pipeline (component C) with
// the engine's configured tolerance and simplification budget.
func (e *Engine) Preprocess(exterior geom.Ring, holes []geom.Ring) (*geom.Shape, error) {
	return geom.Preprocess(exterior, holes, e.cfg.preprocessConfig(e.tol))
}

// BuildSurrogate runs the surrogate builder (component D) with the
// engine's configured tuning.
func (e *Engine) BuildSurrogate(shape *geom.Shape) *surrogate.Surrogate {
	return surrogate.Build(shape, e.surCfg)
}

// Register adds a new, initially inactive hazard and returns its key
// (spec.md §4.F register). Call SetActive to bind it into the index.
func (e *Engine) Register(shape *geom.Shape, mode Mode, scope string) HazardKey {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := e.registry.Register(shape, mode, scope)
	e.snap.push(logEntry{kind: opRegister, key: key})
	e.stats.registered.Add(1)
	e.log.Debug("hazard registered", "key", key, "scope", scope, "mode", mode.String())
	return key
}

// SetActive binds or unbinds key into the spatial index.
func (e *Engine) SetActive(key HazardKey, active bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	h, err := e.registry.Lookup(key)
	if err != nil {
		return fmt.Errorf("cde: SetActive: %w", err)
	}
	if err := e.registry.SetActive(key, active); err != nil {
		return fmt.Errorf("cde: SetActive: %w", err)
	}
	e.snap.push(logEntry{kind: opActivate, key: key, prevActive: h.Active})
	if active {
		e.stats.activated.Add(1)
	} else {
		e.stats.deactivated.Add(1)
	}
	e.log.Debug("hazard active state changed", "key", key, "active", active)
	return nil
}

// Deregister permanently removes key. It is not undone by Restore;
// callers that want a rollback-safe removal should SetActive(key,
// false) instead and Deregister only after they are certain.
func (e *Engine) Deregister(key HazardKey) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.registry.Deregister(key); err != nil {
		return fmt.Errorf("cde: Deregister: %w", err)
	}
	e.stats.deregistered.Add(1)
	e.log.Debug("hazard deregistered", "key", key)
	return nil
}

// Lookup returns the current state of a registered hazard.
func (e *Engine) Lookup(key HazardKey) (hazard.Hazard, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.Lookup(key)
}
