package surrogate

import (
	"math"
	"sort"

	"github.com/irregularpack/cde/geom"
)

// Pole is one inscribed disk of the surrogate.
type Pole struct {
	Circle geom.Circle
}

// Pier is one boundary chord the poles leave uncovered.
type Pier struct {
	Edge geom.Edge
}

// CoverageTier is one entry of a pole-coverage schedule: once a
// surrogate has placed at least Count poles, it must cover at least
// Coverage of the item's area before pole placement may stop early.
type CoverageTier struct {
	Count    int     `yaml:"count"`
	Coverage float64 `yaml:"coverage"`
}

// Surrogate is a built stand-in for one shape's item surrogate. Poles
// are pairwise disjoint by construction and sorted by radius
// descending; Bounding is a circle enclosing every pole (built by
// merging the poles one at a time, so not necessarily the smallest),
// used for an outermost trivial reject before any individual pole is
// tested. ConvexHullIndices is precomputed for inner-distance
// acceleration that the CDE itself does not consume; an external
// no-fit-polygon optimizer may use it.
type Surrogate struct {
	Bounding          geom.Circle
	Poles             []Pole
	Piers             []Pier
	ConvexHullIndices []int

	nFastFailPoles int
	nFastFailPiers int
}

// FastFailPoles returns the fail-fast subset of Poles: the first
// NFastFailPoles poles (already sorted by radius descending), clamped
// to however many poles the surrogate actually has.
func (s *Surrogate) FastFailPoles() []Pole {
	n := s.nFastFailPoles
	if n > len(s.Poles) {
		n = len(s.Poles)
	}
	return s.Poles[:n]
}

// FastFailPiers returns the fail-fast subset of Piers, clamped the
// same way FastFailPoles clamps Poles.
func (s *Surrogate) FastFailPiers() []Pier {
	n := s.nFastFailPiers
	if n > len(s.Piers) {
		n = len(s.Piers)
	}
	return s.Piers[:n]
}

// BuildConfig tunes how many poles/piers are produced and how fine the
// candidate search grid is.
type BuildConfig struct {
	GridStep  float64
	Tiers     int
	MaxPoles  int
	MinRadius float64
	PierGap   float64 // an edge becomes a pier if its midpoint is farther than this from every pole
	MaxPiers  int
	Tolerance geom.Tolerance

	// NFastFailPoles and NFastFailPiers size the fail-fast subsets the
	// two-phase query pipeline tests before falling back to an exact
	// sweep.
	NFastFailPoles int
	NFastFailPiers int

	// PoleCoverageSchedule is the tiered (count, coverage) stopping rule:
	// after Count poles have been placed, area coverage must reach at
	// least Coverage before placement may stop short of MaxPoles.
	PoleCoverageSchedule []CoverageTier
}

// DefaultBuildConfig scales every parameter off bound's diagonal, the
// same scale-aware convention geom.DefaultTolerance uses.
func DefaultBuildConfig(bound geom.Rect, tol geom.Tolerance) BuildConfig {
	diag := bound.Diagonal()
	return BuildConfig{
		GridStep:       diag / 24,
		Tiers:          3,
		MaxPoles:       12,
		MinRadius:      diag / 200,
		PierGap:        diag / 40,
		MaxPiers:       16,
		Tolerance:      tol,
		NFastFailPoles: 4,
		NFastFailPiers: 4,
		PoleCoverageSchedule: []CoverageTier{
			{Count: 1, Coverage: 0.5},
			{Count: 4, Coverage: 0.8},
			{Count: 8, Coverage: 0.9},
		},
	}
}

// Build constructs a Surrogate for shape.
func Build(shape *geom.Shape, cfg BuildConfig) *Surrogate {
	poles := placePoles(shape, cfg)
	piers := placePiers(shape, poles, cfg)
	return &Surrogate{
		Bounding:          boundingCircle(poles),
		Poles:             poles,
		Piers:             piers,
		ConvexHullIndices: convexHullIndices(shape.Exterior),
		nFastFailPoles:    cfg.NFastFailPoles,
		nFastFailPiers:    cfg.NFastFailPiers,
	}
}

// placePoles runs a greedy largest-first placement: at each tier it
// samples a grid of candidate centers, keeps those strictly inside the
// shape whose inscribed radius clears MinRadius, and repeatedly takes
// the largest remaining candidate disjoint from every pole already
// placed. Later tiers halve the grid step to refine coverage in gaps
// the coarser tiers left behind; a tier whose candidate pool is
// exhausted hands over to the next. Placement stops early once the
// configured coverage schedule is satisfied or at MaxPoles, and
// otherwise after the last tier. The final set is sorted by
// radius descending so the fail-fast subset callers consult first is
// always the strongest discriminator.
func placePoles(shape *geom.Shape, cfg BuildConfig) []Pole {
	var poles []Pole
	step := cfg.GridStep
	if step <= 0 {
		return poles
	}
	area := shape.Area()

	for tier := 0; tier < cfg.Tiers && len(poles) < cfg.MaxPoles; tier++ {
		type candidate struct {
			c geom.Circle
		}
		var cands []candidate
		for _, p := range sampleGrid(shape.Bound(), step) {
			if shape.Contains(p, cfg.Tolerance) != geom.Inside {
				continue
			}
			r := distanceToBoundary(shape, p)
			if r < cfg.MinRadius {
				continue
			}
			cands = append(cands, candidate{geom.Circle{Center: p, Radius: r}})
		}

		for len(poles) < cfg.MaxPoles {
			best := -1
			for i, c := range cands {
				if !poleDisjointFromAll(c.c, poles) {
					continue
				}
				if best < 0 || c.c.Radius > cands[best].c.Radius {
					best = i
				}
			}
			if best < 0 {
				break
			}
			poles = append(poles, Pole{Circle: cands[best].c})
			cands[best], cands[len(cands)-1] = cands[len(cands)-1], cands[best]
			cands = cands[:len(cands)-1]

			if coverageScheduleSatisfied(poles, area, cfg.PoleCoverageSchedule) {
				sortPolesByRadiusDescending(poles)
				return poles
			}
		}
		step /= 2
	}
	sortPolesByRadiusDescending(poles)
	return poles
}

func sortPolesByRadiusDescending(poles []Pole) {
	sort.Slice(poles, func(i, j int) bool {
		return poles[i].Circle.Radius > poles[j].Circle.Radius
	})
}

// coverageScheduleSatisfied reports whether poles may stop growing
// under schedule: the schedule's applicable tier is the one with the
// largest Count not exceeding len(poles); placement may stop once the
// poles' combined area reaches that tier's required coverage fraction
// of area. An empty schedule never authorizes an early stop (the
// caller falls back to MaxPoles / candidate exhaustion).
func coverageScheduleSatisfied(poles []Pole, area float64, schedule []CoverageTier) bool {
	if len(schedule) == 0 || area <= 0 {
		return false
	}
	applicable := -1
	for i, t := range schedule {
		if len(poles) >= t.Count && (applicable < 0 || t.Count > schedule[applicable].Count) {
			applicable = i
		}
	}
	if applicable < 0 {
		return false
	}
	covered := 0.0
	for _, p := range poles {
		covered += math.Pi * p.Circle.Radius * p.Circle.Radius
	}
	return covered/area >= schedule[applicable].Coverage
}

func poleDisjointFromAll(c geom.Circle, poles []Pole) bool {
	for _, p := range poles {
		if !c.DisjointFrom(p.Circle) {
			return false
		}
	}
	return true
}

// placePiers adds the shape's own edges whose midpoint sits farther
// than PierGap from every placed pole: the chords that poles, being
// circles, cannot hug closely in a narrow or sharply concave reach.
func placePiers(shape *geom.Shape, poles []Pole, cfg BuildConfig) []Pier {
	var piers []Pier
	n := shape.NumEdges()
	for i := 0; i < n && len(piers) < cfg.MaxPiers; i++ {
		e := shape.Edge(i)
		if e.Degenerate(cfg.Tolerance) {
			continue
		}
		mid := e.Midpoint()
		covered := false
		for _, p := range poles {
			if p.Circle.ContainsPoint(mid) {
				covered = true
				break
			}
			if mid.Dist(p.Circle.Center) <= p.Circle.Radius+cfg.PierGap {
				covered = true
				break
			}
		}
		if !covered {
			piers = append(piers, Pier{Edge: e})
		}
	}
	return piers
}

// sampleGrid returns every point of a regular lattice over r spaced
// step apart on both axes.
func sampleGrid(r geom.Rect, step float64) []geom.Point {
	if step <= 0 {
		return nil
	}
	var out []geom.Point
	for x := r.X.Lo + step/2; x < r.X.Hi; x += step {
		for y := r.Y.Lo + step/2; y < r.Y.Hi; y += step {
			out = append(out, geom.Point{X: x, Y: y})
		}
	}
	return out
}

// distanceToBoundary returns the distance from p (known to be inside
// shape) to the nearest point on any edge of shape, the radius of the
// largest disk centered at p that stays within the shape's silhouette.
func distanceToBoundary(shape *geom.Shape, p geom.Point) float64 {
	best := math.Inf(1)
	n := shape.NumEdges()
	for i := 0; i < n; i++ {
		d := pointSegmentDistance(p, shape.Edge(i))
		if d < best {
			best = d
		}
	}
	return best
}

func pointSegmentDistance(p geom.Point, e geom.Edge) float64 {
	d := e.Vector()
	len2 := d.Norm2()
	if len2 == 0 {
		return p.Dist(e.A)
	}
	t := p.Sub(e.A).Dot(d) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := e.A.Add(d.Mul(t))
	return p.Dist(closest)
}

// boundingCircle computes a circle enclosing every pole disk (not just
// their centers) in a single pass: starting from the first pole, each
// further pole is merged in with enclose, which expands the running
// circle just enough to cover both. The result depends on pole order.
// Good enough for a pre-filter, not a certified minimum.
func boundingCircle(poles []Pole) geom.Circle {
	if len(poles) == 0 {
		return geom.Circle{}
	}
	c := poles[0].Circle
	for _, p := range poles[1:] {
		c = enclose(c, p.Circle)
	}
	return c
}

// enclose returns the smallest circle that contains both a and b as
// disks.
func enclose(a, b geom.Circle) geom.Circle {
	d := a.Center.Dist(b.Center)
	if d+b.Radius <= a.Radius {
		return a
	}
	if d+a.Radius <= b.Radius {
		return b
	}
	r := (d + a.Radius + b.Radius) / 2
	if d == 0 {
		return geom.Circle{Center: a.Center, Radius: r}
	}
	dir := b.Center.Sub(a.Center).Div(d)
	center := a.Center.Add(dir.Mul(r - a.Radius))
	return geom.Circle{Center: center, Radius: r}
}

// convexHullIndices computes the convex hull of ring's vertices via the
// monotone-chain algorithm, returning indices into ring in
// counter-clockwise order. Mirrors the teacher's own
// s2.ConvexHullQuery in spirit (sort, sweep lower then upper chain,
// drop non-left turns) adapted from the sphere to the plane.
func convexHullIndices(ring geom.Ring) []int {
	n := len(ring)
	if n < 3 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return ring[order[i]].LessThan(ring[order[j]])
	})

	cross := func(o, a, b geom.Point) float64 {
		return a.Sub(o).Cross(b.Sub(o))
	}

	lower := make([]int, 0, n)
	for _, idx := range order {
		for len(lower) >= 2 && cross(ring[lower[len(lower)-2]], ring[lower[len(lower)-1]], ring[idx]) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, idx)
	}

	upper := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		idx := order[i]
		for len(upper) >= 2 && cross(ring[upper[len(upper)-2]], ring[upper[len(upper)-1]], ring[idx]) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, idx)
	}

	lower = lower[:len(lower)-1]
	upper = upper[:len(upper)-1]
	return append(lower, upper...)
}
