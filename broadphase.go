package bounds

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/akmonengine/bounds/actor"
)

const (
	DEFAULT_WORKERS   = 1
	DEFAULT_CELL_SIZE = 2.0
	DEFAULT_CELLS     = 1024
	DEFAULT_SKIN      = 0.1
)

var (
	// ErrNilShape is returned when adding a proxy without a shape
	ErrNilShape = errors.New("broadphase: proxy has no shape")
	// ErrNilProxy is returned when removing a nil proxy
	ErrNilProxy = errors.New("broadphase: nil proxy")
)

// Config holds the broadphase settings, zero fields fall back to the defaults
type Config struct {
	CellSize float64
	Cells    int
	Workers  int
	// Skin is the margin of the fat box of every added proxy
	Skin     float64
}

func DefaultConfig() Config {
	return Config{
		CellSize: DEFAULT_CELL_SIZE,
		Cells:    DEFAULT_CELLS,
		Workers:  DEFAULT_WORKERS,
		Skin:     DEFAULT_SKIN,
	}
}

func (c Config) withDefaults() Config {
	if c.CellSize <= 0 {
		c.CellSize = DEFAULT_CELL_SIZE
	}
	if c.Cells <= 0 {
		c.Cells = DEFAULT_CELLS
	}
	c.Workers = max(DEFAULT_WORKERS, c.Workers)
	if c.Skin <= 0 {
		c.Skin = DEFAULT_SKIN
	}

	return c
}

// Broadphase owns the proxies and finds the pairs whose fat boxes overlap
type Broadphase struct {
	Proxies     []*Proxy
	SpatialGrid *SpatialGrid
	Workers     int

	skin   float64
	nextID int
}

func NewBroadphase(config Config) *Broadphase {
	config = config.withDefaults()

	return &Broadphase{
		SpatialGrid: NewSpatialGrid(config.CellSize, config.Cells),
		Workers:     config.Workers,
		skin:        config.Skin,
	}
}

// Add registers a shape at the given transform and computes its fat box.
// Shapes failing actor.ValidateShape are rejected. A shape may be shared
// by several proxies.
func (b *Broadphase) Add(shape actor.Shape, transform actor.Transform, static bool) (*Proxy, error) {
	if shape == nil {
		return nil, ErrNilShape
	}
	if err := actor.ValidateShape(shape); err != nil {
		return nil, fmt.Errorf("broadphase: %w", err)
	}

	proxy := &Proxy{
		ID:        b.nextID,
		Shape:     shape,
		Transform: transform,
		Skin:      b.skin,
		Static:    static,
	}
	b.nextID++
	proxy.Refit()

	b.Proxies = append(b.Proxies, proxy)

	return proxy, nil
}

// Remove removes a proxy from the broadphase
func (b *Broadphase) Remove(proxy *Proxy) error {
	if proxy == nil {
		return ErrNilProxy
	}

	k := -1
	for i, p := range b.Proxies {
		if p == proxy {
			k = i
			break
		}
	}

	if k == -1 {
		return fmt.Errorf("broadphase: proxy %d not registered", proxy.ID)
	}
	b.Proxies = append(b.Proxies[:k], b.Proxies[k+1:]...)

	return nil
}

// Refit recomputes every proxy AABB in parallel and returns how many
// proxies left their fat box
func (b *Broadphase) Refit() int {
	var moved atomic.Int64

	task(max(DEFAULT_WORKERS, b.Workers), b.Proxies, func(proxy *Proxy) {
		if proxy.Refit() {
			moved.Add(1)
		}
	})

	return int(moved.Load())
}

// Pairs rebuilds the grid and returns the overlapping pairs, sorted by proxy ID
func (b *Broadphase) Pairs() []Pair {
	workers := max(DEFAULT_WORKERS, b.Workers)

	b.SpatialGrid.Clear()
	for i, proxy := range b.Proxies {
		b.SpatialGrid.Insert(i, proxy)
	}
	b.SpatialGrid.SortCells()

	pairs := make([]Pair, 0, len(b.Proxies))
	for pair := range b.SpatialGrid.FindPairsParallel(b.Proxies, workers) {
		if pair.ProxyB.ID < pair.ProxyA.ID {
			pair.ProxyA, pair.ProxyB = pair.ProxyB, pair.ProxyA
		}
		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].ProxyA.ID != pairs[j].ProxyA.ID {
			return pairs[i].ProxyA.ID < pairs[j].ProxyA.ID
		}
		return pairs[i].ProxyB.ID < pairs[j].ProxyB.ID
	})

	return pairs
}

// Query returns the proxies whose fat box is fully enclosed by box
func (b *Broadphase) Query(box actor.AABB) []*Proxy {
	var result []*Proxy
	for _, proxy := range b.Proxies {
		if box.Contains(proxy.Fat) {
			result = append(result, proxy)
		}
	}

	return result
}
