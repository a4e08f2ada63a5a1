package bounds

import (
	"math"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// ============================================================================
// Types
// ============================================================================

// CellKey - coordinates of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - proxy indices stored in a cell
type Cell struct {
	proxyIndices []int
}

// Pair - two proxies whose fat boxes overlap
type Pair struct {
	ProxyA *Proxy
	ProxyB *Proxy
}

// SpatialGrid - uniform hashed grid used by the broadphase
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid - numCells is rounded up to a power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].proxyIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - adds the proxy index to every cell its fat box covers
func (sg *SpatialGrid) Insert(proxyIndex int, proxy *Proxy) {
	sg.forEachCell(proxy, func(cellIdx int) {
		sg.cells[cellIdx].proxyIndices = append(sg.cells[cellIdx].proxyIndices, proxyIndex)
	})
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].proxyIndices = sg.cells[i].proxyIndices[:0]
	}
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].proxyIndices) > 1 {
			sort.Ints(sg.cells[i].proxyIndices)
		}
	}
}

// FindPairs - sequential version
func (sg *SpatialGrid) FindPairs(proxies []*Proxy) []Pair {
	pairs := make([]Pair, 0, len(proxies)/2)
	seen := make([]bool, len(proxies))

	for proxyIdx := range proxies {
		clear(seen)
		sg.pairsOf(proxies, proxyIdx, seen, func(pair Pair) {
			pairs = append(pairs, pair)
		})
	}

	return pairs
}

// FindPairsParallel - parallel version returning a channel
// numWorkers below 1 runs a single worker
func (sg *SpatialGrid) FindPairsParallel(proxies []*Proxy, numWorkers int) <-chan Pair {
	numWorkers = max(1, numWorkers)

	var wg sync.WaitGroup
	pairsChan := make(chan Pair, numWorkers*10)

	proxiesPerWorker := len(proxies) / numWorkers
	if proxiesPerWorker == 0 {
		proxiesPerWorker = 1
	}

	for w := 0; w < numWorkers; w++ {
		startIdx := min(w*proxiesPerWorker, len(proxies))
		endIdx := min(startIdx+proxiesPerWorker, len(proxies))
		if w == numWorkers-1 {
			endIdx = len(proxies)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(proxies))
			for proxyIdx := start; proxyIdx < end; proxyIdx++ {
				clear(seen)
				sg.pairsOf(proxies, proxyIdx, seen, func(pair Pair) {
					pairsChan <- pair
				})
			}
		}(startIdx, endIdx)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

// pairsOf emits every pair (proxyIdx, other) with other > proxyIdx sharing a cell
func (sg *SpatialGrid) pairsOf(proxies []*Proxy, proxyIdx int, seen []bool, emit func(Pair)) {
	proxyA := proxies[proxyIdx]

	sg.forEachCell(proxyA, func(cellIdx int) {
		for _, otherIdx := range sg.cells[cellIdx].proxyIndices {
			// Avoid duplicates (A,B) / (B,A) and proxies spanning several cells
			if otherIdx <= proxyIdx || seen[otherIdx] {
				continue
			}
			seen[otherIdx] = true

			proxyB := proxies[otherIdx]
			if proxyA.Static && proxyB.Static {
				continue
			}

			if proxyA.Fat.Overlaps(proxyB.Fat) {
				emit(Pair{ProxyA: proxyA, ProxyB: proxyB})
			}
		}
	})
}

func (sg *SpatialGrid) forEachCell(proxy *Proxy, fn func(cellIdx int)) {
	minCell := sg.worldToCell(proxy.Fat.Min)
	maxCell := sg.worldToCell(proxy.Fat.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				fn(sg.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

// worldToCell - converts a world position into cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell - hashes a cell into an index of the cell array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
