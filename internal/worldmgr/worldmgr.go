// Package worldmgr maintains the (cx, cz) -> *Chunk map and schedules
// terrain generation around a moving camera.
//
// Grounded on internal/world/chunk_store.go (RWMutex-guarded coordinate map)
// and internal/world/chunk_streamer.go (spiral-ring load scheduling, a
// pending-set to dedup in-flight jobs, and a fixed worker pool draining a
// job channel), redirected from voxel column population at whole-chunk
// terrain pipeline jobs.
package worldmgr

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/P7AC1D/genesis-sub000/internal/chunk"
	"github.com/P7AC1D/genesis-sub000/internal/geology"
	"github.com/P7AC1D/genesis-sub000/internal/intent"
	"github.com/P7AC1D/genesis-sub000/internal/noise"
	"github.com/P7AC1D/genesis-sub000/internal/ocean"
	"github.com/P7AC1D/genesis-sub000/internal/profiling"
)

// Settings bundles the world-wide parameters every chunk in the map shares:
// the noise generator and geological sampler (immutable for the seed's
// lifetime), the derived terrain settings, and cell geometry.
type Settings struct {
	Gen          *noise.Generator
	Geo          *geology.Sampler
	TerrainSettings intent.Settings
	W            int
	CellSize     float64
	SeaLevel     float64
	ViewDistance int
}

// neighborOffsets pairs a direction with the edge identifier the chunk on the
// near side of that direction exposes to its neighbor.
var neighborOffsets = []struct {
	dx, dz int
	near   ocean.Edge
	far    ocean.Edge
}{
	{0, -1, ocean.EdgeNorth, ocean.EdgeSouth},
	{0, 1, ocean.EdgeSouth, ocean.EdgeNorth},
	{1, 0, ocean.EdgeEast, ocean.EdgeWest},
	{-1, 0, ocean.EdgeWest, ocean.EdgeEast},
}

// job pairs a coordinate with the context that can cancel it before its
// pipeline stages begin, matching pool.go's job-channel-plus-context shape.
type job struct {
	coord chunk.Coord
	ctx   context.Context
}

// Manager owns the loaded chunk map and the worker pool that populates it.
type Manager struct {
	settings Settings

	mu     sync.RWMutex
	chunks map[chunk.Coord]*chunk.Chunk

	jobs          chan job
	pendingMu     sync.Mutex
	pending       map[chunk.Coord]struct{}
	pendingCancel map[chunk.Coord]context.CancelFunc
	wg            sync.WaitGroup

	lastCameraChunk chunk.Coord
	haveCamera      bool
}

// NewManager starts the worker pool (one goroutine per CPU, matching
// chunk_streamer.go's sizing) and returns an empty manager.
func NewManager(s Settings) *Manager {
	m := &Manager{
		settings:      s,
		chunks:        make(map[chunk.Coord]*chunk.Chunk),
		jobs:          make(chan job, 4096),
		pending:       make(map[chunk.Coord]struct{}),
		pendingCancel: make(map[chunk.Coord]context.CancelFunc),
	}

	workers := max(runtime.NumCPU(), 1)
	m.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go m.worker()
	}
	return m
}

// Close stops the worker pool. Further Update calls after Close are invalid.
func (m *Manager) Close() {
	close(m.jobs)
	m.wg.Wait()
}

// worker drains jobs, honoring cancellation per spec §5: a job whose
// context was cancelled before being dequeued is dropped without starting
// any pipeline stage; mid-pipeline cancellation is not supported.
func (m *Manager) worker() {
	defer m.wg.Done()
	for j := range m.jobs {
		select {
		case <-j.ctx.Done():
		default:
			m.generateAndInstall(j.coord)
		}
		m.pendingMu.Lock()
		delete(m.pending, j.coord)
		delete(m.pendingCancel, j.coord)
		m.pendingMu.Unlock()
	}
}

func (m *Manager) generateAndInstall(coord chunk.Coord) {
	defer profiling.Track("worldmgr.generateAndInstall")()

	c := chunk.Generate(coord, chunk.Config{
		Gen:        m.settings.Gen,
		Geo:        m.settings.Geo,
		Settings:   m.settings.TerrainSettings,
		W:          m.settings.W,
		CellSize:   m.settings.CellSize,
		SeaLevel:   m.settings.SeaLevel,
		WorldEdges: ocean.EdgeFlags{},
	})

	m.mu.Lock()
	m.chunks[coord] = c
	m.mu.Unlock()

	m.propagateOceanWithLoadedNeighbors(coord, c)
}

// propagateOceanWithLoadedNeighbors exchanges edge slices with every
// already-loaded orthogonal neighbor, in both directions. Propagation is
// idempotent (spec §5), so calling it again later (e.g. when a neighbor
// loads after this chunk) is always safe.
func (m *Manager) propagateOceanWithLoadedNeighbors(coord chunk.Coord, c *chunk.Chunk) {
	for _, off := range neighborOffsets {
		neighborCoord := chunk.Coord{CX: coord.CX + off.dx, CZ: coord.CZ + off.dz}
		m.mu.RLock()
		neighbor, ok := m.chunks[neighborCoord]
		m.mu.RUnlock()
		if !ok {
			continue
		}
		c.Ocean.PropagateFromNeighbor(off.near, neighbor.Ocean.EdgeCells(off.far))
		neighbor.Ocean.PropagateFromNeighbor(off.far, c.Ocean.EdgeCells(off.near))
	}
}

// cameraChunk converts a world-space camera position to the chunk
// coordinate containing it.
func (m *Manager) cameraChunk(cameraX, cameraZ float64) chunk.Coord {
	chunkWorldSize := float64(m.settings.W) * m.settings.CellSize
	return chunk.Coord{
		CX: int(math.Floor(cameraX / chunkWorldSize)),
		CZ: int(math.Floor(cameraZ / chunkWorldSize)),
	}
}

// Update runs one scheduling pass: if the camera hasn't crossed into a new
// chunk since the last call, it is a no-op (spec §4.16 step 1). Otherwise it
// schedules loads for every chunk within ViewDistance not yet present and
// unloads every loaded chunk farther than ViewDistance+1.
func (m *Manager) Update(cameraX, cameraZ float64) {
	defer profiling.Track("worldmgr.Update")()

	cam := m.cameraChunk(cameraX, cameraZ)
	if m.haveCamera && cam == m.lastCameraChunk {
		return
	}
	m.haveCamera = true
	m.lastCameraChunk = cam

	vd := m.settings.ViewDistance
	wanted := make(map[chunk.Coord]struct{}, (2*vd+1)*(2*vd+1))
	for dz := -vd; dz <= vd; dz++ {
		for dx := -vd; dx <= vd; dx++ {
			wanted[chunk.Coord{CX: cam.CX + dx, CZ: cam.CZ + dz}] = struct{}{}
		}
	}

	m.unloadFarChunks(cam, vd+1)
	m.cancelUnwantedPending(wanted)
	m.scheduleLoadsSpiral(cam, vd, wanted)
}

// cancelUnwantedPending cancels every queued-but-not-yet-started job whose
// coordinate fell outside the view distance since it was requested, per
// spec §5: "a chunk load may be cancelled before any pipeline stage begins
// by removing the entry from the pending set."
func (m *Manager) cancelUnwantedPending(wanted map[chunk.Coord]struct{}) {
	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	for coord, cancel := range m.pendingCancel {
		if _, ok := wanted[coord]; !ok {
			cancel()
		}
	}
}

func (m *Manager) unloadFarChunks(cam chunk.Coord, radius int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for coord := range m.chunks {
		dx := coord.CX - cam.CX
		dz := coord.CZ - cam.CZ
		if dx*dx+dz*dz > radius*radius {
			delete(m.chunks, coord)
		}
	}
}

// scheduleLoadsSpiral enqueues missing chunks in rings of increasing radius
// around cam, matching chunk_streamer.go's spiral-ring traversal so nearby
// chunks finish first.
func (m *Manager) scheduleLoadsSpiral(cam chunk.Coord, vd int, wanted map[chunk.Coord]struct{}) {
	for r := 0; r <= vd; r++ {
		if r == 0 {
			m.requestChunk(cam)
			continue
		}
		x0, x1 := cam.CX-r, cam.CX+r
		z0, z1 := cam.CZ-r, cam.CZ+r
		for xk := x0; xk <= x1; xk++ {
			m.requestChunk(chunk.Coord{CX: xk, CZ: z0})
		}
		for zk := z0 + 1; zk <= z1-1; zk++ {
			m.requestChunk(chunk.Coord{CX: x1, CZ: zk})
		}
		for xk := x1; xk >= x0; xk-- {
			m.requestChunk(chunk.Coord{CX: xk, CZ: z1})
		}
		for zk := z1 - 1; zk >= z0+1; zk-- {
			m.requestChunk(chunk.Coord{CX: x0, CZ: zk})
		}
	}
}

func (m *Manager) requestChunk(coord chunk.Coord) {
	m.mu.RLock()
	_, loaded := m.chunks[coord]
	m.mu.RUnlock()
	if loaded {
		return
	}

	m.pendingMu.Lock()
	if _, ok := m.pending[coord]; ok {
		m.pendingMu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.pending[coord] = struct{}{}
	m.pendingCancel[coord] = cancel
	m.pendingMu.Unlock()

	select {
	case m.jobs <- job{coord: coord, ctx: ctx}:
	default:
		m.pendingMu.Lock()
		delete(m.pending, coord)
		delete(m.pendingCancel, coord)
		m.pendingMu.Unlock()
		cancel()
	}
}

// RegenerateAllChunks destroys and regenerates every currently loaded
// chunk, used after a settings change invalidates every field array.
func (m *Manager) RegenerateAllChunks() {
	m.mu.Lock()
	coords := make([]chunk.Coord, 0, len(m.chunks))
	for coord := range m.chunks {
		coords = append(coords, coord)
	}
	m.chunks = make(map[chunk.Coord]*chunk.Chunk)
	m.mu.Unlock()

	for _, coord := range coords {
		m.requestChunk(coord)
	}
}

// Chunk returns the loaded chunk at coord, or nil if not loaded.
func (m *Manager) Chunk(coord chunk.Coord) *chunk.Chunk {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.chunks[coord]
}

// LoadedCount returns the number of currently loaded chunks.
func (m *Manager) LoadedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chunks)
}
