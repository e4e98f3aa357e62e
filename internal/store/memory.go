package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/barnwright/plansketch/internal/core"
)

// Memory is a map-backed Store for tests and for running without a
// database. Identities are minted with uuid.
type Memory struct {
	mu sync.Mutex

	walls    map[string]map[string]core.Wall
	openings map[string]map[string]core.Opening
	drains   map[string]map[string]core.FloorDrain
	cupolas  map[string]map[string]core.Cupola
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		walls:    make(map[string]map[string]core.Wall),
		openings: make(map[string]map[string]core.Opening),
		drains:   make(map[string]map[string]core.FloorDrain),
		cupolas:  make(map[string]map[string]core.Cupola),
	}
}

// LoadPlan returns copies of everything stored for the session.
func (m *Memory) LoadPlan(ctx context.Context, session string) (*PlanData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data := &PlanData{}
	for _, w := range m.walls[session] {
		w := w
		data.Walls = append(data.Walls, &w)
	}
	for _, o := range m.openings[session] {
		o := o
		data.Openings = append(data.Openings, &o)
	}
	for _, d := range m.drains[session] {
		d := d
		data.Drains = append(data.Drains, &d)
	}
	for _, c := range m.cupolas[session] {
		c := c
		data.Cupolas = append(data.Cupolas, &c)
	}
	return data, nil
}

// SaveWall inserts or updates a wall.
func (m *Memory) SaveWall(ctx context.Context, session string, w *core.Wall) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.walls[session] == nil {
		m.walls[session] = make(map[string]core.Wall)
	}
	id := w.ID
	if core.IsTempID(id) || id == "" {
		id = uuid.NewString()
	} else if _, ok := m.walls[session][id]; !ok {
		return "", ErrNotFound
	}
	stored := *w
	stored.ID = id
	m.walls[session][id] = stored
	return id, nil
}

// DeleteWall removes a wall by id.
func (m *Memory) DeleteWall(ctx context.Context, session, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.walls[session][id]; !ok {
		return ErrNotFound
	}
	delete(m.walls[session], id)
	return nil
}

// SaveOpening inserts or updates an opening.
func (m *Memory) SaveOpening(ctx context.Context, session string, o *core.Opening) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.openings[session] == nil {
		m.openings[session] = make(map[string]core.Opening)
	}
	id := o.ID
	if core.IsTempID(id) || id == "" {
		id = uuid.NewString()
	} else if _, ok := m.openings[session][id]; !ok {
		return "", ErrNotFound
	}
	stored := *o
	stored.ID = id
	if o.Pos != nil {
		pos := *o.Pos
		stored.Pos = &pos
	}
	m.openings[session][id] = stored
	return id, nil
}

// DeleteOpening removes an opening by id.
func (m *Memory) DeleteOpening(ctx context.Context, session, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.openings[session][id]; !ok {
		return ErrNotFound
	}
	delete(m.openings[session], id)
	return nil
}

// SaveDrain inserts or updates a floor drain.
func (m *Memory) SaveDrain(ctx context.Context, session string, d *core.FloorDrain) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.drains[session] == nil {
		m.drains[session] = make(map[string]core.FloorDrain)
	}
	id := d.ID
	if core.IsTempID(id) || id == "" {
		id = uuid.NewString()
	} else if _, ok := m.drains[session][id]; !ok {
		return "", ErrNotFound
	}
	stored := *d
	stored.ID = id
	if d.Pos != nil {
		pos := *d.Pos
		stored.Pos = &pos
	}
	m.drains[session][id] = stored
	return id, nil
}

// DeleteDrain removes a floor drain by id.
func (m *Memory) DeleteDrain(ctx context.Context, session, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.drains[session][id]; !ok {
		return ErrNotFound
	}
	delete(m.drains[session], id)
	return nil
}

// SaveCupola inserts or updates a cupola.
func (m *Memory) SaveCupola(ctx context.Context, session string, c *core.Cupola) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cupolas[session] == nil {
		m.cupolas[session] = make(map[string]core.Cupola)
	}
	id := c.ID
	if core.IsTempID(id) || id == "" {
		id = uuid.NewString()
	} else if _, ok := m.cupolas[session][id]; !ok {
		return "", ErrNotFound
	}
	stored := *c
	stored.ID = id
	m.cupolas[session][id] = stored
	return id, nil
}

// DeleteCupola removes a cupola by id.
func (m *Memory) DeleteCupola(ctx context.Context, session, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cupolas[session][id]; !ok {
		return ErrNotFound
	}
	delete(m.cupolas[session], id)
	return nil
}
