// Package store defines the persistence contract the editor commits
// plan entities through, plus the sqlite-backed and in-memory
// implementations. The editor treats every call as best-effort: a
// failure is surfaced to the user and the local plan is kept.
package store

import (
	"context"
	"errors"

	"github.com/barnwright/plansketch/internal/core"
)

// ErrNotFound is returned when an update or delete targets an identity
// the store does not know.
var ErrNotFound = errors.New("store: entity not found")

// PlanData is the persisted portion of a plan for one session. Rooms
// are deliberately absent: they are session-local and never stored.
type PlanData struct {
	Walls    []*core.Wall
	Openings []*core.Opening
	Drains   []*core.FloorDrain
	Cupolas  []*core.Cupola
}

// Store persists plan entities keyed by session identifier. Save calls
// insert when the entity carries a temporary identity and update
// otherwise; inserts return the identity minted by the store.
type Store interface {
	LoadPlan(ctx context.Context, session string) (*PlanData, error)

	SaveWall(ctx context.Context, session string, w *core.Wall) (string, error)
	DeleteWall(ctx context.Context, session, id string) error

	SaveOpening(ctx context.Context, session string, o *core.Opening) (string, error)
	DeleteOpening(ctx context.Context, session, id string) error

	SaveDrain(ctx context.Context, session string, d *core.FloorDrain) (string, error)
	DeleteDrain(ctx context.Context, session, id string) error

	SaveCupola(ctx context.Context, session string, c *core.Cupola) (string, error)
	DeleteCupola(ctx context.Context, session, id string) error
}
