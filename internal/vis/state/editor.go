package state

import (
	"context"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/barnwright/plansketch/internal/core"
	"github.com/barnwright/plansketch/internal/store"
	"github.com/barnwright/plansketch/internal/vis/interact"
)

const (
	// minWallTravel cancels wall draws shorter than this in both axes;
	// anything smaller is treated as a misclick.
	minWallTravel = 1.0

	doubleClickWindow = 400 * time.Millisecond
	storeTimeout      = 3 * time.Second
)

// Editor is the interaction state machine. All pointer inputs arrive in
// model coordinates (feet); the widget layer converts from pixels.
// Plan mutations are optimistic: store failures are reported through
// Notices and logged, never rolled back, except for handle-drag resize
// which persists before mutating.
type Editor struct {
	Plan        *core.Plan
	Mode        Mode
	Interaction Interaction
	Hover       interact.Hit
	Notices     *Notices

	// OnEditOpening is raised by a double-click on an opening; the
	// attribute dialog itself is an external collaborator.
	OnEditOpening func(id string)

	snap  interact.Snapper
	store store.Store
	log   *zap.Logger

	roomSeed core.Room // size/kind chosen before entering place-room

	lastPressAt  time.Time
	lastPressHit interact.Hit
	now          func() time.Time
}

// NewEditor creates an editor over plan, committing through st (which
// may be nil for local-only use).
func NewEditor(plan *core.Plan, st store.Store, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		Plan:        plan,
		Mode:        ModeSelect,
		Interaction: Idle{},
		Notices:     NewNotices(),
		snap:        interact.Snapper{Plan: plan},
		store:       st,
		log:         log,
		now:         time.Now,
	}
}

// SetSession records the external session identifier. Existing
// temporary entities become eligible for persistence but are not
// flushed automatically; they are inserted the next time the user
// commits them.
func (e *Editor) SetSession(session string) {
	e.Plan.Session = session
}

// SetFootprint swaps the building dimensions. Transient interaction is
// discarded since its coordinates may no longer make sense.
func (e *Editor) SetFootprint(fp core.Footprint) {
	e.cancelTransient()
	e.Plan.SetFootprint(fp)
}

// SelectedID returns the id of the selected entity of the given kind,
// or "".
func (e *Editor) selectedWallID() string {
	if sel, ok := e.Interaction.(Selected); ok && sel.Kind == interact.HitWall {
		return sel.ID
	}
	return ""
}

// SetMode switches the active tool, cancelling any transient state and
// seeding a floating entity for placement modes.
func (e *Editor) SetMode(m Mode) {
	e.cancelTransient()
	e.Mode = m

	switch m {
	case ModePlaceDoor:
		e.floatNewOpening(core.Walkdoor, 3, 7)
	case ModePlaceWindow:
		e.floatNewOpening(core.Window, 3, 4)
	case ModePlaceOverhead:
		e.floatNewOpening(core.OverheadDoor, 10, 10)
	case ModePlaceRoom:
		seed := e.roomSeed
		if seed.Width <= 0 || seed.Length <= 0 {
			seed.Width, seed.Length = 10, 10
		}
		room := seed
		room.ID = e.Plan.NewTempID()
		e.Interaction = &Floating{Room: &room, fresh: true}
	}
}

// SeedRoom records the size and kind the next placed room will have.
// Width and length are fixed inputs chosen before entering place-room.
func (e *Editor) SeedRoom(kind core.RoomKind, width, length float64) {
	e.roomSeed = core.Room{Kind: kind, Width: width, Length: length}
}

func (e *Editor) floatNewOpening(t core.OpeningType, w, h float64) {
	o := &core.Opening{
		ID:         e.Plan.NewTempID(),
		Type:       t,
		Width:      w,
		Height:     h,
		SizeDetail: core.FormatSizeDetail(w, h),
		Quantity:   1,
		Swing:      core.SwingRight,
	}
	e.Interaction = &Floating{Opening: o, fresh: true}
}

// cancelTransient discards any floating item, wall draw or handle drag,
// restoring a picked-up entity to its pre-pickup position.
func (e *Editor) cancelTransient() {
	if f, ok := e.Interaction.(*Floating); ok && !f.fresh && f.origPos != nil {
		switch {
		case f.Opening != nil:
			pos := *f.origPos
			f.Opening.Pos = &pos
		case f.Room != nil:
			f.Room.MoveTo(*f.origPos)
		}
	}
	e.Interaction = Idle{}
}

// Cancel aborts the current transient interaction (Escape).
func (e *Editor) Cancel() {
	e.cancelTransient()
}

// Press handles a primary-button press at model point p.
func (e *Editor) Press(p orb.Point) {
	switch e.Mode {
	case ModeDrawWall:
		e.Interaction = &DrawingWall{Start: p, Cursor: p}
		return
	case ModePlaceDoor, ModePlaceWindow, ModePlaceOverhead, ModePlaceRoom:
		e.commitFloating(p)
		return
	}

	// Select mode.
	if _, ok := e.Interaction.(*Floating); ok {
		e.commitFloating(p)
		return
	}

	hit := interact.HitAt(e.Plan, p, e.selectedWallID())
	defer func() {
		e.lastPressAt = e.now()
		e.lastPressHit = hit
	}()

	if hit.Kind == interact.HitHandle {
		w := e.Plan.WallByID(hit.ID)
		cursor := w.Start
		if hit.End == interact.EndEnd {
			cursor = w.End
		}
		e.Interaction = &DraggingHandle{WallID: hit.ID, End: hit.End, Cursor: cursor}
		return
	}

	if hit.Kind == interact.HitNone {
		e.Interaction = Idle{}
		return
	}

	if sel, ok := e.Interaction.(Selected); ok && sel.Kind == hit.Kind && sel.ID == hit.ID {
		// Double-click on an opening opens the external edit dialog
		// instead of picking it up.
		if hit.Kind == interact.HitOpening && e.isDoubleClick(hit) {
			if e.OnEditOpening != nil {
				e.OnEditOpening(hit.ID)
			}
			return
		}
		e.pickUp(hit, p)
		return
	}

	e.Interaction = Selected{Kind: hit.Kind, ID: hit.ID}
}

func (e *Editor) isDoubleClick(hit interact.Hit) bool {
	return e.lastPressHit == hit && e.now().Sub(e.lastPressAt) <= doubleClickWindow
}

// pickUp detaches an already-placed entity into the floating state.
func (e *Editor) pickUp(hit interact.Hit, p orb.Point) {
	switch hit.Kind {
	case interact.HitOpening:
		o := e.Plan.OpeningByID(hit.ID)
		if o == nil || o.Pos == nil {
			return
		}
		orig := *o.Pos
		e.Interaction = &Floating{Opening: o, Pointer: p, origPos: &orig}
	case interact.HitRoom:
		r := e.Plan.RoomByID(hit.ID)
		if r == nil {
			return
		}
		orig := orb.Point{r.X, r.Y}
		e.Interaction = &Floating{Room: r, Pointer: p, origPos: &orig}
	case interact.HitWall:
		w := e.Plan.WallByID(hit.ID)
		if w == nil {
			return
		}
		orig := w.Start
		e.Interaction = &Floating{
			Wall:    w,
			Pointer: p,
			origPos: &orig,
			grab:    orb.Point{w.Start[0] - p[0], w.Start[1] - p[1]},
		}
	}
}

// Drag handles pointer movement with the button held.
func (e *Editor) Drag(p orb.Point) {
	switch i := e.Interaction.(type) {
	case *DrawingWall:
		i.Cursor = p
	case *DraggingHandle:
		i.Cursor = e.snap.SnapForWall(p).Point
	case *Floating:
		i.Pointer = p
	}
}

// Move handles pointer movement with no button held: hover highlighting
// and floating-item tracking. Hover never mutates selection.
func (e *Editor) Move(p orb.Point) {
	if f, ok := e.Interaction.(*Floating); ok {
		f.Pointer = p
	}
	e.Hover = interact.HitAt(e.Plan, p, e.selectedWallID())
}

// Release handles the primary button release at model point p.
func (e *Editor) Release(p orb.Point) {
	switch i := e.Interaction.(type) {
	case *DrawingWall:
		e.finishWallDraw(i, p)
	case *DraggingHandle:
		e.finishHandleDrag(i)
	}
}

// finishWallDraw commits a drawn wall, or discards a misclick.
func (e *Editor) finishWallDraw(d *DrawingWall, p orb.Point) {
	e.Interaction = Idle{}

	dx := p[0] - d.Start[0]
	dy := p[1] - d.Start[1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < minWallTravel && dy < minWallTravel {
		return
	}

	// Both endpoints snap independently so walls chain onto the
	// perimeter or each other.
	start := e.snap.SnapForWall(d.Start).Point
	end := e.snap.SnapForWall(p).Point
	if start == end {
		return
	}

	w := &core.Wall{ID: e.Plan.NewTempID(), Start: start, End: end}
	e.Plan.AddWall(w)
	e.persistWall(w)
	e.log.Debug("wall drawn",
		zap.String("id", w.ID),
		zap.Float64("length", w.Length()))
}

// finishHandleDrag applies a handle drag. Unlike every other commit
// this one is not optimistic: a failed store update aborts before the
// local wall is mutated.
func (e *Editor) finishHandleDrag(d *DraggingHandle) {
	e.Interaction = Selected{Kind: interact.HitWall, ID: d.WallID}

	w := e.Plan.WallByID(d.WallID)
	if w == nil {
		e.Interaction = Idle{}
		return
	}

	next := *w
	if d.End == interact.EndStart {
		next.Start = d.Cursor
	} else {
		next.End = d.Cursor
	}
	if next.Start == next.End {
		return
	}

	if e.persisted(w.ID) {
		if _, err := e.save(func(ctx context.Context) (string, error) {
			return e.store.SaveWall(ctx, e.Plan.Session, &next)
		}, "wall resize not saved"); err != nil {
			return
		}
	}
	w.Start = next.Start
	w.End = next.End
}

// commitFloating drops the floating item at the snap-adjusted position.
func (e *Editor) commitFloating(p orb.Point) {
	f, ok := e.Interaction.(*Floating)
	if !ok {
		return
	}

	switch {
	case f.Opening != nil:
		e.commitFloatingOpening(f, p)
	case f.Room != nil:
		e.commitFloatingRoom(f, p)
	case f.Wall != nil:
		e.commitFloatingWall(f, p)
	}
}

func (e *Editor) commitFloatingOpening(f *Floating, p orb.Point) {
	o := f.Opening
	res := e.snap.SnapForOpening(p)
	pos := res.Point
	o.Pos = &pos
	if res.Snapped {
		o.Rotation = res.Rotation
		o.WallSide = res.Edge
	}

	if f.fresh {
		e.Plan.AddOpening(o)
	}
	e.persistOpening(o)

	if f.fresh {
		// A freshly placed opening stays selected so it can be rotated
		// or edited immediately.
		e.Mode = ModeSelect
		e.Interaction = Selected{Kind: interact.HitOpening, ID: o.ID}
	} else {
		e.Interaction = Idle{}
	}
}

func (e *Editor) commitFloatingRoom(f *Floating, p orb.Point) {
	r := f.Room
	res := e.snap.SnapForRoom(p)
	r.MoveTo(res.Point)

	if f.fresh {
		e.Plan.AddRoom(r)
	}
	// Rooms are session-local; nothing is persisted.
	e.Mode = ModeSelect
	e.Interaction = Idle{}
}

func (e *Editor) commitFloatingWall(f *Floating, p orb.Point) {
	w := f.Wall
	dx := w.End[0] - w.Start[0]
	dy := w.End[1] - w.Start[1]

	start := e.snap.SnapForWall(orb.Point{p[0] + f.grab[0], p[1] + f.grab[1]}).Point
	w.Start = start
	w.End = orb.Point{start[0] + dx, start[1] + dy}

	e.persistWall(w)
	e.Interaction = Idle{}
}

// SnapPreview resolves p through the wall snap, for rendering the live
// preview of a draw in progress.
func (e *Editor) SnapPreview(p orb.Point) orb.Point {
	return e.snap.SnapForWall(p).Point
}

// RotateSelection rotates the selected opening or room by 90 degrees,
// wrapping at 360. Not available while floating.
func (e *Editor) RotateSelection() {
	sel, ok := e.Interaction.(Selected)
	if !ok {
		return
	}
	switch sel.Kind {
	case interact.HitOpening:
		o := e.Plan.OpeningByID(sel.ID)
		if o == nil {
			return
		}
		o.Rotation = rotate90(o.Rotation)
		if e.persisted(o.ID) {
			e.persistOpening(o)
		}
	case interact.HitRoom:
		r := e.Plan.RoomByID(sel.ID)
		if r == nil {
			return
		}
		r.Rotation = rotate90(r.Rotation)
	}
}

func rotate90(r int) int {
	r += 90
	if r >= 360 {
		r -= 360
	}
	return r
}

// DeleteSelection removes the selected entity from the plan, issuing a
// store delete for persisted identities.
func (e *Editor) DeleteSelection() {
	sel, ok := e.Interaction.(Selected)
	if !ok {
		return
	}
	e.Interaction = Idle{}

	switch sel.Kind {
	case interact.HitWall:
		e.Plan.RemoveWall(sel.ID)
		if e.persisted(sel.ID) {
			e.deleteRemote(func(ctx context.Context) error {
				return e.store.DeleteWall(ctx, e.Plan.Session, sel.ID)
			}, "wall delete not saved")
		}
	case interact.HitOpening:
		e.Plan.RemoveOpening(sel.ID)
		if e.persisted(sel.ID) {
			e.deleteRemote(func(ctx context.Context) error {
				return e.store.DeleteOpening(ctx, e.Plan.Session, sel.ID)
			}, "opening delete not saved")
		}
	case interact.HitRoom:
		e.Plan.RemoveRoom(sel.ID)
	}
}

// AddOpening registers an opening created through the attribute dialog,
// unpositioned until the user places it.
func (e *Editor) AddOpening(o *core.Opening) {
	if o.ID == "" {
		o.ID = e.Plan.NewTempID()
	}
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = core.ParseSizeDetail(o.SizeDetail)
	}
	e.Plan.AddOpening(o)
	e.persistOpening(o)
}

// PickUpOpening floats an existing opening (placed or not) for
// interactive placement.
func (e *Editor) PickUpOpening(id string) {
	o := e.Plan.OpeningByID(id)
	if o == nil {
		return
	}
	e.cancelTransient()
	e.Mode = ModeSelect
	f := &Floating{Opening: o}
	if o.Pos != nil {
		orig := *o.Pos
		f.origPos = &orig
	}
	e.Interaction = f
}

// AddDrain registers a floor drain from the attribute form.
func (e *Editor) AddDrain(d *core.FloorDrain) {
	if d.ID == "" {
		d.ID = e.Plan.NewTempID()
	}
	e.Plan.AddDrain(d)
	if e.Plan.Session != "" && e.store != nil {
		if id, err := e.save(func(ctx context.Context) (string, error) {
			return e.store.SaveDrain(ctx, e.Plan.Session, d)
		}, "drain not saved"); err == nil && core.IsTempID(d.ID) {
			d.ID = id
		}
	}
}

// DeleteDrain removes a floor drain.
func (e *Editor) DeleteDrain(id string) {
	e.Plan.RemoveDrain(id)
	if e.persisted(id) {
		e.deleteRemote(func(ctx context.Context) error {
			return e.store.DeleteDrain(ctx, e.Plan.Session, id)
		}, "drain delete not saved")
	}
}

// AddCupola registers a cupola from the attribute form.
func (e *Editor) AddCupola(c *core.Cupola) {
	if c.ID == "" {
		c.ID = e.Plan.NewTempID()
	}
	e.Plan.AddCupola(c)
	if e.Plan.Session != "" && e.store != nil {
		if id, err := e.save(func(ctx context.Context) (string, error) {
			return e.store.SaveCupola(ctx, e.Plan.Session, c)
		}, "cupola not saved"); err == nil && core.IsTempID(c.ID) {
			c.ID = id
		}
	}
}

// DeleteCupola removes a cupola.
func (e *Editor) DeleteCupola(id string) {
	e.Plan.RemoveCupola(id)
	if e.persisted(id) {
		e.deleteRemote(func(ctx context.Context) error {
			return e.store.DeleteCupola(ctx, e.Plan.Session, id)
		}, "cupola delete not saved")
	}
}

// persisted reports whether id is a store identity reachable through
// the current session.
func (e *Editor) persisted(id string) bool {
	return e.store != nil && e.Plan.Session != "" && !core.IsTempID(id)
}

// persistWall saves a wall when a session exists, swapping a temporary
// identity for the one minted by the store.
func (e *Editor) persistWall(w *core.Wall) {
	if e.Plan.Session == "" || e.store == nil {
		return
	}
	id, err := e.save(func(ctx context.Context) (string, error) {
		return e.store.SaveWall(ctx, e.Plan.Session, w)
	}, "wall not saved")
	if err == nil && core.IsTempID(w.ID) {
		w.ID = id
	}
}

// persistOpening saves an opening when a session exists, swapping a
// temporary identity for the one minted by the store.
func (e *Editor) persistOpening(o *core.Opening) {
	if e.Plan.Session == "" || e.store == nil {
		return
	}
	id, err := e.save(func(ctx context.Context) (string, error) {
		return e.store.SaveOpening(ctx, e.Plan.Session, o)
	}, "opening not saved")
	if err == nil && core.IsTempID(o.ID) {
		o.ID = id
	}
}

// save runs one store call with a timeout, reporting failures to the
// user without rolling anything back.
func (e *Editor) save(call func(context.Context) (string, error), failMsg string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	id, err := call(ctx)
	if err != nil {
		e.Notices.Add(failMsg + "; changes kept locally")
		e.log.Warn("store call failed", zap.String("op", failMsg), zap.Error(err))
		return "", err
	}
	return id, nil
}

func (e *Editor) deleteRemote(call func(context.Context) error, failMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := call(ctx); err != nil {
		e.Notices.Add(failMsg)
		e.log.Warn("store call failed", zap.String("op", failMsg), zap.Error(err))
	}
}
