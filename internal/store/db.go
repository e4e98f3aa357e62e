package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barnwright/plansketch/internal/core"
)

// wallRow is the persisted form of a core.Wall.
type wallRow struct {
	ID      string `gorm:"primaryKey"`
	Session string `gorm:"index"`
	StartX  float64
	StartY  float64
	EndX    float64
	EndY    float64
}

// openingRow is the persisted form of a core.Opening. Width and Height
// are stored numerically; SizeDetail keeps the legacy text alongside.
type openingRow struct {
	ID         string `gorm:"primaryKey"`
	Session    string `gorm:"index"`
	Type       int
	Width      float64
	Height     float64
	SizeDetail string
	Quantity   int
	Location   string
	WallSide   string
	Swing      int
	Placed     bool
	PosX       float64
	PosY       float64
	Rotation   int
}

// drainRow is the persisted form of a core.FloorDrain.
type drainRow struct {
	ID          string `gorm:"primaryKey"`
	Session     string `gorm:"index"`
	LengthFt    float64
	Orientation int
	Location    string
	Placed      bool
	PosX        float64
	PosY        float64
}

// cupolaRow is the persisted form of a core.Cupola.
type cupolaRow struct {
	ID          string `gorm:"primaryKey"`
	Session     string `gorm:"index"`
	Size        string
	Kind        string
	WeatherVane bool
	Location    string
}

// DB is a gorm-backed Store over an embedded sqlite file.
type DB struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the sqlite database at path and
// migrates the plan tables.
func OpenSQLite(path string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&wallRow{}, &openingRow{}, &drainRow{}, &cupolaRow{}); err != nil {
		return nil, fmt.Errorf("migrate plan tables: %w", err)
	}
	return &DB{db: db}, nil
}

// LoadPlan fetches every persisted entity for the session.
func (s *DB) LoadPlan(ctx context.Context, session string) (*PlanData, error) {
	data := &PlanData{}

	var walls []wallRow
	if err := s.db.WithContext(ctx).Where("session = ?", session).Find(&walls).Error; err != nil {
		return nil, fmt.Errorf("load walls: %w", err)
	}
	for _, r := range walls {
		data.Walls = append(data.Walls, &core.Wall{
			ID:    r.ID,
			Start: orb.Point{r.StartX, r.StartY},
			End:   orb.Point{r.EndX, r.EndY},
		})
	}

	var openings []openingRow
	if err := s.db.WithContext(ctx).Where("session = ?", session).Find(&openings).Error; err != nil {
		return nil, fmt.Errorf("load openings: %w", err)
	}
	for _, r := range openings {
		o := &core.Opening{
			ID:         r.ID,
			Type:       core.OpeningType(r.Type),
			Width:      r.Width,
			Height:     r.Height,
			SizeDetail: r.SizeDetail,
			Quantity:   r.Quantity,
			Location:   r.Location,
			WallSide:   r.WallSide,
			Swing:      core.SwingDirection(r.Swing),
			Rotation:   r.Rotation,
		}
		if r.Placed {
			o.Pos = &orb.Point{r.PosX, r.PosY}
		}
		data.Openings = append(data.Openings, o)
	}

	var drains []drainRow
	if err := s.db.WithContext(ctx).Where("session = ?", session).Find(&drains).Error; err != nil {
		return nil, fmt.Errorf("load drains: %w", err)
	}
	for _, r := range drains {
		d := &core.FloorDrain{
			ID:          r.ID,
			LengthFt:    r.LengthFt,
			Orientation: core.DrainOrientation(r.Orientation),
			Location:    r.Location,
		}
		if r.Placed {
			d.Pos = &orb.Point{r.PosX, r.PosY}
		}
		data.Drains = append(data.Drains, d)
	}

	var cupolas []cupolaRow
	if err := s.db.WithContext(ctx).Where("session = ?", session).Find(&cupolas).Error; err != nil {
		return nil, fmt.Errorf("load cupolas: %w", err)
	}
	for _, r := range cupolas {
		data.Cupolas = append(data.Cupolas, &core.Cupola{
			ID:          r.ID,
			Size:        r.Size,
			Kind:        r.Kind,
			WeatherVane: r.WeatherVane,
			Location:    r.Location,
		})
	}

	return data, nil
}

// SaveWall inserts a wall when its id is temporary, updates otherwise.
func (s *DB) SaveWall(ctx context.Context, session string, w *core.Wall) (string, error) {
	row := wallRow{
		ID:      w.ID,
		Session: session,
		StartX:  w.Start[0],
		StartY:  w.Start[1],
		EndX:    w.End[0],
		EndY:    w.End[1],
	}
	if core.IsTempID(w.ID) || w.ID == "" {
		row.ID = uuid.NewString()
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return "", fmt.Errorf("insert wall: %w", err)
		}
		return row.ID, nil
	}
	if err := s.update(ctx, &wallRow{}, session, row.ID, &row); err != nil {
		return "", fmt.Errorf("update wall %s: %w", row.ID, err)
	}
	return row.ID, nil
}

// DeleteWall removes a wall row.
func (s *DB) DeleteWall(ctx context.Context, session, id string) error {
	return s.deleteRow(ctx, &wallRow{}, session, id, "wall")
}

// SaveOpening inserts or updates the full opening record.
func (s *DB) SaveOpening(ctx context.Context, session string, o *core.Opening) (string, error) {
	row := openingRow{
		ID:         o.ID,
		Session:    session,
		Type:       int(o.Type),
		Width:      o.Width,
		Height:     o.Height,
		SizeDetail: o.SizeDetail,
		Quantity:   o.Quantity,
		Location:   o.Location,
		WallSide:   o.WallSide,
		Swing:      int(o.Swing),
		Rotation:   o.Rotation,
	}
	if o.Pos != nil {
		row.Placed = true
		row.PosX = (*o.Pos)[0]
		row.PosY = (*o.Pos)[1]
	}
	if core.IsTempID(o.ID) || o.ID == "" {
		row.ID = uuid.NewString()
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return "", fmt.Errorf("insert opening: %w", err)
		}
		return row.ID, nil
	}
	if err := s.update(ctx, &openingRow{}, session, row.ID, &row); err != nil {
		return "", fmt.Errorf("update opening %s: %w", row.ID, err)
	}
	return row.ID, nil
}

// DeleteOpening removes an opening row.
func (s *DB) DeleteOpening(ctx context.Context, session, id string) error {
	return s.deleteRow(ctx, &openingRow{}, session, id, "opening")
}

// SaveDrain inserts or updates a floor drain.
func (s *DB) SaveDrain(ctx context.Context, session string, d *core.FloorDrain) (string, error) {
	row := drainRow{
		ID:          d.ID,
		Session:     session,
		LengthFt:    d.LengthFt,
		Orientation: int(d.Orientation),
		Location:    d.Location,
	}
	if d.Pos != nil {
		row.Placed = true
		row.PosX = (*d.Pos)[0]
		row.PosY = (*d.Pos)[1]
	}
	if core.IsTempID(d.ID) || d.ID == "" {
		row.ID = uuid.NewString()
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return "", fmt.Errorf("insert drain: %w", err)
		}
		return row.ID, nil
	}
	if err := s.update(ctx, &drainRow{}, session, row.ID, &row); err != nil {
		return "", fmt.Errorf("update drain %s: %w", row.ID, err)
	}
	return row.ID, nil
}

// DeleteDrain removes a drain row.
func (s *DB) DeleteDrain(ctx context.Context, session, id string) error {
	return s.deleteRow(ctx, &drainRow{}, session, id, "drain")
}

// SaveCupola inserts or updates a cupola.
func (s *DB) SaveCupola(ctx context.Context, session string, c *core.Cupola) (string, error) {
	row := cupolaRow{
		ID:          c.ID,
		Session:     session,
		Size:        c.Size,
		Kind:        c.Kind,
		WeatherVane: c.WeatherVane,
		Location:    c.Location,
	}
	if core.IsTempID(c.ID) || c.ID == "" {
		row.ID = uuid.NewString()
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return "", fmt.Errorf("insert cupola: %w", err)
		}
		return row.ID, nil
	}
	if err := s.update(ctx, &cupolaRow{}, session, row.ID, &row); err != nil {
		return "", fmt.Errorf("update cupola %s: %w", row.ID, err)
	}
	return row.ID, nil
}

// DeleteCupola removes a cupola row.
func (s *DB) DeleteCupola(ctx context.Context, session, id string) error {
	return s.deleteRow(ctx, &cupolaRow{}, session, id, "cupola")
}

func (s *DB) update(ctx context.Context, model any, session, id string, row any) error {
	res := s.db.WithContext(ctx).Model(model).
		Where("id = ? AND session = ?", id, session).
		Select("*").Omit("id", "session").Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DB) deleteRow(ctx context.Context, model any, session, id, kind string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND session = ?", id, session).Delete(model)
	if res.Error != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
