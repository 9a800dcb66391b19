// Package legacy reads the registrar's schedule database and exports it
// as a workbook the schedule reader understands.
package legacy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Row is one schedule line of the legacy database. Position is the
// sheet order the registrar maintains.
type Row struct {
	Position    int            `db:"position"`
	Week        sql.NullString `db:"week"`
	ModuleLabel sql.NullString `db:"module_label"`
	Lesson      sql.NullString `db:"lesson"`
	TaughtOn    sql.NullTime   `db:"taught_on"`
	Topic       sql.NullString `db:"topic"`
	Referenced  sql.NullString `db:"referenced"`
	Assigned    sql.NullString `db:"assigned"`
	Due         sql.NullString `db:"due"`
	Prework     sql.NullString `db:"prework"`
}

//go:generate mockgen -source=repository.go -destination=../mocks/legacy/mock_repository.go -package=mock_legacy

// ScheduleRepository defines read access to the legacy schedule.
type ScheduleRepository interface {
	ListRows(ctx context.Context) ([]Row, error)
}

// DBScheduleRepository implements ScheduleRepository using MySQL.
type DBScheduleRepository struct {
	db *sqlx.DB
}

// NewDBScheduleRepository creates a new DBScheduleRepository.
func NewDBScheduleRepository(db *sqlx.DB) *DBScheduleRepository {
	return &DBScheduleRepository{db: db}
}

// ListRows returns every legacy schedule row in sheet order.
func (r *DBScheduleRepository) ListRows(ctx context.Context) ([]Row, error) {
	var rows []Row
	query := "SELECT position, week, module_label, lesson, taught_on, topic, referenced, assigned, due, prework " +
		"FROM schedule_rows ORDER BY position"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("db.SelectContext(schedule_rows) > %w", err)
	}
	return rows, nil
}
