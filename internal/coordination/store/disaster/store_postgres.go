package disaster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"muster/internal/coordination/models"
	"muster/pkg/platform/sentinel"
)

// Postgres persists disasters in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Add inserts the disaster and writes the generated ID back onto the record.
func (s *Postgres) Add(ctx context.Context, d *models.Disaster) error {
	query := `
		INSERT INTO disasters (name, active)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := s.db.QueryRowContext(ctx, query, d.Name, d.Active).Scan(&d.ID); err != nil {
		return fmt.Errorf("add disaster: %w", err)
	}
	return nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Disaster, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, active FROM disasters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list disasters: %w", err)
	}
	defer rows.Close()

	disasters := make([]*models.Disaster, 0)
	for rows.Next() {
		var d models.Disaster
		if err := rows.Scan(&d.ID, &d.Name, &d.Active); err != nil {
			return nil, fmt.Errorf("scan disaster: %w", err)
		}
		disasters = append(disasters, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate disasters: %w", err)
	}
	return disasters, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Disaster, error) {
	var d models.Disaster
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, active FROM disasters WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find disaster: %w", err)
	}
	return &d, nil
}
