package commitment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"muster/internal/coordination/models"
	"muster/pkg/platform/sentinel"
)

// pgExclusionViolation is raised when an insert collides with the per-person
// overlap exclusion constraint on the commitments table.
const pgExclusionViolation = "23P01"

// Postgres persists commitments in PostgreSQL. The commitments table carries
//
//	EXCLUDE USING gist (person_id WITH =, daterange(start_date, end_date, '[]') WITH &&)
//
// so two concurrent assignments for the same person cannot both commit even
// when both passed the service-level overlap check.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Add inserts the commitment and writes the generated ID back onto the
// record. An exclusion-constraint collision surfaces as sentinel.ErrConflict.
func (s *Postgres) Add(ctx context.Context, c *models.Commitment) error {
	query := `
		INSERT INTO commitments (person_id, disaster_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		c.PersonID, c.DisasterID, c.StartDate, c.EndDate,
	).Scan(&c.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgExclusionViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("add commitment: %w", err)
	}
	return nil
}

func (s *Postgres) ListByPerson(ctx context.Context, personID int64) ([]*models.Commitment, error) {
	query := `
		SELECT id, person_id, disaster_id, start_date, end_date
		FROM commitments
		WHERE person_id = $1
		ORDER BY start_date, id
	`
	rows, err := s.db.QueryContext(ctx, query, personID)
	if err != nil {
		return nil, fmt.Errorf("list commitments: %w", err)
	}
	defer rows.Close()

	commitments := make([]*models.Commitment, 0)
	for rows.Next() {
		var c models.Commitment
		if err := rows.Scan(&c.ID, &c.PersonID, &c.DisasterID, &c.StartDate, &c.EndDate); err != nil {
			return nil, fmt.Errorf("scan commitment: %w", err)
		}
		c.StartDate = models.DateOnly(c.StartDate)
		c.EndDate = models.DateOnly(c.EndDate)
		commitments = append(commitments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commitments: %w", err)
	}
	return commitments, nil
}
