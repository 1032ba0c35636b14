package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ds124wfegd/activity-registration/internal/entity"
)

type placeRepository struct {
	db *sql.DB
}

func NewPlaceRepository(db *sql.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	query := `INSERT INTO places (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, place.Name).Scan(&place.ID); err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

// GetAll returns places in id order. This order is the grouping order of the
// day agenda, so it has to be stable.
func (r *placeRepository) GetAll(ctx context.Context) ([]*entity.Place, error) {
	query := `SELECT id, name FROM places ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var places []*entity.Place
	for rows.Next() {
		var place entity.Place
		if err := rows.Scan(&place.ID, &place.Name); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, &place)
	}

	return places, rows.Err()
}
