// Package members contains the member repository contract and one adapter
// per storage engine.
package members

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/firstweek/internal/server/models"
)

// Repository persists members.
//
// Save inserts a member without an ID and assigns one. A member that already
// has an ID is updated in place; if no row with that ID exists the member is
// inserted as new and receives a fresh ID. FindByID reports absence through
// its boolean result, never through the error. DeleteByID is a no-op for
// unknown IDs.
type Repository interface {
	Save(ctx context.Context, member *models.Member) (*models.Member, error)
	FindByID(ctx context.Context, id int64) (*models.Member, bool, error)
	FindAll(ctx context.Context) ([]models.Member, error)
	DeleteByID(ctx context.Context, id int64) error
}

func scanMembers(rows *sql.Rows) ([]models.Member, error) {
	defer rows.Close()

	result := make([]models.Member, 0)
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
