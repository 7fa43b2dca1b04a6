package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/firstweek/internal/dbx"
	"github.com/dmitrijs2005/firstweek/internal/server/models"
)

// MySQLRepository implements Repository for MySQL over a DBTX.
type MySQLRepository struct {
	db dbx.DBTX
}

func NewMySQLRepository(db dbx.DBTX) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// Save updates the row with the member's id or inserts a new one.
//
// MySQL reports changed rows rather than matched rows unless the connection
// sets clientFoundRows, so an update that writes identical values is told
// apart from a missing row by an existence check.
func (r *MySQLRepository) Save(ctx context.Context, member *models.Member) (*models.Member, error) {
	if !member.IsNew() {
		res, err := r.db.ExecContext(ctx, `UPDATE members SET name = ?, email = ? WHERE id = ?`,
			member.Name, member.Email, member.ID)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if ra > 0 {
			return member, nil
		}

		var one int
		err = r.db.QueryRowContext(ctx, `SELECT 1 FROM members WHERE id = ?`, member.ID).Scan(&one)
		if err == nil {
			return member, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO members (name, email) VALUES (?, ?)`,
		member.Name, member.Email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	member.ID = id
	return member, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*models.Member, bool, error) {
	member := &models.Member{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name, email FROM members WHERE id = ?`, id).
		Scan(&member.ID, &member.Name, &member.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return member, true, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]models.Member, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email FROM members ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	result, err := scanMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *MySQLRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
