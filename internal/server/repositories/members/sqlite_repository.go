package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/firstweek/internal/dbx"
	"github.com/dmitrijs2005/firstweek/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save updates an existing row by id or inserts a new one.
func (r *SQLiteRepository) Save(ctx context.Context, member *models.Member) (*models.Member, error) {
	if !member.IsNew() {
		res, err := r.db.ExecContext(ctx, `update members set name=?, email=? where id=?`,
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
	}

	res, err := r.db.ExecContext(ctx, `insert into members (name, email) values (?, ?)`,
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

// FindByID returns the member with the given id, if any.
func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*models.Member, bool, error) {
	member := &models.Member{}
	err := r.db.QueryRowContext(ctx, `select id, name, email from members where id=?`, id).
		Scan(&member.ID, &member.Name, &member.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}
	return member, true, nil
}

// FindAll lists every member ordered by id.
func (r *SQLiteRepository) FindAll(ctx context.Context) ([]models.Member, error) {
	rows, err := r.db.QueryContext(ctx, `select id, name, email from members order by id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	result, err := scanMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// DeleteByID removes the member row. Unknown ids are ignored.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `delete from members where id=?`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
