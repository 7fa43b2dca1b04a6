package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/firstweek/internal/dbx"
	"github.com/dmitrijs2005/firstweek/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, member *models.Member) (*models.Member, error) {

	if !member.IsNew() {
		query :=
			`UPDATE members SET name = $1, email = $2
			 WHERE id = $3
			 RETURNING id
			 `

		err := r.db.QueryRowContext(ctx, query, member.Name, member.Email, member.ID).Scan(&member.ID)
		if err == nil {
			return member, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("db error: %w", err)
		}
	}

	query :=
		`INSERT INTO members (name, email)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, member.Name, member.Email).Scan(&member.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return member, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Member, bool, error) {
	query :=
		`SELECT id, name, email FROM members
		 WHERE id = $1
		 `

	member := &models.Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&member.ID, &member.Name, &member.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	return member, true, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]models.Member, error) {
	query := `SELECT id, name, email FROM members ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result, err := scanMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM members WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
