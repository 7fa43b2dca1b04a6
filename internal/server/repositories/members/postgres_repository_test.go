package members

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/firstweek/internal/server/models"
)

const (
	insertQuery   = `(?s)^INSERT\s+INTO\s+members\s*\(name,\s*email\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`
	updateQuery   = `(?s)^UPDATE\s+members\s+SET\s+name\s*=\s*\$1,\s*email\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s+RETURNING\s+id\s*$`
	selectOne     = `(?s)^SELECT\s+id,\s*name,\s*email\s+FROM\s+members\s+WHERE\s+id\s*=\s*\$1\s*$`
	selectAll     = `(?s)^SELECT\s+id,\s*name,\s*email\s+FROM\s+members\s+ORDER\s+BY\s+id\s*$`
	deleteByIDSQL = `(?s)^DELETE\s+FROM\s+members\s+WHERE\s+id\s*=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestSave_InsertsNewMember(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("Alice", "a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	got, err := repo.Save(context.Background(), &models.Member{Name: "Alice", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if got.ID != 1 || got.Name != "Alice" || got.Email != "a@x.com" {
		t.Fatalf("unexpected member: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestSave_UpdatesExistingMember(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(updateQuery).
		WithArgs("Alice B", "ab@x.com", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	got, err := repo.Save(context.Background(), &models.Member{ID: 7, Name: "Alice B", Email: "ab@x.com"})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("id changed on update: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestSave_UnknownIDInsertsFreshRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(updateQuery).
		WithArgs("Ghost", "g@x.com", int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(insertQuery).
		WithArgs("Ghost", "g@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	got, err := repo.Save(context.Background(), &models.Member{ID: 99, Name: "Ghost", Email: "g@x.com"})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("expected fresh id 3, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestSave_InsertDBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("Alice", "a@x.com").
		WillReturnError(errors.New("db down"))

	_, err := repo.Save(context.Background(), &models.Member{Name: "Alice", Email: "a@x.com"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSave_UpdateDBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(updateQuery).
		WithArgs("Alice", "a@x.com", int64(1)).
		WillReturnError(errors.New("deadlock"))

	_, err := repo.Save(context.Background(), &models.Member{ID: 1, Name: "Alice", Email: "a@x.com"})
	if err == nil || !regexp.MustCompile(`db error: .*deadlock`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("insert must not run after a failed update: %v", err)
	}
}

func TestFindByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(int64(1), "Alice", "a@x.com")
	mock.ExpectQuery(selectOne).WithArgs(int64(1)).WillReturnRows(rows)

	got, ok, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if !ok || got.ID != 1 || got.Name != "Alice" || got.Email != "a@x.com" {
		t.Fatalf("unexpected result: %+v, %v", got, ok)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectOne).WithArgs(int64(42)).WillReturnError(sql.ErrNoRows)

	got, ok, err := repo.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("not found must not be an error, got %v", err)
	}
	if ok || got != nil {
		t.Fatalf("expected absent result, got %+v, %v", got, ok)
	}
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectOne).WithArgs(int64(1)).WillReturnError(errors.New("db err"))

	_, _, err := repo.FindByID(context.Background(), 1)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindAll_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(int64(1), "Alice", "a@x.com").
		AddRow(int64(2), "Bob", "b@x.com")
	mock.ExpectQuery(selectAll).WillReturnRows(rows)

	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Fatalf("unexpected members: %+v", got)
	}
}

func TestFindAll_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectAll).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFindAll_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectAll).WillReturnError(errors.New("boom"))

	_, err := repo.FindAll(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindAll_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(int64(1), "Alice", "a@x.com").
		AddRow(int64(2), "Bob", "b@x.com").
		RowError(1, errors.New("row broke"))
	mock.ExpectQuery(selectAll).WillReturnRows(rows)

	_, err := repo.FindAll(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*row broke`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped row error, got %v", err)
	}
}

func TestDeleteByID_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteByIDSQL).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByID(context.Background(), 1); err != nil {
		t.Fatalf("DeleteByID error: %v", err)
	}
}

func TestDeleteByID_MissingIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteByIDSQL).WithArgs(int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteByID(context.Background(), 404); err != nil {
		t.Fatalf("deleting a missing id must not fail, got %v", err)
	}
}

func TestDeleteByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteByIDSQL).WithArgs(int64(1)).WillReturnError(errors.New("db err"))

	err := repo.DeleteByID(context.Background(), 1)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
