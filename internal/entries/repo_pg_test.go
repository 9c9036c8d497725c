package entries

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	entry := Entry{
		ID:        "entry-1",
		Date:      "2025-04-01",
		Name:      "applications",
		Value:     3,
		CreatedAt: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO entries").
		WithArgs(entry.ID, entry.Date, entry.Name, entry.Value, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "entry_date", "name", "value", "created_at"}).
		AddRow("entry-2", "2025-04-02", "interviews", 1.0, created.Add(time.Hour)).
		AddRow("entry-1", "2025-04-01", "applications", 3.0, created)
	mock.ExpectQuery("SELECT id, entry_date::text, name, value, created_at").
		WithArgs(50, 0).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background(), 0, -1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "entry-2" || got[1].Value != 3 {
		t.Fatalf("unexpected rows %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
