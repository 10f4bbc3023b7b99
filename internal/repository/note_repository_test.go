package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medroadmap/penalty-board-api/internal/models"
)

func TestNoteRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNoteRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_id", "noted_on", "content", "created_at", "updated_at"}).
		AddRow("n1", "s1", "2026-03-05", "상담 완료", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE student_id = $1")).
		WithArgs("s1").
		WillReturnRows(rows)

	notes, err := repo.ListByStudent(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "상담 완료", notes[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNoteRepository(db)

	mock.ExpectExec("INSERT INTO notes").
		WithArgs("n1", "s1", "2026-03-05", "상담 완료", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	note := &models.Note{ID: "n1", StudentID: "s1", NotedOn: "2026-03-05", Content: "상담 완료"}
	require.NoError(t, repo.Upsert(context.Background(), note))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNoteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE id = $1")).
		WithArgs("n1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "n1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
