package vocabulary

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryColumns = []string{"original", "translation", "transcription", "examples"}

func newMockDBRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBRepository_FindAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Entry
		wantErr   bool
	}{
		{
			name: "returns all entries in order",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(entryColumns).
					AddRow("hello", "привет", "həˈləʊ", "Hello!").
					AddRow("help", "", "", "")
				mock.ExpectQuery("SELECT original, translation, transcription, examples FROM entries ORDER BY id").WillReturnRows(rows)
			},
			want: []Entry{
				{Original: "hello", Translation: "привет", Transcription: "həˈləʊ", Examples: "Hello!"},
				{Original: "help"},
			},
		},
		{
			name: "empty table",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT original, translation, transcription, examples FROM entries ORDER BY id").
					WillReturnRows(sqlmock.NewRows(entryColumns))
			},
			want: []Entry{},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT original, translation, transcription, examples FROM entries ORDER BY id").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockDBRepository(t)
			tt.setupMock(mock)

			got, err := repo.Load(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindByOriginal(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Entry
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM entries WHERE LOWER\\(original\\) = LOWER\\(\\?\\)").
					WithArgs("Hello").
					WillReturnRows(sqlmock.NewRows(entryColumns).AddRow("hello", "привет", "", ""))
			},
			want: &Entry{Original: "hello", Translation: "привет"},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM entries WHERE LOWER\\(original\\) = LOWER\\(\\?\\)").
					WithArgs("Hello").
					WillReturnRows(sqlmock.NewRows(entryColumns))
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockDBRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByOriginal(context.Background(), "Hello")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDBRepository_Create(t *testing.T) {
	repo, mock := newMockDBRepository(t)
	mock.ExpectExec("INSERT INTO entries").
		WithArgs("hello", "привет", "həˈləʊ", "Hello!").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &Entry{Original: "hello", Translation: "привет", Transcription: "həˈləʊ", Examples: "Hello!"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_Update(t *testing.T) {
	repo, mock := newMockDBRepository(t)
	mock.ExpectExec("UPDATE entries SET").
		WithArgs("hola", "", "", "Hello").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &Entry{Original: "Hello", Translation: "hola"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_Save(t *testing.T) {
	tests := []struct {
		name      string
		entries   []Entry
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name:    "replaces all entries",
			entries: []Entry{{Original: "hello"}, {Original: "help", Translation: "помощь"}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM entries").WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("INSERT INTO entries").WithArgs("hello", "", "", "").WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO entries").WithArgs("help", "помощь", "", "").WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:    "rolls back on insert failure",
			entries: []Entry{{Original: "hello"}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM entries").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO entries").WillReturnError(fmt.Errorf("duplicate key"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockDBRepository(t)
			tt.setupMock(mock)

			err := repo.Save(context.Background(), tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
