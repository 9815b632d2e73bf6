package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"barcodeapi/internal/model"
	"barcodeapi/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var barcodeRowColumns = []string{"id", "user_id", "type", "url", "edit_flag", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestBarcodePostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBarcodePostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(barcodeRowColumns).
			AddRow("b1", "u1", "QR", "https://example.com", true, now, now)

		mock.ExpectQuery("SELECT (.+) FROM barcodes WHERE id = ?").
			WithArgs("b1").
			WillReturnRows(rows)

		b, err := repo.FindByID(ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, &model.Barcode{
			ID:        "b1",
			UserID:    "u1",
			Type:      model.BarcodeTypeQR,
			URL:       "https://example.com",
			EditFlag:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}, b)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM barcodes WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		b, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, b)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBarcodePostgres_FindStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBarcodePostgres(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, edit_flag FROM barcodes WHERE id = $1")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "edit_flag"}).AddRow("u1", true))

	s, err := repo.FindStatus(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, &model.BarcodeStatus{UserID: "u1", EditFlag: true}, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBarcodePostgres_FindOwner(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBarcodePostgres(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id FROM barcodes WHERE id = $1")).
			WithArgs("b1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow("b1", "u1"))

		o, err := repo.FindOwner(context.Background(), "b1")

		require.NoError(t, err)
		assert.Equal(t, &model.BarcodeOwner{ID: "b1", UserID: "u1"}, o)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id FROM barcodes WHERE id = $1")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		o, err := repo.FindOwner(context.Background(), "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, o)
	})
}

func TestBarcodePostgres_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	owner := "u1"
	qr := model.BarcodeTypeQR
	edited := true

	t.Run("owner only ordered by created_at", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBarcodePostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM barcodes WHERE user_id = $1")).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectQuery(regexp.QuoteMeta("FROM barcodes WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3")).
			WithArgs("u1", 2, 2).
			WillReturnRows(sqlmock.NewRows(barcodeRowColumns).
				AddRow("b3", "u1", "QR", "u", false, now, now).
				AddRow("b4", "u1", "EAN13", "v", true, now, now))
		mock.ExpectCommit()

		res, err := repo.List(ctx, repository.ListQuery{
			Filter: repository.Filter{UserID: &owner},
			SortBy: repository.SortByCreatedAt,
			Limit:  2,
			Offset: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, 5, res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "b3", res.Items[0].ID)
		assert.Equal(t, model.BarcodeTypeEAN13, res.Items[1].Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("type and edited filters ordered by updated_at", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBarcodePostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM barcodes WHERE user_id = $1 AND type = $2 AND edit_flag = $3")).
			WithArgs("u1", "QR", true).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND type = $2 AND edit_flag = $3 ORDER BY updated_at DESC, id DESC LIMIT $4 OFFSET $5")).
			WithArgs("u1", "QR", true, 20, 0).
			WillReturnRows(sqlmock.NewRows(barcodeRowColumns))
		mock.ExpectCommit()

		res, err := repo.List(ctx, repository.ListQuery{
			Filter: repository.Filter{UserID: &owner, Type: &qr, EditFlag: &edited},
			SortBy: repository.SortByUpdatedAt,
			Limit:  20,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBarcodePostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("db fail"))
		mock.ExpectRollback()

		res, err := repo.List(ctx, repository.ListQuery{Filter: repository.Filter{UserID: &owner}, Limit: 10})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "count barcodes")
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("page error rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBarcodePostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery("ORDER BY").WillReturnError(errors.New("db fail"))
		mock.ExpectRollback()

		res, err := repo.List(ctx, repository.ListQuery{Filter: repository.Filter{UserID: &owner}, Limit: 10})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "list barcodes")
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewBarcodePostgres(db)

		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		res, err := repo.List(ctx, repository.ListQuery{Limit: 10})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "begin list tx")
		assert.Nil(t, res)
	})
}

func TestBarcodePostgres_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBarcodePostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM barcodes WHERE id = ?").
			WithArgs("b1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "b1"))
	})

	t.Run("row already gone", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM barcodes WHERE id = ?").
			WithArgs("b1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "b1"), sql.ErrNoRows)
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM barcodes WHERE id = ?").
			WithArgs("b1").
			WillReturnError(errors.New("db fail"))

		assert.EqualError(t, repo.Delete(ctx, "b1"), "db fail")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBarcodePostgres_UpdateEditFlag(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBarcodePostgres(db)
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE barcodes SET edit_flag = $1, updated_at = now() WHERE id = $2")).
			WithArgs(true, "b1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateEditFlag(ctx, "b1", true))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE barcodes").
			WithArgs(false, "b2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateEditFlag(ctx, "b2", false), sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
