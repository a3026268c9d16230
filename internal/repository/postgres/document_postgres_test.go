package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
)

var documentCols = []string{"id", "driver_id", "type", "filename", "storage_path", "content_type", "size", "expiry_date", "uploaded_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.DriverDocument{
		ID:          "doc-1",
		DriverID:    "drv-1",
		Type:        model.DocLicense,
		Filename:    "cdl.pdf",
		StoragePath: "drivers/drv-1/doc-1.pdf",
		ContentType: "application/pdf",
		Size:        123,
		UploadedAt:  now,
	}

	rows := sqlmock.NewRows(documentCols).
		AddRow(doc.ID, doc.DriverID, doc.Type, doc.Filename, doc.StoragePath, doc.ContentType, doc.Size, nil, doc.UploadedAt)

	mock.ExpectQuery("INSERT INTO driver_documents").
		WithArgs(doc.ID, doc.DriverID, doc.Type, doc.Filename, doc.StoragePath, doc.ContentType, doc.Size, sqlmock.AnyArg(), doc.UploadedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Nil(t, result.ExpiryDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Create_UnknownDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO driver_documents").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "driver_documents_driver_id_fkey"})

	_, err = NewDocumentPostgres(db).Create(context.Background(), &model.DriverDocument{ID: "doc-1", DriverID: "gone"})

	assert.True(t, errors.Is(err, apperror.ErrRecordMissing))
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		expiry := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(documentCols).
			AddRow("doc-1", "drv-1", "insurance", "policy.pdf", "drivers/drv-1/doc-1.pdf", "application/pdf", 100, expiry, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM driver_documents WHERE driver_id = (.+) AND id = ").
			WithArgs("drv-1", "doc-1").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "drv-1", "doc-1")

		assert.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "doc-1", doc.ID)
		require.NotNil(t, doc.ExpiryDate)
		assert.True(t, expiry.Equal(*doc.ExpiryDate))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM driver_documents").
			WithArgs("drv-1", "missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "drv-1", "missing")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrRecordMissing))
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM driver_documents WHERE driver_id = $1")).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(documentCols).
			AddRow("doc-1", "drv-1", "license", "cdl.pdf", "drivers/drv-1/doc-1.pdf", "application/pdf", 100, nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM driver_documents WHERE (.+) ORDER BY uploaded_at DESC, id DESC").
			WithArgs("drv-1", 10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, "drv-1", repository.ListQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})

	t.Run("type and search filters", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM driver_documents WHERE driver_id = $1 AND type = $2 AND filename ILIKE $3")).
			WithArgs("drv-1", "insurance", "%50\\%%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("ORDER BY filename ASC, id ASC").
			WithArgs("drv-1", "insurance", "%50\\%%", 5, 5).
			WillReturnRows(sqlmock.NewRows(documentCols))

		res, err := repo.List(ctx, "drv-1", repository.ListQuery{
			Limit: 5, Offset: 5, Status: "insurance", Search: "50%", SortBy: "filename", SortOrder: "asc",
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM driver_documents WHERE driver_id = (.+) AND id = ").
			WithArgs("drv-1", "doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "drv-1", "doc-1"))
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM driver_documents").
			WithArgs("drv-1", "doc-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "drv-1", "doc-2")
		assert.True(t, errors.Is(err, apperror.ErrRecordMissing))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
