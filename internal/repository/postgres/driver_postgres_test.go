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

var driverCols = []string{
	"id", "company_id", "user_id", "license_number", "license_class", "license_expiry",
	"vehicle_type", "vehicle_vin", "vehicle_plate", "status", "rating", "total_loads", "total_miles",
	"created_at", "updated_at",
}

func driverRow(rows *sqlmock.Rows, id, companyID string, now time.Time) *sqlmock.Rows {
	return rows.AddRow(id, companyID, "usr-1", "D1234567", "A", nil, "reefer", nil, "TX-1234", "active", 4.5, 12, 10450.5, now, now)
}

func TestDriverPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDriverPostgres(db)
	now := time.Now().UTC()
	class := "A"
	d := &model.Driver{
		ID:            "drv-1",
		CompanyID:     "cmp-1",
		UserID:        "usr-1",
		LicenseNumber: "D1234567",
		LicenseClass:  &class,
		Status:        model.DriverActive,
		CreatedAt:     now,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO drivers").
			WithArgs(d.ID, d.CompanyID, d.UserID, d.LicenseNumber, class,
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), d.Status, now).
			WillReturnRows(driverRow(sqlmock.NewRows(driverCols), d.ID, d.CompanyID, now))

		out, err := repo.Create(context.Background(), d)

		require.NoError(t, err)
		assert.Equal(t, "drv-1", out.ID)
		require.NotNil(t, out.LicenseClass)
		assert.Equal(t, "A", *out.LicenseClass)
		assert.Nil(t, out.VehicleVIN)
		assert.Equal(t, 12, out.TotalLoads)
	})

	t.Run("duplicate user in company", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO drivers").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "drivers_company_id_user_id_key"})

		out, err := repo.Create(context.Background(), d)

		assert.Nil(t, out)
		assert.True(t, errors.Is(err, apperror.ErrDuplicate))
		assert.Contains(t, err.Error(), "drivers_company_id_user_id_key")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDriverPostgres(db)
	ctx := context.Background()

	t.Run("scoped to company", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM drivers WHERE company_id = (.+) AND id = ").
			WithArgs("cmp-1", "drv-1").
			WillReturnRows(driverRow(sqlmock.NewRows(driverCols), "drv-1", "cmp-1", time.Now()))

		d, err := repo.FindByID(ctx, "cmp-1", "drv-1")

		require.NoError(t, err)
		assert.Equal(t, "cmp-1", d.CompanyID)
	})

	t.Run("other tenant sees nothing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM drivers").
			WithArgs("cmp-2", "drv-1").
			WillReturnError(sql.ErrNoRows)

		d, err := repo.FindByID(ctx, "cmp-2", "drv-1")

		assert.Nil(t, d)
		assert.True(t, errors.Is(err, apperror.ErrRecordMissing))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDriverPostgres(db)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM drivers WHERE company_id = $1")).
			WithArgs("cmp-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		rows := sqlmock.NewRows(driverCols)
		for _, id := range []string{"d6", "d7", "d8", "d9", "d10"} {
			driverRow(rows, id, "cmp-1", time.Now())
		}
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3")).
			WithArgs("cmp-1", 5, 5).
			WillReturnRows(rows)

		res, err := repo.List(ctx, "cmp-1", repository.ListQuery{Limit: 5, Offset: 5})

		require.NoError(t, err)
		assert.Equal(t, 12, res.Total)
		assert.Len(t, res.Items, 5)
	})

	t.Run("filters", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
		where := "company_id = $1 AND status = $2 AND (license_number ILIKE $3 OR vehicle_plate ILIKE $3 OR vehicle_vin ILIKE $3) AND created_at >= $4 AND created_at <= $5"

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM drivers WHERE " + where)).
			WithArgs("cmp-1", "active", `%tx\_%`, from, to).
			WillReturnError(errors.New("boom"))

		// The "_" is escaped so it matches literally.
		_, err := repo.List(ctx, "cmp-1", repository.ListQuery{
			Limit: 10, Status: "active", Search: "tx_", From: &from, To: &to,
		})
		assert.Error(t, err)
	})

	t.Run("unknown sort column falls back", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, id ASC")).
			WillReturnRows(sqlmock.NewRows(driverCols))

		res, err := repo.List(ctx, "cmp-1", repository.ListQuery{Limit: 10, SortBy: "1; DROP TABLE drivers", SortOrder: "ASC"})

		require.NoError(t, err)
		assert.NotNil(t, res.Items)
	})
}

func TestDriverPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDriverPostgres(db)
	ctx := context.Background()

	t.Run("partial", func(t *testing.T) {
		status := model.DriverOnLeave
		plate := "TX-9999"
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE drivers SET vehicle_plate = $1, status = $2, updated_at = now() WHERE company_id = $3 AND id = $4")).
			WithArgs(plate, status, "cmp-1", "drv-1").
			WillReturnRows(driverRow(sqlmock.NewRows(driverCols), "drv-1", "cmp-1", time.Now()))

		d, err := repo.Update(ctx, "cmp-1", "drv-1", model.DriverUpdate{Status: &status, VehiclePlate: &plate})

		require.NoError(t, err)
		assert.Equal(t, "drv-1", d.ID)
	})

	t.Run("empty update reads current row", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM drivers").
			WithArgs("cmp-1", "drv-1").
			WillReturnRows(driverRow(sqlmock.NewRows(driverCols), "drv-1", "cmp-1", time.Now()))

		d, err := repo.Update(ctx, "cmp-1", "drv-1", model.DriverUpdate{})

		require.NoError(t, err)
		assert.Equal(t, "drv-1", d.ID)
	})

	t.Run("missing", func(t *testing.T) {
		num := "X1"
		mock.ExpectQuery("UPDATE drivers").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, "cmp-1", "nope", model.DriverUpdate{LicenseNumber: &num})
		assert.True(t, errors.Is(err, apperror.ErrRecordMissing))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDriverPostgres(db)

	mock.ExpectExec("DELETE FROM drivers WHERE company_id = (.+) AND id = ").
		WithArgs("cmp-1", "drv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM drivers").
		WithArgs("cmp-1", "drv-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "cmp-1", "drv-1"))
	assert.True(t, errors.Is(repo.Delete(context.Background(), "cmp-1", "drv-2"), apperror.ErrRecordMissing))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%abc%`, likePattern("abc"))
	assert.Equal(t, `%10\%\_off\\%`, likePattern(`10%_off\`))
}
