package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
)

const driverColumns = `id, company_id, user_id, license_number, license_class, license_expiry,
		vehicle_type, vehicle_vin, vehicle_plate, status, rating, total_loads, total_miles,
		created_at, updated_at`

// driverSortColumns maps public sortBy values to columns.
var driverSortColumns = map[string]string{
	"created_at":     "created_at",
	"updated_at":     "updated_at",
	"license_number": "license_number",
	"status":         "status",
	"rating":         "rating",
	"total_loads":    "total_loads",
	"total_miles":    "total_miles",
}

// DriverPostgres is a PostgreSQL implementation of repository.DriverRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DriverPostgres struct {
	db *sql.DB
}

// NewDriverPostgres creates a new DriverPostgres repository.
func NewDriverPostgres(db *sql.DB) *DriverPostgres {
	return &DriverPostgres{db: db}
}

var _ repository.DriverRepository = (*DriverPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDriver(row rowScanner) (*model.Driver, error) {
	var d model.Driver
	if err := row.Scan(
		&d.ID,
		&d.CompanyID,
		&d.UserID,
		&d.LicenseNumber,
		&d.LicenseClass,
		&d.LicenseExpiry,
		&d.VehicleType,
		&d.VehicleVIN,
		&d.VehiclePlate,
		&d.Status,
		&d.Rating,
		&d.TotalLoads,
		&d.TotalMiles,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new driver row and returns the stored record.
func (r *DriverPostgres) Create(ctx context.Context, d *model.Driver) (*model.Driver, error) {
	q := `
		INSERT INTO drivers (id, company_id, user_id, license_number, license_class, license_expiry,
			vehicle_type, vehicle_vin, vehicle_plate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING ` + driverColumns
	row := r.db.QueryRowContext(ctx, q,
		d.ID,
		d.CompanyID,
		d.UserID,
		d.LicenseNumber,
		d.LicenseClass,
		d.LicenseExpiry,
		d.VehicleType,
		d.VehicleVIN,
		d.VehiclePlate,
		d.Status,
		d.CreatedAt,
	)
	out, err := scanDriver(row)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// FindByID fetches a single driver of companyID.
func (r *DriverPostgres) FindByID(ctx context.Context, companyID, id string) (*model.Driver, error) {
	q := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE company_id = $1 AND id = $2`
	d, err := scanDriver(r.db.QueryRowContext(ctx, q, companyID, id))
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

// List returns one page of companyID's drivers and the filtered total.
func (r *DriverPostgres) List(ctx context.Context, companyID string, lq repository.ListQuery) (*repository.PageResult[model.Driver], error) {
	var w whereBuilder
	w.add("company_id = $%[1]d", companyID)
	if lq.Status != "" {
		w.add("status = $%[1]d", lq.Status)
	}
	if lq.Search != "" {
		w.add("(license_number ILIKE $%[1]d OR vehicle_plate ILIKE $%[1]d OR vehicle_vin ILIKE $%[1]d)", likePattern(lq.Search))
	}
	if lq.From != nil {
		w.add("created_at >= $%[1]d", *lq.From)
	}
	if lq.To != nil {
		w.add("created_at <= $%[1]d", *lq.To)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drivers WHERE `+w.String(), w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	n := w.next()
	q := fmt.Sprintf(`SELECT %s
		FROM drivers
		WHERE %s
		%s
		LIMIT $%d OFFSET $%d`,
		driverColumns, w.String(), orderBy(driverSortColumns, lq.SortBy, lq.SortOrder, "created_at"), n, n+1)
	args := append(w.args, lq.Limit, lq.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Driver]{Items: items, Total: total}, nil
}

// Update applies the non-nil fields of u. An empty update returns the current row.
func (r *DriverPostgres) Update(ctx context.Context, companyID, id string, u model.DriverUpdate) (*model.Driver, error) {
	if u.Empty() {
		return r.FindByID(ctx, companyID, id)
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if u.LicenseNumber != nil {
		set("license_number", *u.LicenseNumber)
	}
	if u.LicenseClass != nil {
		set("license_class", *u.LicenseClass)
	}
	if u.LicenseExpiry != nil {
		set("license_expiry", *u.LicenseExpiry)
	}
	if u.VehicleType != nil {
		set("vehicle_type", *u.VehicleType)
	}
	if u.VehicleVIN != nil {
		set("vehicle_vin", *u.VehicleVIN)
	}
	if u.VehiclePlate != nil {
		set("vehicle_plate", *u.VehiclePlate)
	}
	if u.Status != nil {
		set("status", *u.Status)
	}

	args = append(args, companyID, id)
	q := fmt.Sprintf(`UPDATE drivers
		SET %s, updated_at = now()
		WHERE company_id = $%d AND id = $%d
		RETURNING %s`, strings.Join(sets, ", "), len(args)-1, len(args), driverColumns)

	d, err := scanDriver(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

// Delete removes a driver. A missing row returns apperror.ErrRecordMissing.
func (r *DriverPostgres) Delete(ctx context.Context, companyID, id string) error {
	const q = `DELETE FROM drivers WHERE company_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, q, companyID, id)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return translate(sql.ErrNoRows)
	}
	return nil
}
