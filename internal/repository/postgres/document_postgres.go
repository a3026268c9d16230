package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
)

const documentColumns = `id, driver_id, type, filename, storage_path, content_type, size, expiry_date, uploaded_at`

var documentSortColumns = map[string]string{
	"uploaded_at": "uploaded_at",
	"created_at":  "uploaded_at",
	"filename":    "filename",
	"type":        "type",
	"size":        "size",
	"expiry_date": "expiry_date",
}

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

func scanDocument(row rowScanner) (*model.DriverDocument, error) {
	var d model.DriverDocument
	if err := row.Scan(
		&d.ID,
		&d.DriverID,
		&d.Type,
		&d.Filename,
		&d.StoragePath,
		&d.ContentType,
		&d.Size,
		&d.ExpiryDate,
		&d.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.DriverDocument) (*model.DriverDocument, error) {
	const q = `
		INSERT INTO driver_documents (id, driver_id, type, filename, storage_path, content_type, size, expiry_date, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.DriverID,
		doc.Type,
		doc.Filename,
		doc.StoragePath,
		doc.ContentType,
		doc.Size,
		doc.ExpiryDate,
		doc.UploadedAt,
	)
	out, err := scanDocument(row)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// FindByID fetches a single document of driverID.
func (r *DocumentPostgres) FindByID(ctx context.Context, driverID, id string) (*model.DriverDocument, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM driver_documents
		WHERE driver_id = $1 AND id = $2
	`
	d, err := scanDocument(r.db.QueryRowContext(ctx, q, driverID, id))
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

// List returns one page of driverID's documents and the filtered total.
// Status filters on the document type.
func (r *DocumentPostgres) List(ctx context.Context, driverID string, lq repository.ListQuery) (*repository.PageResult[model.DriverDocument], error) {
	var w whereBuilder
	w.add("driver_id = $%[1]d", driverID)
	if lq.Status != "" {
		w.add("type = $%[1]d", lq.Status)
	}
	if lq.Search != "" {
		w.add("filename ILIKE $%[1]d", likePattern(lq.Search))
	}
	if lq.From != nil {
		w.add("uploaded_at >= $%[1]d", *lq.From)
	}
	if lq.To != nil {
		w.add("uploaded_at <= $%[1]d", *lq.To)
	}

	// Count total rows
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM driver_documents WHERE `+w.String(), w.args...).Scan(&total); err != nil {
		return nil, translate(err)
	}

	// Fetch page
	n := w.next()
	q := fmt.Sprintf(`SELECT %s
		FROM driver_documents
		WHERE %s
		%s
		LIMIT $%d OFFSET $%d`,
		documentColumns, w.String(), orderBy(documentSortColumns, lq.SortBy, lq.SortOrder, "uploaded_at"), n, n+1)
	args := append(w.args, lq.Limit, lq.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := make([]model.DriverDocument, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.DriverDocument]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a document. A missing row returns apperror.ErrRecordMissing.
func (r *DocumentPostgres) Delete(ctx context.Context, driverID, id string) error {
	const q = `DELETE FROM driver_documents WHERE driver_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, q, driverID, id)
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
