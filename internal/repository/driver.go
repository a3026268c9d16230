package repository

import (
	"context"

	"github.com/freightdev/openhwy-sub001/internal/model"
)

// DriverRepository persists drivers. Every method is scoped to companyID so
// one tenant never reads or mutates another tenant's rows.
type DriverRepository interface {
	// Create inserts a driver. A second driver for the same (company, user)
	// returns apperror.ErrDuplicate.
	Create(ctx context.Context, d *model.Driver) (*model.Driver, error)

	// FindByID returns apperror.ErrRecordMissing when no row matches.
	FindByID(ctx context.Context, companyID, id string) (*model.Driver, error)

	List(ctx context.Context, companyID string, q ListQuery) (*PageResult[model.Driver], error)

	// Update applies a partial update and returns the stored row.
	Update(ctx context.Context, companyID, id string, u model.DriverUpdate) (*model.Driver, error)

	// Delete removes a driver and, by cascade, its documents.
	Delete(ctx context.Context, companyID, id string) error
}

// DocumentRepository persists driver document metadata. Callers verify the
// driver belongs to their tenant before using it.
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.DriverDocument) (*model.DriverDocument, error)
	FindByID(ctx context.Context, driverID, id string) (*model.DriverDocument, error)
	List(ctx context.Context, driverID string, q ListQuery) (*PageResult[model.DriverDocument], error)
	Delete(ctx context.Context, driverID, id string) error
}
