package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
)

// DriverListResult is the service-level DTO for paginated drivers.
type DriverListResult struct {
	Items []model.Driver
	Total int
}

// CreateDriverInput carries the fields accepted when registering a driver.
// An empty UserID registers the caller.
type CreateDriverInput struct {
	UserID        string
	LicenseNumber string
	LicenseClass  *string
	LicenseExpiry *time.Time
	VehicleType   *string
	VehicleVIN    *string
	VehiclePlate  *string
	Status        string
}

// DriverService defines the driver use cases. Every call is scoped to the
// tenant it receives.
type DriverService interface {
	List(ctx context.Context, tenant auth.Tenant, q repository.ListQuery) (*DriverListResult, error)
	Get(ctx context.Context, tenant auth.Tenant, id string) (*model.Driver, error)
	Create(ctx context.Context, tenant auth.Tenant, in CreateDriverInput) (*model.Driver, error)
	Update(ctx context.Context, tenant auth.Tenant, id string, u model.DriverUpdate) (*model.Driver, error)
	Delete(ctx context.Context, tenant auth.Tenant, id string) error
}

type driverService struct {
	repo repository.DriverRepository
	now  func() time.Time
}

// NewDriverService constructs a new DriverService.
func NewDriverService(repo repository.DriverRepository) DriverService {
	return &driverService{repo: repo, now: time.Now}
}

func (s *driverService) List(ctx context.Context, tenant auth.Tenant, q repository.ListQuery) (*DriverListResult, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	res, err := s.repo.List(ctx, tenant.CompanyID, q)
	if err != nil {
		return nil, err
	}
	return &DriverListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *driverService) Get(ctx context.Context, tenant auth.Tenant, id string) (*model.Driver, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	d, err := s.repo.FindByID(ctx, tenant.CompanyID, id)
	if err != nil {
		return nil, driverError(err)
	}
	return d, nil
}

func (s *driverService) Create(ctx context.Context, tenant auth.Tenant, in CreateDriverInput) (*model.Driver, error) {
	if strings.TrimSpace(in.LicenseNumber) == "" {
		return nil, apperror.Validation("license_number is required")
	}
	userID := in.UserID
	if userID == "" {
		userID = tenant.UserID
	}
	status := in.Status
	if status == "" {
		status = model.DriverActive
	}
	d := &model.Driver{
		ID:            uuid.New().String(),
		CompanyID:     tenant.CompanyID,
		UserID:        userID,
		LicenseNumber: strings.TrimSpace(in.LicenseNumber),
		LicenseClass:  in.LicenseClass,
		LicenseExpiry: in.LicenseExpiry,
		VehicleType:   in.VehicleType,
		VehicleVIN:    in.VehicleVIN,
		VehiclePlate:  in.VehiclePlate,
		Status:        status,
		CreatedAt:     s.now().UTC(),
	}
	stored, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, driverError(err)
	}
	return stored, nil
}

func (s *driverService) Update(ctx context.Context, tenant auth.Tenant, id string, u model.DriverUpdate) (*model.Driver, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if u.LicenseNumber != nil && strings.TrimSpace(*u.LicenseNumber) == "" {
		return nil, apperror.Validation("license_number must not be empty")
	}
	d, err := s.repo.Update(ctx, tenant.CompanyID, id, u)
	if err != nil {
		return nil, driverError(err)
	}
	return d, nil
}

// Delete removes the driver row. Document rows go with it by cascade.
func (s *driverService) Delete(ctx context.Context, tenant auth.Tenant, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, tenant.CompanyID, id); err != nil {
		return driverError(err)
	}
	return nil
}

// driverError turns storage sentinels into client-facing errors. Anything
// else passes through and classifies as internal.
func driverError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrRecordMissing):
		return ErrDriverNotFound.WithCause(err)
	case errors.Is(err, apperror.ErrDuplicate):
		return apperror.Conflict("Driver record already exists for this user").WithCause(err)
	default:
		return err
	}
}
