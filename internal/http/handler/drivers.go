package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/http/request"
	"github.com/freightdev/openhwy-sub001/internal/http/response"
	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/service"
)

const dateOnly = "2006-01-02"

type createDriverRequest struct {
	UserID        string  `json:"user_id" validate:"omitempty,uuid"`
	LicenseNumber string  `json:"license_number" validate:"required,max=64"`
	LicenseClass  *string `json:"license_class" validate:"omitempty,max=8"`
	LicenseExpiry *string `json:"license_expiry" validate:"omitempty,datetime=2006-01-02"`
	VehicleType   *string `json:"vehicle_type" validate:"omitempty,max=64"`
	VehicleVIN    *string `json:"vehicle_vin" validate:"omitempty,len=17"`
	VehiclePlate  *string `json:"vehicle_plate" validate:"omitempty,max=16"`
	Status        string  `json:"status" validate:"omitempty,oneof=active inactive on_leave suspended"`
}

type updateDriverRequest struct {
	LicenseNumber *string `json:"license_number" validate:"omitempty,max=64"`
	LicenseClass  *string `json:"license_class" validate:"omitempty,max=8"`
	LicenseExpiry *string `json:"license_expiry" validate:"omitempty,datetime=2006-01-02"`
	VehicleType   *string `json:"vehicle_type" validate:"omitempty,max=64"`
	VehicleVIN    *string `json:"vehicle_vin" validate:"omitempty,len=17"`
	VehiclePlate  *string `json:"vehicle_plate" validate:"omitempty,max=16"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive on_leave suspended"`
}

// parseID reads a UUID route parameter.
func parseID(c *fiber.Ctx, name string) (string, error) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", apperror.Validation("invalid id format").WithCode("INVALID_ID")
	}
	return id, nil
}

// parseDay parses an already validated YYYY-MM-DD value.
func parseDay(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateOnly, *s)
	if err != nil {
		return nil
	}
	return &t
}

// listScope resolves the caller's tenant and rejects a companyId filter
// naming another company.
func listScope(c *fiber.Ctx) (auth.Tenant, request.QueryParams, error) {
	tenant, err := request.CompanyContext(c)
	if err != nil {
		return auth.Tenant{}, request.QueryParams{}, err
	}
	q, err := request.Query(c)
	if err != nil {
		return auth.Tenant{}, request.QueryParams{}, err
	}
	if q.CompanyID != "" && q.CompanyID != tenant.CompanyID {
		return auth.Tenant{}, request.QueryParams{}, apperror.Forbidden("Cannot access another company's data")
	}
	return tenant, q, nil
}

// ListDrivers godoc
// @Summary  List drivers of the caller's company
// @Tags     drivers
// @Produce  json
// @Param    page      query int    false "Page (default 1)"
// @Param    limit     query int    false "Page size (1-100, default 10)"
// @Param    sortBy    query string false "Sort column"
// @Param    sortOrder query string false "asc or desc"
// @Param    search    query string false "License number, plate or VIN"
// @Param    status    query string false "Driver status"
// @Success  200 {object} response.Paginated[model.Driver]
// @Failure  401 {object} response.Error
// @Router   /api/v1/drivers [get]
func ListDrivers(svc service.DriverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, q, err := listScope(c)
		if err != nil {
			return err
		}
		res, err := svc.List(c.UserContext(), tenant, q.ListQuery())
		if err != nil {
			return err
		}
		return response.Page(c, res.Items, res.Total, q.Page, q.Limit)
	}
}

// GetDriver godoc
// @Summary  Get a driver
// @Tags     drivers
// @Produce  json
// @Param    id path string true "Driver ID"
// @Success  200 {object} response.Success[model.Driver]
// @Failure  404 {object} response.Error
// @Router   /api/v1/drivers/{id} [get]
func GetDriver(svc service.DriverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, err := request.CompanyContext(c)
		if err != nil {
			return err
		}
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}
		d, err := svc.Get(c.UserContext(), tenant, id)
		if err != nil {
			return err
		}
		return response.OK(c, d)
	}
}

// CreateDriver godoc
// @Summary  Register a driver
// @Tags     drivers
// @Accept   json
// @Produce  json
// @Success  201 {object} response.Success[model.Driver]
// @Failure  400 {object} response.Error
// @Failure  409 {object} response.Error
// @Router   /api/v1/drivers [post]
func CreateDriver(svc service.DriverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, err := request.CompanyContext(c)
		if err != nil {
			return err
		}
		var body createDriverRequest
		if err := request.Bind(c, &body); err != nil {
			return err
		}
		d, err := svc.Create(c.UserContext(), tenant, service.CreateDriverInput{
			UserID:        body.UserID,
			LicenseNumber: body.LicenseNumber,
			LicenseClass:  body.LicenseClass,
			LicenseExpiry: parseDay(body.LicenseExpiry),
			VehicleType:   body.VehicleType,
			VehicleVIN:    body.VehicleVIN,
			VehiclePlate:  body.VehiclePlate,
			Status:        body.Status,
		})
		if err != nil {
			return err
		}
		return response.Created(c, d)
	}
}

// UpdateDriver godoc
// @Summary  Partially update a driver
// @Tags     drivers
// @Accept   json
// @Produce  json
// @Param    id path string true "Driver ID"
// @Success  200 {object} response.Success[model.Driver]
// @Failure  404 {object} response.Error
// @Router   /api/v1/drivers/{id} [patch]
func UpdateDriver(svc service.DriverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, err := request.CompanyContext(c)
		if err != nil {
			return err
		}
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}
		var body updateDriverRequest
		if err := request.Bind(c, &body); err != nil {
			return err
		}
		d, err := svc.Update(c.UserContext(), tenant, id, model.DriverUpdate{
			LicenseNumber: body.LicenseNumber,
			LicenseClass:  body.LicenseClass,
			LicenseExpiry: parseDay(body.LicenseExpiry),
			VehicleType:   body.VehicleType,
			VehicleVIN:    body.VehicleVIN,
			VehiclePlate:  body.VehiclePlate,
			Status:        body.Status,
		})
		if err != nil {
			return err
		}
		return response.OK(c, d)
	}
}

// DeleteDriver godoc
// @Summary  Delete a driver and its documents
// @Tags     drivers
// @Produce  json
// @Param    id path string true "Driver ID"
// @Success  200 {object} response.Success[map[string]string]
// @Failure  403 {object} response.Error
// @Router   /api/v1/drivers/{id} [delete]
func DeleteDriver(svc service.DriverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := request.RequireRole(c, "admin", "dispatcher"); err != nil {
			return err
		}
		tenant, err := request.CompanyContext(c)
		if err != nil {
			return err
		}
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), tenant, id); err != nil {
			return err
		}
		return response.OK(c, fiber.Map{"message": "Driver deleted successfully"})
	}
}
