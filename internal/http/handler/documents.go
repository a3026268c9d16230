package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/http/request"
	"github.com/freightdev/openhwy-sub001/internal/http/response"
	"github.com/freightdev/openhwy-sub001/internal/service"
)

// uploadForm holds the non-file multipart fields of an upload.
type uploadForm struct {
	Type       string `json:"type" validate:"required,oneof=license insurance medical_cert background_check"`
	ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// ListDocuments godoc
// @Summary  List a driver's documents
// @Tags     documents
// @Produce  json
// @Param    id     path  string true  "Driver ID"
// @Param    page   query int    false "Page (default 1)"
// @Param    limit  query int    false "Page size (1-100, default 10)"
// @Param    status query string false "Document type"
// @Success  200 {object} response.Paginated[model.DriverDocument]
// @Failure  404 {object} response.Error
// @Router   /api/v1/drivers/{id}/documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, q, err := listScope(c)
		if err != nil {
			return err
		}
		driverID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		res, err := svc.List(c.UserContext(), tenant, driverID, q.ListQuery())
		if err != nil {
			return err
		}
		return response.Page(c, res.Items, res.Total, q.Page, q.Limit)
	}
}

// UploadDocument godoc
// @Summary  Upload a driver document
// @Tags     documents
// @Accept   mpfd
// @Produce  json
// @Param    id          path     string true  "Driver ID"
// @Param    file        formData file   true  "Document file"
// @Param    type        formData string true  "license, insurance, medical_cert or background_check"
// @Param    expiry_date formData string false "YYYY-MM-DD"
// @Success  201 {object} response.Success[model.DriverDocument]
// @Failure  400 {object} response.Error
// @Router   /api/v1/drivers/{id}/documents [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, err := request.CompanyContext(c)
		if err != nil {
			return err
		}
		driverID, err := parseID(c, "id")
		if err != nil {
			return err
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return apperror.Validation("file is required").WithCode("FILE_REQUIRED")
		}
		form := uploadForm{Type: c.FormValue("type"), ExpiryDate: c.FormValue("expiry_date")}
		if err := request.Validate(&form); err != nil {
			return err
		}

		f, err := fh.Open()
		if err != nil {
			return apperror.Validation("cannot open uploaded file").WithCode("FILE_OPEN_ERROR").WithCause(err)
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), tenant, service.UploadInput{
			DriverID:    driverID,
			Type:        form.Type,
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			ExpiryDate:  parseDay(&form.ExpiryDate),
			Body:        f,
		})
		if err != nil {
			return err
		}
		return response.Created(c, doc)
	}
}

// GetDocument godoc
// @Summary  Get a driver document with a presigned download URL
// @Tags     documents
// @Produce  json
// @Param    id    path string true "Driver ID"
// @Param    docId path string true "Document ID"
// @Success  200 {object} response.Success[model.DriverDocument]
// @Failure  404 {object} response.Error
// @Router   /api/v1/drivers/{id}/documents/{docId} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, err := request.CompanyContext(c)
		if err != nil {
			return err
		}
		driverID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		docID, err := parseID(c, "docId")
		if err != nil {
			return err
		}
		doc, err := svc.Get(c.UserContext(), tenant, driverID, docID)
		if err != nil {
			return err
		}
		return response.OK(c, doc)
	}
}

// DocumentContent godoc
// @Summary  Download a driver document through the API
// @Tags     documents
// @Produce  octet-stream
// @Param    id    path string true "Driver ID"
// @Param    docId path string true "Document ID"
// @Success  200 {file} file
// @Failure  404 {object} response.Error
// @Router   /api/v1/drivers/{id}/documents/{docId}/content [get]
func DocumentContent(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, err := request.CompanyContext(c)
		if err != nil {
			return err
		}
		driverID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		docID, err := parseID(c, "docId")
		if err != nil {
			return err
		}
		doc, body, err := svc.Open(c.UserContext(), tenant, driverID, docID)
		if err != nil {
			return err
		}

		c.Attachment(doc.Filename)
		if doc.ContentType != "" {
			c.Set(fiber.HeaderContentType, doc.ContentType)
		}
		size := -1
		if doc.Size > 0 {
			size = int(doc.Size)
		}
		// fasthttp closes body once the stream is written.
		return c.SendStream(body, size)
	}
}

// DeleteDocument godoc
// @Summary  Delete a driver document
// @Tags     documents
// @Produce  json
// @Param    id    path string true "Driver ID"
// @Param    docId path string true "Document ID"
// @Success  200 {object} response.Success[map[string]string]
// @Failure  404 {object} response.Error
// @Router   /api/v1/drivers/{id}/documents/{docId} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant, err := request.CompanyContext(c)
		if err != nil {
			return err
		}
		driverID, err := parseID(c, "id")
		if err != nil {
			return err
		}
		docID, err := parseID(c, "docId")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), tenant, driverID, docID); err != nil {
			return err
		}
		return response.OK(c, fiber.Map{"message": "Document deleted successfully"})
	}
}
