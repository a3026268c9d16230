// Package docs registers the OpenAPI 2.0 document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current caller identity and tenant",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Success-auth_RequestContext"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/api/v1/drivers": {
            "get": {
                "tags": ["drivers"],
                "summary": "List drivers of the caller's company",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (1-100, default 10)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Sort column", "name": "sortBy", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "sortOrder", "in": "query"},
                    {"type": "string", "description": "License number, plate or VIN", "name": "search", "in": "query"},
                    {"type": "string", "description": "Driver status", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Paginated-model_Driver"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "post": {
                "tags": ["drivers"],
                "summary": "Register a driver",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Success-model_Driver"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/api/v1/drivers/{id}": {
            "get": {
                "tags": ["drivers"],
                "summary": "Get a driver",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Driver ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Success-model_Driver"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "patch": {
                "tags": ["drivers"],
                "summary": "Partially update a driver",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Driver ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Success-model_Driver"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "delete": {
                "tags": ["drivers"],
                "summary": "Delete a driver and its documents",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Driver ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/api/v1/drivers/{id}/documents": {
            "get": {
                "tags": ["documents"],
                "summary": "List a driver's documents",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Driver ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (1-100, default 10)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Document type", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Paginated-model_DriverDocument"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "post": {
                "tags": ["documents"],
                "summary": "Upload a driver document",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Driver ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Document file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "license, insurance, medical_cert or background_check", "name": "type", "in": "formData", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "expiry_date", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Success-model_DriverDocument"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/api/v1/drivers/{id}/documents/{docId}/content": {
            "get": {
                "tags": ["documents"],
                "summary": "Download a driver document",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"type": "string", "description": "Driver ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Document ID", "name": "docId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/api/v1/drivers/{id}/documents/{docId}": {
            "get": {
                "tags": ["documents"],
                "summary": "Get a driver document with a presigned download URL",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Driver ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Document ID", "name": "docId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Success-model_DriverDocument"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "delete": {
                "tags": ["documents"],
                "summary": "Delete a driver document",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Driver ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Document ID", "name": "docId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        }
    },
    "definitions": {
        "response.Error": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string"},
                "code": {"type": "string"},
                "timestamp": {"type": "string", "example": "2024-01-01T00:00:00.000Z"}
            }
        },
        "response.Pagination": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "auth.Identity": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "company_id": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "auth.Tenant": {
            "type": "object",
            "properties": {
                "company_id": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "auth.RequestContext": {
            "type": "object",
            "properties": {
                "identity": {"$ref": "#/definitions/auth.Identity"},
                "tenant": {"$ref": "#/definitions/auth.Tenant"},
                "request_id": {"type": "string"}
            }
        },
        "model.Driver": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "company_id": {"type": "string"},
                "user_id": {"type": "string"},
                "license_number": {"type": "string"},
                "license_class": {"type": "string"},
                "license_expiry": {"type": "string"},
                "vehicle_type": {"type": "string"},
                "vehicle_vin": {"type": "string"},
                "vehicle_plate": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "inactive", "on_leave", "suspended"]},
                "rating": {"type": "number"},
                "total_loads": {"type": "integer"},
                "total_miles": {"type": "number"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.DriverDocument": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "driver_id": {"type": "string"},
                "type": {"type": "string", "enum": ["license", "insurance", "medical_cert", "background_check"]},
                "filename": {"type": "string"},
                "storage_path": {"type": "string"},
                "content_type": {"type": "string"},
                "size": {"type": "integer"},
                "expiry_date": {"type": "string"},
                "uploaded_at": {"type": "string"},
                "download_url": {"type": "string"}
            }
        },
        "response.Success-auth_RequestContext": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/auth.RequestContext"},
                "timestamp": {"type": "string"}
            }
        },
        "response.Success-model_Driver": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/model.Driver"},
                "timestamp": {"type": "string"}
            }
        },
        "response.Success-model_DriverDocument": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/model.DriverDocument"},
                "timestamp": {"type": "string"}
            }
        },
        "response.Paginated-model_Driver": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Driver"}},
                "pagination": {"$ref": "#/definitions/response.Pagination"},
                "timestamp": {"type": "string"}
            }
        },
        "response.Paginated-model_DriverDocument": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.DriverDocument"}},
                "pagination": {"$ref": "#/definitions/response.Pagination"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TMS API",
	Description:      "Multi-tenant transportation management API: drivers and driver documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
