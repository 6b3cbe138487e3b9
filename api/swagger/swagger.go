package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Report API",
        "description": "Course enrolment and revenue reports with CSV and Excel export",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Reports", "description": "Course statistics, filters and exports"},
        {"name": "Metrics", "description": "Service instrumentation"}
    ],
    "paths": {
        "/reports/courses": {
            "get": {
                "tags": ["Reports"],
                "summary": "Course report",
                "description": "Per-course enrolment and revenue figures with overall and filtered totals",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/StatusFilter"},
                    {"$ref": "#/parameters/ProviderFilter"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseReportEnvelope"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/courses/providers": {
            "get": {
                "tags": ["Reports"],
                "summary": "Provider filter options",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/courses/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export course report",
                "description": "Downloads the filtered rows as quoted CSV (.csv) or tab separated values (.xls). X-Export-Notice-Title and X-Export-Notice-Description carry the completion notice.",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/vnd.ms-excel"],
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "excel"]},
                    {"$ref": "#/parameters/StatusFilter"},
                    {"$ref": "#/parameters/ProviderFilter"}
                ],
                "responses": {
                    "200": {"description": "File download", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format or invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports/courses/refresh": {
            "post": {
                "tags": ["Reports"],
                "summary": "Drop cached course data",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Cache cleared"},
                    "503": {"description": "Cache unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "tags": ["Metrics"],
                "summary": "Service metrics summary",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "parameters": {
        "StatusFilter": {"name": "status", "in": "query", "type": "string", "enum": ["all", "active", "inactive"], "default": "all"},
        "ProviderFilter": {"name": "provider", "in": "query", "type": "string", "default": "all"}
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        },
        "CourseReportRow": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "provider": {"type": "string"},
                "monthlyFee": {"type": "string"},
                "monthlyFeeDisplay": {"type": "string"},
                "isActive": {"type": "boolean"},
                "status": {"type": "string", "enum": ["Active", "Inactive"]},
                "totalEnrolments": {"type": "integer"},
                "activeEnrolments": {"type": "integer"},
                "totalRevenue": {"type": "string"},
                "totalRevenueDisplay": {"type": "string"},
                "startDate": {"type": "string"},
                "startDateDisplay": {"type": "string"},
                "endDate": {"type": "string"},
                "endDateDisplay": {"type": "string"}
            }
        },
        "CourseReport": {
            "type": "object",
            "properties": {
                "filter": {
                    "type": "object",
                    "properties": {
                        "status": {"type": "string"},
                        "provider": {"type": "string"}
                    }
                },
                "rows": {"type": "array", "items": {"$ref": "#/definitions/CourseReportRow"}},
                "overall": {
                    "type": "object",
                    "properties": {
                        "totalCourses": {"type": "integer"},
                        "activeCourses": {"type": "integer"},
                        "totalEnrolments": {"type": "integer"},
                        "activeEnrolments": {"type": "integer"},
                        "totalRevenue": {"type": "string"},
                        "totalRevenueDisplay": {"type": "string"}
                    }
                },
                "filtered": {
                    "type": "object",
                    "properties": {
                        "rowCount": {"type": "integer"},
                        "activeEnrolments": {"type": "integer"},
                        "totalRevenue": {"type": "string"},
                        "totalRevenueDisplay": {"type": "string"}
                    }
                },
                "providers": {"type": "array", "items": {"type": "string"}},
                "emptyMessage": {"type": "string"}
            }
        },
        "CourseReportEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/CourseReport"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
