// Package docs holds the OpenAPI document served under /swagger.
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
    "paths": {
        "/metrics/calculate": {
            "post": {"tags": ["metrics"], "summary": "Calculate body-composition metrics", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/profiles": {
            "post": {"tags": ["profiles"], "summary": "Create a profile", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/profiles/{profileId}": {
            "get": {"tags": ["profiles"], "summary": "Get a profile", "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "profileId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/patients/{patientId}/health-profile": {
            "put": {"tags": ["health-profiles"], "summary": "Save a patient's measurements", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "patientId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}},
            "get": {"tags": ["health-profiles"], "summary": "Get a patient's health profile", "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "patientId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/patients/{patientId}/health-profile/summary": {
            "post": {"tags": ["health-profiles"], "summary": "Generate an AI summary of a health profile", "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "patientId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "502": {"description": "Bad Gateway"}, "503": {"description": "Service Unavailable"}}}
        },
        "/appointments": {
            "post": {"tags": ["appointments"], "summary": "Book an appointment", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/appointments/{appointmentId}/status": {
            "patch": {"tags": ["appointments"], "summary": "Change an appointment's status", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "format": "uuid", "name": "appointmentId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/professionals/{professionalId}/appointments": {
            "get": {"tags": ["appointments"], "summary": "List a professional's appointments", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "professionalId", "in": "path", "required": true},
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"enum": ["pending", "confirmed", "cancelled", "completed"], "type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"},
                    {"type": "string", "name": "cursor", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/professionals/{professionalId}/schedule": {
            "get": {"tags": ["schedule"], "summary": "Lay out a professional's day", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "professionalId", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query"},
                    {"type": "integer", "default": 8, "name": "start_hour", "in": "query"},
                    {"type": "integer", "default": 17, "name": "end_hour", "in": "query"},
                    {"type": "number", "default": 1.5, "name": "px_per_minute", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/professionals/{professionalId}/schedule/now": {
            "get": {"tags": ["schedule"], "summary": "Current time marker", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "professionalId", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/professionals/{professionalId}/schedule/now/stream": {
            "get": {"tags": ["schedule"], "summary": "Stream the current time marker", "produces": ["text/event-stream"],
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "professionalId", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "query"}
                ],
                "responses": {"200": {"description": "event stream of markers"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Alcaravan Health API",
	Description:      "Body-composition metrics, patient health profiles and professional agendas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
