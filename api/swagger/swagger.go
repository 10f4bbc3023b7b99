package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Penalty Board API",
        "description": "Penalty point tracking and SMS notification service",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Admin session management"},
        {"name": "Students", "description": "Student roster"},
        {"name": "Rules", "description": "Penalty rules"},
        {"name": "Thresholds", "description": "Notification thresholds"},
        {"name": "Penalties", "description": "Penalty records"},
        {"name": "Notes", "description": "Per-student memos"},
        {"name": "Summary", "description": "Cumulative point summaries"},
        {"name": "SMS", "description": "SMS dispatch and preview"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Issue an admin session token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current session token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students ordered by name",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create or update a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/students/{id}": {
            "put": {
                "tags": ["Students"],
                "summary": "Update a student by id",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete a student and their penalties and notes",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/students/import": {
            "post": {
                "tags": ["Students"],
                "summary": "Bulk import students from a spreadsheet",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Unreadable file", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/rules": {
            "get": {
                "tags": ["Rules"],
                "summary": "List penalty rules",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Rules"],
                "summary": "Create or update a penalty rule",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertRuleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/rules/{id}": {
            "delete": {
                "tags": ["Rules"],
                "summary": "Delete a penalty rule",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/thresholds": {
            "get": {
                "tags": ["Thresholds"],
                "summary": "List notification thresholds",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Thresholds"],
                "summary": "Create or update a threshold",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertThresholdRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/thresholds/{id}": {
            "delete": {
                "tags": ["Thresholds"],
                "summary": "Delete a threshold",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/penalties": {
            "get": {
                "tags": ["Penalties"],
                "summary": "List penalties for a student within a date range",
                "parameters": [
                    {"name": "studentId", "in": "query", "required": true, "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Penalties"],
                "summary": "Record a penalty",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePenaltyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Unknown rule", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/penalties/{id}": {
            "delete": {
                "tags": ["Penalties"],
                "summary": "Delete a penalty record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/penalties/reset": {
            "post": {
                "tags": ["Penalties"],
                "summary": "Delete a student's penalties within a date range",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Invalid range", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/notes": {
            "get": {
                "tags": ["Notes"],
                "summary": "List notes for a student",
                "parameters": [
                    {"name": "studentId", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Notes"],
                "summary": "Create or update a note",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertNoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/notes/{id}": {
            "delete": {
                "tags": ["Notes"],
                "summary": "Delete a note",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/summary/cumulative": {
            "get": {
                "tags": ["Summary"],
                "summary": "Cumulative points per student within a date range",
                "parameters": [
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/summary/export": {
            "get": {
                "tags": ["Summary"],
                "summary": "Export the cumulative summary as csv, xlsx or pdf",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "xlsx", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/sms/preview": {
            "get": {
                "tags": ["SMS"],
                "summary": "Preview the threshold message for a student",
                "parameters": [
                    {"name": "studentId", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Unknown student", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/sms/send": {
            "post": {
                "tags": ["SMS"],
                "summary": "Send a message to a student and/or their guardian",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SendRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "No recipients or transport unavailable", "schema": {"$ref": "#/definitions/Envelope"}},
                    "502": {"description": "Dispatch failed", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"}
            }
        },
        "UpsertStudentRequest": {
            "type": "object",
            "required": ["id", "name"],
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "grade": {"type": "string"},
                "student_phone": {"type": "string"},
                "parent_phone": {"type": "string"}
            }
        },
        "UpsertRuleRequest": {
            "type": "object",
            "required": ["title", "points"],
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "points": {"type": "integer"},
                "is_active": {"type": "integer"},
                "sort_order": {"type": "integer"}
            }
        },
        "UpsertThresholdRequest": {
            "type": "object",
            "required": ["label"],
            "properties": {
                "id": {"type": "string"},
                "min_points": {"type": "integer"},
                "label": {"type": "string"},
                "message_template": {"type": "string"},
                "sort_order": {"type": "integer"}
            }
        },
        "CreatePenaltyRequest": {
            "type": "object",
            "required": ["student_id", "rule_id", "occurred_on"],
            "properties": {
                "student_id": {"type": "string"},
                "rule_id": {"type": "string"},
                "occurred_on": {"type": "string", "format": "date"},
                "memo": {"type": "string"}
            }
        },
        "ResetRequest": {
            "type": "object",
            "required": ["student_id", "from", "to"],
            "properties": {
                "student_id": {"type": "string"},
                "from": {"type": "string", "format": "date"},
                "to": {"type": "string", "format": "date"}
            }
        },
        "UpsertNoteRequest": {
            "type": "object",
            "required": ["student_id", "noted_on", "content"],
            "properties": {
                "id": {"type": "string"},
                "student_id": {"type": "string"},
                "noted_on": {"type": "string", "format": "date"},
                "content": {"type": "string"}
            }
        },
        "SendRequest": {
            "type": "object",
            "required": ["student_id", "target", "message"],
            "properties": {
                "student_id": {"type": "string"},
                "target": {"type": "string", "enum": ["student", "parent", "both"]},
                "message": {"type": "string"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "data": {"type": "object"},
                "message": {"type": "string"},
                "detail": {"type": "object"}
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
