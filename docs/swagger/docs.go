// Package swagger registers the OpenAPI document served under /swagger.
// Keep it in sync with the annotations of feature/diff/handler.go.
package swagger

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
        "/diff": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Compares two collections of the source matched on an identifier field.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diff"],
                "summary": "Compare Files",
                "parameters": [
                    {
                        "description": "Files and identifier",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/diff.CompareRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/diff.Report"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}},
                    "422": {"description": "Invalid input", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}}
                }
            }
        },
        "/diff/files": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Lists the JSON files, bucket objects or tables offered by the configured source, in natural order.",
                "produces": ["application/json"],
                "tags": ["diff"],
                "summary": "List Files",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/diff.FilesResponse"}},
                    "404": {"description": "No input files", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}}
                }
            }
        },
        "/diff/inline": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Compares two arrays of objects given in the request body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diff"],
                "summary": "Compare Inline",
                "parameters": [
                    {
                        "description": "Arrays and identifier",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/diff.InlineRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/diff.Report"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}},
                    "422": {"description": "Invalid input", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}}
                }
            }
        },
        "/diff/keys": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Loads one collection and returns the keys shared by its records.",
                "produces": ["application/json"],
                "tags": ["diff"],
                "summary": "Collection Keys",
                "parameters": [
                    {"type": "string", "description": "Collection name", "name": "file", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/diff.KeysResponse"}},
                    "400": {"description": "Missing file parameter", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}},
                    "422": {"description": "Malformed collection", "schema": {"$ref": "#/definitions/diff.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "diff.CompareRequest": {
            "type": "object",
            "properties": {
                "detail": {"type": "boolean"},
                "file_a": {"type": "string"},
                "file_b": {"type": "string"},
                "identifier": {"type": "string"}
            }
        },
        "diff.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "diff.FilesResponse": {
            "type": "object",
            "properties": {
                "files": {"type": "array", "items": {"type": "string"}},
                "source": {"type": "string"}
            }
        },
        "diff.InlineRequest": {
            "type": "object",
            "properties": {
                "a": {"type": "array", "items": {"type": "object"}},
                "b": {"type": "array", "items": {"type": "object"}},
                "detail": {"type": "boolean"},
                "identifier": {"type": "string"}
            }
        },
        "diff.KeysResponse": {
            "type": "object",
            "properties": {
                "file": {"type": "string"},
                "keys": {"type": "array", "items": {"type": "string"}}
            }
        },
        "diff.Report": {
            "type": "object",
            "properties": {
                "common": {"type": "integer"},
                "discrepancies": {"type": "array", "items": {"$ref": "#/definitions/reconcile.Discrepancy"}},
                "file_a": {"type": "string"},
                "file_b": {"type": "string"},
                "identifier": {"type": "string"},
                "only_in_a": {"type": "array", "items": {}},
                "only_in_b": {"type": "array", "items": {}}
            }
        },
        "reconcile.Change": {
            "type": "object",
            "properties": {
                "new": {},
                "old": {},
                "op": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "reconcile.Discrepancy": {
            "type": "object",
            "properties": {
                "changes": {"type": "array", "items": {"$ref": "#/definitions/reconcile.Change"}},
                "differences": {"type": "array", "items": {"type": "string"}},
                "id": {}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "json-diff API",
	Description:      "Compares JSON tables matched on an identifier field.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
