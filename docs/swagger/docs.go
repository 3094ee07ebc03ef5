// Package docs holds the generated OpenAPI document served by the Swagger UI.
// Regenerate with: swag init -g internal/api/main_annotations.go -o docs/swagger
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "first-steps API",
    "description": "Starter web API backed by MongoDB and GridFS.",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/healthz": {
      "get": {
        "summary": "Health check",
        "description": "Reports overall service health and per-dependency detail.",
        "tags": ["Health"],
        "produces": ["application/json"],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/api.HealthResponse"}
          },
          "503": {
            "description": "Service Unavailable",
            "schema": {"$ref": "#/definitions/api.HealthResponse"}
          }
        }
      }
    },
    "/livez": {
      "get": {
        "summary": "Liveness check",
        "tags": ["Health"],
        "produces": ["application/json"],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"type": "object", "additionalProperties": {"type": "string"}}
          }
        }
      }
    },
    "/users": {
      "get": {
        "summary": "List users",
        "description": "Returns users ordered by sequence number with cursor pagination.",
        "tags": ["Users"],
        "produces": ["application/json"],
        "parameters": [
          {"name": "cursor", "in": "query", "type": "string", "description": "Opaque pagination cursor"},
          {"name": "limit", "in": "query", "type": "integer", "description": "Page size (default 50, max 200)"}
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/api.UserListResponse"}
          },
          "500": {
            "description": "Internal Server Error",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          }
        }
      },
      "post": {
        "summary": "Create a user",
        "description": "Registers a new user with a server-assigned ID and sequence number.",
        "tags": ["Users"],
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [
          {
            "name": "body",
            "in": "body",
            "required": true,
            "description": "User to create",
            "schema": {"$ref": "#/definitions/api.CreateUserRequest"}
          }
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {"$ref": "#/definitions/api.UserResponse"}
          },
          "400": {
            "description": "Bad Request",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          },
          "422": {
            "description": "Unprocessable Entity",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          },
          "500": {
            "description": "Internal Server Error",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          }
        }
      }
    },
    "/users/{id}": {
      "get": {
        "summary": "Get a user",
        "description": "Returns the user matching the short hex ID.",
        "tags": ["Users"],
        "produces": ["application/json"],
        "parameters": [
          {"name": "id", "in": "path", "type": "string", "required": true, "description": "User ID"}
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/api.UserResponse"}
          },
          "404": {
            "description": "Not Found",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          },
          "500": {
            "description": "Internal Server Error",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          }
        }
      }
    },
    "/files": {
      "get": {
        "summary": "List files",
        "description": "Returns files in the GridFS bucket ordered by upload time, newest first.",
        "tags": ["Files"],
        "produces": ["application/json"],
        "parameters": [
          {"name": "limit", "in": "query", "type": "integer", "description": "Page size (default 50, max 200)"}
        ],
        "responses": {
          "200": {
            "description": "OK",
            "schema": {"$ref": "#/definitions/api.FileListResponse"}
          },
          "500": {
            "description": "Internal Server Error",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          }
        }
      },
      "post": {
        "summary": "Upload a file",
        "description": "Stores the uploaded multipart file in the GridFS bucket.",
        "tags": ["Files"],
        "consumes": ["multipart/form-data"],
        "produces": ["application/json"],
        "parameters": [
          {"name": "file", "in": "formData", "type": "file", "required": true, "description": "File to upload"}
        ],
        "responses": {
          "201": {
            "description": "Created",
            "schema": {"$ref": "#/definitions/api.FileResponse"}
          },
          "400": {
            "description": "Bad Request",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          },
          "500": {
            "description": "Internal Server Error",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          }
        }
      }
    },
    "/files/{id}": {
      "get": {
        "summary": "Download a file",
        "description": "Streams the file matching the ID, with its stored content type.",
        "tags": ["Files"],
        "produces": ["application/octet-stream"],
        "parameters": [
          {"name": "id", "in": "path", "type": "string", "required": true, "description": "File ID"}
        ],
        "responses": {
          "200": {"description": "OK", "schema": {"type": "file"}},
          "404": {
            "description": "Not Found",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          },
          "500": {
            "description": "Internal Server Error",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          }
        }
      },
      "delete": {
        "summary": "Delete a file",
        "description": "Removes the file matching the ID from the GridFS bucket.",
        "tags": ["Files"],
        "parameters": [
          {"name": "id", "in": "path", "type": "string", "required": true, "description": "File ID"}
        ],
        "responses": {
          "204": {"description": "No Content"},
          "404": {
            "description": "Not Found",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          },
          "500": {
            "description": "Internal Server Error",
            "schema": {"$ref": "#/definitions/api.ErrorResponse"}
          }
        }
      }
    }
  },
  "definitions": {
    "api.CreateUserRequest": {
      "type": "object",
      "required": ["full_name", "email"],
      "properties": {
        "full_name": {"type": "string", "maxLength": 200, "minLength": 1},
        "email": {"type": "string"}
      }
    },
    "api.UserResponse": {
      "type": "object",
      "properties": {
        "id": {"type": "string"},
        "user_index": {"type": "integer"},
        "full_name": {"type": "string"},
        "email": {"type": "string"},
        "created_at": {"type": "string"}
      }
    },
    "api.UserListResponse": {
      "type": "object",
      "properties": {
        "users": {"type": "array", "items": {"$ref": "#/definitions/api.UserResponse"}},
        "total": {"type": "integer"},
        "next_cursor": {"type": "string"}
      }
    },
    "api.FileResponse": {
      "type": "object",
      "properties": {
        "id": {"type": "string"},
        "filename": {"type": "string"},
        "length": {"type": "integer"},
        "content_type": {"type": "string"},
        "uploaded_at": {"type": "string"}
      }
    },
    "api.FileListResponse": {
      "type": "object",
      "properties": {
        "files": {"type": "array", "items": {"$ref": "#/definitions/api.FileResponse"}}
      }
    },
    "api.ComponentHealth": {
      "type": "object",
      "properties": {
        "status": {"type": "string"},
        "message": {"type": "string"},
        "latency_ms": {"type": "number"}
      }
    },
    "api.HealthResponse": {
      "type": "object",
      "properties": {
        "status": {"type": "string"},
        "version": {"type": "string"},
        "components": {
          "type": "object",
          "additionalProperties": {"$ref": "#/definitions/api.ComponentHealth"}
        }
      }
    },
    "api.ErrorResponse": {
      "type": "object",
      "properties": {
        "error": {"type": "string"},
        "code": {"type": "string"}
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
