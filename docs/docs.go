// Package docs holds the Swagger document served at /swagger/*. Keep it in step with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/accounts/login": {
            "post": {
                "description": "exchange credentials for a session token; also sets the session cookie.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Log in.",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/accounts/logout": {
            "post": {
                "description": "clear the session cookie.",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Log out.",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/accounts/register": {
            "post": {
                "description": "create an account with a username, email and password.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Register a user.",
                "parameters": [
                    {
                        "description": "Account to create",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "get the status of server.",
                "consumes": ["*/*"],
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "ping the configured database.",
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Check the record store.",
                "responses": {
                    "200": {"description": "ready"},
                    "503": {"description": "store not ready"}
                }
            }
        },
        "/todo/": {
            "get": {
                "description": "HTML page of the caller's items; anonymous visitors see an empty list.",
                "produces": ["text/html"],
                "tags": ["pages"],
                "summary": "Render the caller's list.",
                "responses": {
                    "200": {"description": "HTML page"}
                }
            }
        },
        "/todo/api/": {
            "get": {
                "security": [{"Session": []}],
                "description": "fetch every to-do item owned by the authenticated user, latest due date first.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List the caller's items.",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Item"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"Session": []}],
                "description": "create a to-do item owned by the caller. Any \"user\" field in the body is ignored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Create an item.",
                "parameters": [
                    {
                        "description": "Item fields",
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.ItemPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Item"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/todo/api/{id}": {
            "put": {
                "security": [{"Session": []}],
                "description": "change only the fields present in the body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Update an item.",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "item",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.ItemPayload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Item"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"Session": []}],
                "description": "delete one of the caller's items.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Delete an item.",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string", "example": "item not found"},
                "status": {"type": "string", "example": "error"}
            }
        },
        "handlers.ItemPayload": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2024-01-01T00:00:00Z"},
                "description": {"type": "string", "example": "two litres"},
                "done": {"type": "boolean", "example": false},
                "title": {"type": "string", "example": "Buy milk"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.LoginResponse": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string"},
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/models.User"}
            }
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "models.Item": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "done": {"type": "boolean"},
                "id": {"type": "string"},
                "title": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "updated_at": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Session": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "To-do API",
	Description:      "Personal to-do list: items with a title, description, due date and done flag, scoped to the logged-in user.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
