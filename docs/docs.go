// Package docs holds the swagger document of the user directory API.
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
        "/api/users": {
            "get": {
                "description": "Returns one page of six users whose name contains the search term. Invalid or out of range pages resolve to the first page.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case-sensitive name substring",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "1-based page number",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.UserListResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Backend health",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "dto.PageLink": {
            "type": "object",
            "properties": {
                "enabled": {"type": "boolean"},
                "href": {"type": "string", "example": "/?search=ann&page=3"},
                "page": {"description": "Page is the target page number, 1 for the first page", "type": "integer", "example": 3}
            }
        },
        "dto.User": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "ann@example.com"},
                "id": {"type": "integer", "example": 7},
                "name": {"type": "string", "example": "Ann Lee"}
            }
        },
        "dto.UserListResponse": {
            "type": "object",
            "properties": {
                "from": {"type": "integer", "example": 7},
                "next": {"$ref": "#/definitions/dto.PageLink"},
                "page": {"type": "integer", "example": 2},
                "previous": {"$ref": "#/definitions/dto.PageLink"},
                "search": {"type": "string", "example": "ann"},
                "to": {"type": "integer", "example": 12},
                "total_count": {"type": "integer", "example": 13},
                "total_pages": {"type": "integer", "example": 3},
                "users": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.User"}
                }
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
	Title:            "User Directory API",
	Description:      "Searchable, paginated directory of users",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
