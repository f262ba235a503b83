// Package docs registers the swagger description served at /swagger.
// Kept by hand; regenerate with `swag init -g cmd/server/main.go` after
// changing handler annotations.
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
        "/api/v1/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/session/screen": {
            "get": {
                "tags": ["session"],
                "summary": "Resolve the caller's screen",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/subjects": {
            "get": {
                "tags": ["content"],
                "summary": "List subjects",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/admin/subjects": {
            "post": {
                "tags": ["admin"],
                "summary": "Create a subject",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/v1/admin/users/pending": {
            "get": {
                "tags": ["approval"],
                "summary": "List users awaiting approval",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Lara Learning Platform API",
	Description:      "API for the Lara education platform: content hierarchy, user approval and quiz grading",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
