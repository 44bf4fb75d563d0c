// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g internal/platform/httpserver/server.go -o internal/platform/httpserver/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/sessions/resolve": {
            "post": {
                "summary": "Resolve the acting submitter identity",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/sessions/{session_id}/claim": {
            "post": {
                "summary": "Claim an anonymous session for an authenticated user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/directory/creators": {
            "post": {
                "summary": "Submit a creator entry",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/v1/directory/proofs": {
            "post": {
                "summary": "Submit a proof entry",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/v1/directory/entries": {
            "get": {
                "summary": "List directory entries",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/directory/entries/{entry_id}": {
            "get": {
                "summary": "Fetch a directory entry",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "summary": "Update a pending entry payload",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "summary": "Delete an entry",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/directory/entries/{entry_id}/transition": {
            "post": {
                "summary": "Apply a review status transition",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/directory/entries/{entry_id}/history": {
            "get": {
                "summary": "Read the entry status history",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/directory/ranking": {
            "get": {
                "summary": "List the curated ranking",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "summary": "Replace the curated ranking order",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vitrine Creator Directory API",
	Description:      "Submission, review and ranking API for the creator directory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
