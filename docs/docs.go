// Package docs registers the generated swagger specification.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and JWT token."
        }
    },
    "paths": {
        "/api/auth/register": {"post": {"tags": ["Auth"], "summary": "Register a user and issue a token"}},
        "/api/auth/login": {"post": {"tags": ["Auth"], "summary": "Authenticate and issue a token"}},
        "/api/auth/user/{id}": {
            "get": {"tags": ["Auth"], "summary": "Get a user profile", "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Auth"], "summary": "Update a user profile", "security": [{"BearerAuth": []}]}
        },
        "/api/projects": {
            "get": {"tags": ["Projects"], "summary": "List projects owned by a user", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Projects"], "summary": "Create a project", "security": [{"BearerAuth": []}]}
        },
        "/api/projects/{id}": {
            "get": {"tags": ["Projects"], "summary": "Get a project with its owner", "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Projects"], "summary": "Update a project", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Projects"], "summary": "Delete a project", "security": [{"BearerAuth": []}]}
        },
        "/api/tasks": {
            "get": {"tags": ["Tasks"], "summary": "List tasks by project or assignee", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Tasks"], "summary": "Create a task", "security": [{"BearerAuth": []}]}
        },
        "/api/tasks/positions": {"put": {"tags": ["Tasks"], "summary": "Apply a kanban reorder batch atomically", "security": [{"BearerAuth": []}]}},
        "/api/tasks/{id}": {
            "get": {"tags": ["Tasks"], "summary": "Get a task with its project, assignee, and subtasks", "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Tasks"], "summary": "Update a task", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Tasks"], "summary": "Delete a task", "security": [{"BearerAuth": []}]}
        },
        "/api/time-entries": {
            "get": {"tags": ["Time Entries"], "summary": "List a user's time entries, optionally for one day", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Time Entries"], "summary": "Start a timer", "security": [{"BearerAuth": []}]}
        },
        "/api/time-entries/active": {"get": {"tags": ["Time Entries"], "summary": "Get the running entry for a user", "security": [{"BearerAuth": []}]}},
        "/api/time-entries/{id}/stop": {"put": {"tags": ["Time Entries"], "summary": "Stop a running entry", "security": [{"BearerAuth": []}]}},
        "/api/time-entries/{id}": {"delete": {"tags": ["Time Entries"], "summary": "Delete a time entry", "security": [{"BearerAuth": []}]}},
        "/api/project-members": {
            "get": {"tags": ["Project Members"], "summary": "List a project's members", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["Project Members"], "summary": "Add a member to a project", "security": [{"BearerAuth": []}]}
        },
        "/api/project-members/{projectId}/{userId}": {"delete": {"tags": ["Project Members"], "summary": "Remove a member from a project", "security": [{"BearerAuth": []}]}},
        "/api/stats/{userId}": {"get": {"tags": ["Stats"], "summary": "Get dashboard aggregates for a user", "security": [{"BearerAuth": []}]}},
        "/api/export/powerbi": {"get": {"tags": ["Export"], "summary": "Export a user's history as a denormalized BI document", "security": [{"BearerAuth": []}]}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TaskHub API",
	Description:      "API for managing projects, kanban tasks, time tracking, and team sharing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
