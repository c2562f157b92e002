// Package docs holds the Swagger 2.0 description of the community API.
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
        "/users": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "default": 10,
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "minimum": 1,
                        "type": "integer",
                        "default": 1,
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/user.User"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/valid.Error"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Create a user",
                "parameters": [
                    {
                        "description": "New user",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.CreateInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/user.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/valid.Error"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    },
                    "429": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    }
                }
            }
        },
        "/users/email/{email}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get a user by email",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email",
                        "name": "email",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/user.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    }
                }
            }
        },
        "/users/ign/{ign}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get a user by in-game name",
                "parameters": [
                    {
                        "type": "string",
                        "description": "In-game name",
                        "name": "ign",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/user.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    }
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get a user by id",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/user.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Update a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.UpdateInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/user.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/resp.JSONResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/valid.Error"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "users"
                ],
                "summary": "Delete a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    },
                    "404": {
                        "description": "",
                        "schema": {
                            "$ref": "#/definitions/resp.JSONResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "resp.JSONResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "data": {},
                "message": {
                    "type": "string"
                }
            }
        },
        "user.CreateInput": {
            "type": "object",
            "required": [
                "email",
                "ign",
                "name",
                "password",
                "surname"
            ],
            "properties": {
                "avatarUrl": {
                    "type": "string"
                },
                "discord": {
                    "type": "string",
                    "minLength": 3
                },
                "email": {
                    "type": "string"
                },
                "ign": {
                    "type": "string",
                    "minLength": 3
                },
                "name": {
                    "type": "string"
                },
                "password": {
                    "type": "string",
                    "maxLength": 72,
                    "minLength": 6
                },
                "permissions": {
                    "$ref": "#/definitions/user.PermissionsInput"
                },
                "role": {
                    "$ref": "#/definitions/user.Role"
                },
                "surname": {
                    "type": "string"
                }
            }
        },
        "user.Permissions": {
            "type": "object",
            "properties": {
                "canCreatePost": {
                    "type": "boolean"
                },
                "canDeletePost": {
                    "type": "boolean"
                },
                "canEditPost": {
                    "type": "boolean"
                },
                "canFixPost": {
                    "type": "boolean"
                },
                "canDeleteAllPost": {
                    "type": "boolean"
                },
                "canEditAllPost": {
                    "type": "boolean"
                },
                "canCreateComment": {
                    "type": "boolean"
                },
                "canDeleteComment": {
                    "type": "boolean"
                },
                "canEditComment": {
                    "type": "boolean"
                },
                "canDeleteAllComment": {
                    "type": "boolean"
                },
                "canEditAllComment": {
                    "type": "boolean"
                },
                "canDeleteUser": {
                    "type": "boolean"
                },
                "canEditUser": {
                    "type": "boolean"
                }
            }
        },
        "user.PermissionsInput": {
            "type": "object",
            "required": [
                "canCreateComment",
                "canCreatePost",
                "canDeleteAllComment",
                "canDeleteAllPost",
                "canDeleteComment",
                "canDeletePost",
                "canDeleteUser",
                "canEditAllComment",
                "canEditAllPost",
                "canEditComment",
                "canEditPost",
                "canEditUser",
                "canFixPost"
            ],
            "properties": {
                "canCreatePost": {
                    "type": "boolean"
                },
                "canDeletePost": {
                    "type": "boolean"
                },
                "canEditPost": {
                    "type": "boolean"
                },
                "canFixPost": {
                    "type": "boolean"
                },
                "canDeleteAllPost": {
                    "type": "boolean"
                },
                "canEditAllPost": {
                    "type": "boolean"
                },
                "canCreateComment": {
                    "type": "boolean"
                },
                "canDeleteComment": {
                    "type": "boolean"
                },
                "canEditComment": {
                    "type": "boolean"
                },
                "canDeleteAllComment": {
                    "type": "boolean"
                },
                "canEditAllComment": {
                    "type": "boolean"
                },
                "canDeleteUser": {
                    "type": "boolean"
                },
                "canEditUser": {
                    "type": "boolean"
                }
            }
        },
        "user.PermissionsPatch": {
            "type": "object",
            "properties": {
                "canCreatePost": {
                    "type": "boolean"
                },
                "canDeletePost": {
                    "type": "boolean"
                },
                "canEditPost": {
                    "type": "boolean"
                },
                "canFixPost": {
                    "type": "boolean"
                },
                "canDeleteAllPost": {
                    "type": "boolean"
                },
                "canEditAllPost": {
                    "type": "boolean"
                },
                "canCreateComment": {
                    "type": "boolean"
                },
                "canDeleteComment": {
                    "type": "boolean"
                },
                "canEditComment": {
                    "type": "boolean"
                },
                "canDeleteAllComment": {
                    "type": "boolean"
                },
                "canEditAllComment": {
                    "type": "boolean"
                },
                "canDeleteUser": {
                    "type": "boolean"
                },
                "canEditUser": {
                    "type": "boolean"
                }
            }
        },
        "user.Role": {
            "type": "string",
            "enum": [
                "member",
                "vip-hero",
                "vip-legend",
                "vip-supreme",
                "partner",
                "helper",
                "moderator",
                "moderator+",
                "manager",
                "manager+",
                "master"
            ]
        },
        "user.UpdateInput": {
            "type": "object",
            "properties": {
                "avatarUrl": {
                    "type": "string"
                },
                "discord": {
                    "type": "string",
                    "minLength": 3
                },
                "email": {
                    "type": "string"
                },
                "ign": {
                    "type": "string",
                    "minLength": 3
                },
                "name": {
                    "type": "string",
                    "minLength": 1
                },
                "password": {
                    "type": "string",
                    "maxLength": 72,
                    "minLength": 6
                },
                "permissions": {
                    "$ref": "#/definitions/user.PermissionsPatch"
                },
                "role": {
                    "$ref": "#/definitions/user.Role"
                },
                "surname": {
                    "type": "string",
                    "minLength": 1
                }
            }
        },
        "user.User": {
            "type": "object",
            "properties": {
                "avatarUrl": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "discord": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "ign": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "nameWithSurname": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "permissions": {
                    "$ref": "#/definitions/user.Permissions"
                },
                "role": {
                    "$ref": "#/definitions/user.Role"
                },
                "surname": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "valid.Error": {
            "type": "object",
            "properties": {
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/valid.FieldError"
                    }
                }
            }
        },
        "valid.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "param": {
                    "type": "string"
                },
                "rule": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Community API",
	Description:      "User accounts of the community website: registration, lookups by id, IGN or email, updates with permission merging, and removal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
