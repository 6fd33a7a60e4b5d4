// Package docs registers the dashboard's OpenAPI document with swag.
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
		"/api/auth/forgot-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Request a password reset link",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.forgotPasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.actionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Login",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.loginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.actionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Logout",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.actionResponse"
						}
					}
				}
			}
		},
		"/api/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a new user",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.registerRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.actionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/auth/reset-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Reset password",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.resetPasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.actionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/dashboard": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Dashboard configuration",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/theme": {
			"get": {
				"tags": [
					"theme"
				],
				"summary": "Active theme",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.themeResponse"
						}
					}
				}
			},
			"put": {
				"tags": [
					"theme"
				],
				"summary": "Select theme",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.selectThemeRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.themeResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/themes": {
			"get": {
				"tags": [
					"theme"
				],
				"summary": "List themes",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/toasts": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Pending toasts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.Toast"
							}
						}
					}
				}
			}
		},
		"/api/users/complete-profile": {
			"patch": {
				"tags": [
					"users"
				],
				"summary": "Complete profile",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.completeProfileRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.actionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/users/managed": {
			"get": {
				"tags": [
					"managed-users"
				],
				"summary": "List managed users",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"enum": [
							"client",
							"worker"
						],
						"type": "string",
						"description": "Role filter",
						"name": "role",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ManagedUserList"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"managed-users"
				],
				"summary": "Create managed user",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createManagedUserRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.managedUserResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/users/managed/{id}": {
			"delete": {
				"tags": [
					"managed-users"
				],
				"summary": "Delete managed user",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/users/me": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/api/users/profile": {
			"patch": {
				"tags": [
					"users"
				],
				"summary": "Update profile",
				"produces": [
					"application/json"
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.updateProfileRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.actionResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/api.errorResponse"
						}
					}
				}
			}
		},
		"/auth/callback": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "OAuth callback",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Access token",
						"name": "token",
						"in": "query"
					},
					{
						"type": "string",
						"description": "URL-encoded user JSON",
						"name": "user",
						"in": "query"
					}
				],
				"responses": {
					"307": {
						"description": "Temporary Redirect"
					}
				}
			}
		},
		"/theme.css": {
			"get": {
				"tags": [
					"theme"
				],
				"summary": "Theme stylesheet",
				"produces": [
					"text/css"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "string"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"api.errorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"toast": {
					"$ref": "#/definitions/domain.Toast"
				},
				"redirect": {
					"type": "string"
				}
			}
		},
		"domain.ManagedStats": {
			"type": "object",
			"properties": {
				"total": {
					"type": "integer"
				},
				"active": {
					"type": "integer"
				},
				"inactive": {
					"type": "integer"
				}
			}
		},
		"domain.ManagedUserList": {
			"type": "object",
			"properties": {
				"users": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.User"
					}
				},
				"stats": {
					"$ref": "#/definitions/domain.ManagedStats"
				}
			}
		},
		"domain.Toast": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"variant": {
					"type": "string",
					"enum": [
						"default",
						"destructive"
					]
				}
			}
		},
		"domain.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"profileImage": {
					"type": "string"
				},
				"avatarUrl": {
					"type": "string"
				},
				"provider": {
					"type": "string"
				},
				"emailVerified": {
					"type": "boolean"
				},
				"phoneVerified": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"handler.actionResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/domain.User"
				},
				"redirect": {
					"type": "string"
				},
				"toast": {
					"$ref": "#/definitions/domain.Toast"
				}
			}
		},
		"handler.completeProfileRequest": {
			"type": "object",
			"required": [
				"role"
			],
			"properties": {
				"role": {
					"type": "string",
					"enum": [
						"employer",
						"worker",
						"client",
						"partner",
						"inspector"
					]
				}
			}
		},
		"handler.createManagedUserRequest": {
			"type": "object",
			"required": [
				"email",
				"password",
				"role"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"role": {
					"type": "string",
					"enum": [
						"client",
						"worker"
					]
				},
				"name": {
					"type": "string"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				}
			}
		},
		"handler.forgotPasswordRequest": {
			"type": "object",
			"required": [
				"email"
			],
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"handler.loginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"redirect": {
					"type": "string"
				}
			}
		},
		"handler.managedUserResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/domain.User"
				},
				"toast": {
					"$ref": "#/definitions/domain.Toast"
				}
			}
		},
		"handler.registerRequest": {
			"type": "object",
			"required": [
				"email",
				"password",
				"role"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"role": {
					"type": "string",
					"enum": [
						"employer",
						"worker",
						"client",
						"partner",
						"inspector"
					]
				},
				"phone": {
					"type": "string"
				}
			}
		},
		"handler.resetPasswordRequest": {
			"type": "object",
			"required": [
				"token",
				"password",
				"confirmPassword"
			],
			"properties": {
				"token": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 8
				},
				"confirmPassword": {
					"type": "string"
				}
			}
		},
		"handler.selectThemeRequest": {
			"type": "object",
			"required": [
				"id"
			],
			"properties": {
				"id": {
					"type": "string",
					"enum": [
						"default",
						"forest",
						"midnight",
						"navy"
					]
				}
			}
		},
		"handler.themeResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"tokens": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"handler.updateProfileRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"avatarUrl": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"Jobzen Dashboard API",
	Description:	  "Backend-for-frontend of the Jobzen workforce dashboard: sessions, themes and managed users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
