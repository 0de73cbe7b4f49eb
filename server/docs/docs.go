// Package docs holds the OpenAPI document served at /api/docs. The
// document follows the swag annotations on the server/api handlers and
// is registered with swag so that swag.ReadDoc returns it.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{.Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/auth/register": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "Register",
				"description": "Create an account. A verification code is emailed and no tokens are issued until the address is verified.",
				"parameters": [
					{
						"name": "registration",
						"in": "body",
						"required": true,
						"description": "New account",
						"schema": {
							"$ref": "#/definitions/schema.RegisterForm"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.AuthResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					},
					"409": {
						"description": "Email already registered",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/resend-verification": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "Resend verification code",
				"parameters": [
					{
						"name": "email",
						"in": "body",
						"required": true,
						"description": "Email address",
						"schema": {
							"$ref": "#/definitions/schema.ResendVerificationForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.MessageResponse"
						}
					}
				}
			}
		},
		"/auth/forgot-password": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "Forgot password",
				"description": "Email a password reset token. The response does not reveal whether the address is registered.",
				"parameters": [
					{
						"name": "email",
						"in": "body",
						"required": true,
						"description": "Email address",
						"schema": {
							"$ref": "#/definitions/schema.ForgotPasswordForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.MessageResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/reset-password": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "Reset password",
				"parameters": [
					{
						"name": "reset",
						"in": "body",
						"required": true,
						"description": "Reset token and new password",
						"schema": {
							"$ref": "#/definitions/schema.ResetPasswordForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.MessageResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "User authentication",
				"description": "Authenticate a user and return access and refresh tokens. The tokens are also set as cookies.",
				"parameters": [
					{
						"name": "credentials",
						"in": "body",
						"required": true,
						"description": "User credentials",
						"schema": {
							"$ref": "#/definitions/schema.LoginForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Authentication successful",
						"schema": {
							"$ref": "#/definitions/schema.AuthResponse"
						}
					},
					"401": {
						"description": "Authentication failed",
						"schema": {
							"$ref": "#/definitions/schema.API401"
						}
					},
					"403": {
						"description": "Email not verified",
						"schema": {
							"$ref": "#/definitions/schema.AuthResponse"
						}
					},
					"429": {
						"description": "Too many requests",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/verify-email": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "Verify email",
				"description": "Verify an email address with the emailed code and sign the user in",
				"parameters": [
					{
						"name": "verification",
						"in": "body",
						"required": true,
						"description": "Email and code",
						"schema": {
							"$ref": "#/definitions/schema.VerifyEmailForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.AuthResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/refresh": {
			"post": {
				"tags": [
					"Authentication"
				],
				"summary": "Refresh tokens",
				"description": "Exchange a refresh token for a new access and refresh token pair. The token may be sent in the body or the refresh cookie. Each refresh token can be used once.",
				"parameters": [
					{
						"name": "refresh",
						"in": "body",
						"required": false,
						"description": "Refresh token",
						"schema": {
							"$ref": "#/definitions/schema.RefreshForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.RefreshResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.API401"
						}
					}
				}
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"Account"
				],
				"summary": "Current user",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.UserResponse"
						}
					},
					"401": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.API401"
						}
					}
				}
			}
		},
		"/auth/profile": {
			"put": {
				"tags": [
					"Account"
				],
				"summary": "Update profile",
				"description": "Change any of first name, last name and email",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "profile",
						"in": "body",
						"required": true,
						"description": "Profile fields",
						"schema": {
							"$ref": "#/definitions/schema.UpdateProfileForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.UserResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/change-password": {
			"put": {
				"tags": [
					"Account"
				],
				"summary": "Change password",
				"description": "Change the password. Every refresh token of the user is revoked.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "passwords",
						"in": "body",
						"required": true,
						"description": "Current and new password",
						"schema": {
							"$ref": "#/definitions/schema.ChangePasswordForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.MessageResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/websites": {
			"get": {
				"tags": [
					"Websites"
				],
				"summary": "List websites",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer"
					},
					{
						"name": "category",
						"in": "query",
						"required": false,
						"description": "Category filter",
						"type": "string"
					},
					{
						"name": "isActive",
						"in": "query",
						"required": false,
						"description": "Active filter",
						"type": "boolean"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.WebsitesResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"Websites"
				],
				"summary": "Add a website",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "website",
						"in": "body",
						"required": true,
						"description": "Website",
						"schema": {
							"$ref": "#/definitions/schema.WebsiteForm"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.WebsiteResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/websites/{id}": {
			"get": {
				"tags": [
					"Websites"
				],
				"summary": "Get a website",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Website ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.WebsiteResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.API404"
						}
					}
				}
			},
			"put": {
				"tags": [
					"Websites"
				],
				"summary": "Update a website",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Website ID",
						"type": "string"
					},
					{
						"name": "website",
						"in": "body",
						"required": true,
						"description": "Website",
						"schema": {
							"$ref": "#/definitions/schema.WebsiteForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.WebsiteResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.API404"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"Websites"
				],
				"summary": "Delete a website",
				"description": "Delete a website with its crawls and broken links",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Website ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.MessageResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.API404"
						}
					}
				}
			}
		},
		"/websites/{id}/crawl": {
			"post": {
				"tags": [
					"Websites"
				],
				"summary": "Trigger a crawl",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Website ID",
						"type": "string"
					},
					{
						"name": "crawlDepth",
						"in": "query",
						"required": false,
						"description": "Crawl depth (1-10, default 3)",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.CrawlTriggerResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/websites/{id}/broken-links": {
			"get": {
				"tags": [
					"Websites"
				],
				"summary": "Broken links of a website",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Website ID",
						"type": "string"
					},
					{
						"name": "errorType",
						"in": "query",
						"required": false,
						"description": "Error type filter",
						"type": "string"
					},
					{
						"name": "isFixed",
						"in": "query",
						"required": false,
						"description": "Fixed filter",
						"type": "boolean"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.WebsiteBrokenLinksResponse"
						}
					}
				}
			}
		},
		"/crawls": {
			"get": {
				"tags": [
					"Crawls"
				],
				"summary": "List crawls",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer"
					},
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "pending, in_progress, completed or failed",
						"type": "string"
					},
					{
						"name": "websiteId",
						"in": "query",
						"required": false,
						"description": "Website filter",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.CrawlsResponse"
						}
					}
				}
			}
		},
		"/crawls/stats/summary": {
			"get": {
				"tags": [
					"Crawls"
				],
				"summary": "Crawl statistics",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.CrawlStatsResponse"
						}
					}
				}
			}
		},
		"/crawls/stats/trends": {
			"get": {
				"tags": [
					"Crawls"
				],
				"summary": "Daily crawl trends",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "days",
						"in": "query",
						"required": false,
						"description": "Days (1-365, default 7)",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.CrawlTrendsResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/crawls/{id}": {
			"get": {
				"tags": [
					"Crawls"
				],
				"summary": "Get a crawl",
				"description": "Get a crawl result including its broken link records",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Crawl ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.CrawlResultResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.API404"
						}
					}
				}
			}
		},
		"/crawls/{id}/broken-links": {
			"get": {
				"tags": [
					"Crawls"
				],
				"summary": "Broken links found by a crawl",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Crawl ID",
						"type": "string"
					},
					{
						"name": "errorType",
						"in": "query",
						"required": false,
						"description": "Error type filter",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.CrawlBrokenLinksResponse"
						}
					}
				}
			}
		},
		"/crawls/{id}/retry": {
			"post": {
				"tags": [
					"Crawls"
				],
				"summary": "Retry a failed crawl",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Crawl ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.CrawlTriggerResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/dashboard/overview": {
			"get": {
				"tags": [
					"Dashboard"
				],
				"summary": "Dashboard overview",
				"description": "Totals, the websites with the lowest health and recent crawl activity",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.DashboardData"
						}
					}
				}
			}
		},
		"/dashboard/health-scores": {
			"get": {
				"tags": [
					"Dashboard"
				],
				"summary": "Health scores",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.HealthScoresResponse"
						}
					}
				}
			}
		},
		"/dashboard/broken-links-summary": {
			"get": {
				"tags": [
					"Dashboard"
				],
				"summary": "Broken links summary",
				"description": "Broken links grouped by error type with the most recent ones",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "errorType",
						"in": "query",
						"required": false,
						"description": "Error type filter",
						"type": "string"
					},
					{
						"name": "isFixed",
						"in": "query",
						"required": false,
						"description": "Fixed filter",
						"type": "boolean"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.BrokenLinksResponse"
						}
					}
				}
			}
		},
		"/dashboard/crawl-performance": {
			"get": {
				"tags": [
					"Dashboard"
				],
				"summary": "Crawl performance",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "days",
						"in": "query",
						"required": false,
						"description": "Days (1-365, default 7)",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.CrawlPerformanceResponse"
						}
					}
				}
			}
		},
		"/dashboard/website-categories": {
			"get": {
				"tags": [
					"Dashboard"
				],
				"summary": "Website categories",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.WebsiteCategoriesResponse"
						}
					}
				}
			}
		},
		"/dashboard/alerts": {
			"get": {
				"tags": [
					"Dashboard"
				],
				"summary": "Alerts",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.AlertsResponse"
						}
					}
				}
			}
		},
		"/admin/stats": {
			"get": {
				"tags": [
					"Administration"
				],
				"summary": "System statistics",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.AdminStatsResponse"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/schema.ErrorResponse"
						}
					}
				}
			}
		},
		"/admin/users": {
			"get": {
				"tags": [
					"Administration"
				],
				"summary": "List users",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"description": "Page number",
						"type": "integer"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Items per page",
						"type": "integer"
					},
					{
						"name": "role",
						"in": "query",
						"required": false,
						"description": "user or admin",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.UsersResponse"
						}
					}
				}
			}
		},
		"/admin/users/{id}/status": {
			"put": {
				"tags": [
					"Administration"
				],
				"summary": "Activate or suspend a user",
				"description": "Suspending a user revokes their sessions. Administrators cannot change their own status.",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "User ID",
						"type": "string"
					},
					{
						"name": "status",
						"in": "body",
						"required": true,
						"description": "active or suspended",
						"schema": {
							"$ref": "#/definitions/schema.UserStatusForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.MessageResponse"
						}
					}
				}
			}
		},
		"/admin/users/{id}/role": {
			"put": {
				"tags": [
					"Administration"
				],
				"summary": "Change a user's role",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "User ID",
						"type": "string"
					},
					{
						"name": "role",
						"in": "body",
						"required": true,
						"description": "user or admin",
						"schema": {
							"$ref": "#/definitions/schema.UserRoleForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.MessageResponse"
						}
					}
				}
			}
		},
		"/admin/websites/moderation": {
			"get": {
				"tags": [
					"Administration"
				],
				"summary": "Websites for moderation",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "all, flagged, active or inactive",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.WebsitesModerationResponse"
						}
					}
				}
			}
		},
		"/admin/websites/{id}/moderate": {
			"put": {
				"tags": [
					"Administration"
				],
				"summary": "Block or unblock a website",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Website ID",
						"type": "string"
					},
					{
						"name": "action",
						"in": "body",
						"required": true,
						"description": "block or unblock",
						"schema": {
							"$ref": "#/definitions/schema.ModerateForm"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.MessageResponse"
						}
					}
				}
			}
		},
		"/admin/queue": {
			"get": {
				"tags": [
					"Administration"
				],
				"summary": "Crawl queue",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.QueueResponse"
						}
					}
				}
			}
		},
		"/admin/analytics/websites": {
			"get": {
				"tags": [
					"Administration"
				],
				"summary": "Website analytics",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "period",
						"in": "query",
						"required": false,
						"description": "Period such as 7d or 30d",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.WebsiteAnalytics"
						}
					}
				}
			}
		},
		"/admin/analytics/users": {
			"get": {
				"tags": [
					"Administration"
				],
				"summary": "User analytics",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "period",
						"in": "query",
						"required": false,
						"description": "Period such as 7d or 30d",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/schema.UserAnalytics"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"schema.API401": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				}
			}
		},
		"schema.API404": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				}
			}
		},
		"schema.AdminStats": {
			"type": "object",
			"properties": {
				"totalUsers": {
					"type": "integer"
				},
				"totalWebsites": {
					"type": "integer"
				},
				"totalCrawls": {
					"type": "integer"
				},
				"totalBrokenLinks": {
					"type": "integer"
				},
				"activeWebsites": {
					"type": "integer"
				},
				"recentUsers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/schema.UserSummary"
					}
				},
				"queueStats": {
					"$ref": "#/definitions/schema.QueueStats"
				}
			}
		},
		"schema.AdminStatsResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"$ref": "#/definitions/schema.AdminStats"
				}
			}
		},
		"schema.AlertsResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.AuthData": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/schema.User"
				},
				"tokens": {
					"$ref": "#/definitions/schema.AuthTokens"
				},
				"requiresVerification": {
					"type": "boolean"
				}
			}
		},
		"schema.AuthResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"$ref": "#/definitions/schema.AuthData"
				}
			}
		},
		"schema.RefreshResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"accessToken": {
					"type": "string"
				},
				"refreshToken": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"$ref": "#/definitions/schema.AuthData"
				}
			}
		},
		"schema.AuthTokens": {
			"type": "object",
			"properties": {
				"accessToken": {
					"type": "string"
				},
				"refreshToken": {
					"type": "string"
				}
			}
		},
		"schema.BrokenLinksResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.ChangePasswordForm": {
			"type": "object",
			"properties": {
				"currentPassword": {
					"type": "string"
				},
				"newPassword": {
					"type": "string"
				}
			}
		},
		"schema.CrawlBrokenLinksResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.CrawlPerformanceResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.CrawlResultResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.CrawlStats": {
			"type": "object",
			"properties": {
				"totalCrawls": {
					"type": "integer"
				},
				"byStatus": {
					"type": "object"
				},
				"totalLinksChecked": {
					"type": "integer"
				},
				"totalBrokenLinks": {
					"type": "integer"
				},
				"averageResponseTime": {
					"type": "number"
				}
			}
		},
		"schema.CrawlStatsResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"$ref": "#/definitions/schema.CrawlStats"
				}
			}
		},
		"schema.CrawlTrendsResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.CrawlTriggerResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.CrawlsResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.DashboardData": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.ErrorResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				},
				"errors": {
					"type": "object"
				}
			}
		},
		"schema.ForgotPasswordForm": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"schema.HealthScoresResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.LoginForm": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"schema.MessageResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"schema.ModerateForm": {
			"type": "object",
			"properties": {
				"action": {
					"type": "string"
				}
			}
		},
		"schema.QueueCounts": {
			"type": "object",
			"properties": {
				"waiting": {
					"type": "integer"
				},
				"active": {
					"type": "integer"
				},
				"completed": {
					"type": "integer"
				},
				"failed": {
					"type": "integer"
				},
				"delayed": {
					"type": "integer"
				}
			}
		},
		"schema.QueueResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.QueueStats": {
			"type": "object",
			"properties": {
				"crawl": {
					"$ref": "#/definitions/schema.QueueCounts"
				},
				"notification": {
					"$ref": "#/definitions/schema.QueueCounts"
				}
			}
		},
		"schema.RefreshForm": {
			"type": "object",
			"properties": {
				"refreshToken": {
					"type": "string"
				}
			}
		},
		"schema.RegisterForm": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				}
			}
		},
		"schema.ResendVerificationForm": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"schema.ResetPasswordForm": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"newPassword": {
					"type": "string"
				}
			}
		},
		"schema.UpdateProfileForm": {
			"type": "object",
			"properties": {
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			}
		},
		"schema.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"email": {
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
				"emailVerified": {
					"type": "boolean"
				},
				"lastLoginAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"schema.UserAnalytics": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.UserResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.UserRoleForm": {
			"type": "object",
			"properties": {
				"role": {
					"type": "string"
				}
			}
		},
		"schema.UserStatusForm": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"schema.UserSummary": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"email": {
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
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"schema.UsersResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.VerifyEmailForm": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"code": {
					"type": "string"
				}
			}
		},
		"schema.WebsiteAnalytics": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.WebsiteBrokenLinksResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.WebsiteCategoriesResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.WebsiteForm": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"url": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"crawlFrequency": {
					"type": "string"
				},
				"notificationEmail": {
					"type": "string"
				},
				"webhookUrl": {
					"type": "string"
				},
				"isActive": {
					"type": "boolean"
				}
			}
		},
		"schema.WebsiteResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.WebsitesModerationResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		},
		"schema.WebsitesResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {
					"type": "object"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the access token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Deadlink Watchdog API",
	Description:      "Dead link monitoring dashboard API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
