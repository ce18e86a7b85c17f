// Package docs holds the API documentation served by the Swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "Package Tracker API",
        "description": "Tracks shipped packages through their lifecycle and records every status change.",
        "version": "1.0.0"
    },
    "paths": {
        "/package": {
            "get": {
                "operationId": "getPackages",
                "summary": "List packages",
                "parameters": [
                    {
                        "name": "searchTerm",
                        "in": "query",
                        "required": false,
                        "description": "Matches tracking numbers and status labels case-insensitively.",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "schema": {
                            "type": "integer",
                            "default": 1
                        }
                    },
                    {
                        "name": "pageSize",
                        "in": "query",
                        "required": false,
                        "schema": {
                            "type": "integer",
                            "default": 10,
                            "maximum": 50
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "One page of packages.",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/PackagesPage"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "operationId": "createPackage",
                "summary": "Create a package",
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/NewPackage"
                            }
                        }
                    }
                },
                "responses": {
                    "201": {
                        "description": "The created package.",
                        "headers": {
                            "Location": {
                                "description": "URL of the created package.",
                                "schema": {
                                    "type": "string"
                                }
                            }
                        },
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/PackageDetails"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Validation failed.",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/ValidationError"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/package/{id}": {
            "get": {
                "operationId": "getPackageById",
                "summary": "Get one package with its status history",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "The package.",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/PackageDetails"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "No package with the given id.",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Error"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/package/{id}/status": {
            "put": {
                "operationId": "updatePackageStatus",
                "summary": "Move a package to a new status",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/NewStatus"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "The updated package.",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/PackageDetails"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "The transition is illegal from the current status.",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Error"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "No package with the given id.",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/Error"
                                }
                            }
                        }
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "PackageStatus": {
                "type": "string",
                "enum": [
                    "Created",
                    "Sent",
                    "Accepted",
                    "Returned",
                    "Canceled"
                ]
            },
            "PackageSummary": {
                "type": "object",
                "required": [
                    "id",
                    "trackingNumber",
                    "senderName",
                    "recipientName",
                    "status",
                    "createdAt"
                ],
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "trackingNumber": {
                        "type": "string"
                    },
                    "senderName": {
                        "type": "string"
                    },
                    "recipientName": {
                        "type": "string"
                    },
                    "status": {
                        "$ref": "#/components/schemas/PackageStatus"
                    },
                    "createdAt": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "PackageDetails": {
                "allOf": [
                    {
                        "$ref": "#/components/schemas/PackageSummary"
                    },
                    {
                        "type": "object",
                        "required": [
                            "senderAddress",
                            "senderPhone",
                            "recipientAddress",
                            "recipientPhone",
                            "statusHistory",
                            "allowedTransitions"
                        ],
                        "properties": {
                            "senderAddress": {
                                "type": "string"
                            },
                            "senderPhone": {
                                "type": "string"
                            },
                            "recipientAddress": {
                                "type": "string"
                            },
                            "recipientPhone": {
                                "type": "string"
                            },
                            "statusHistory": {
                                "type": "array",
                                "items": {
                                    "$ref": "#/components/schemas/HistoryEntry"
                                }
                            },
                            "allowedTransitions": {
                                "type": "array",
                                "items": {
                                    "$ref": "#/components/schemas/PackageStatus"
                                }
                            }
                        }
                    }
                ]
            },
            "HistoryEntry": {
                "type": "object",
                "required": [
                    "id",
                    "status",
                    "changedAt"
                ],
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "status": {
                        "$ref": "#/components/schemas/PackageStatus"
                    },
                    "changedAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "description": {
                        "type": "string"
                    }
                }
            },
            "PackagesPage": {
                "type": "object",
                "required": [
                    "packages",
                    "totalCount",
                    "totalPages",
                    "currentPage",
                    "pageSize",
                    "hasNext",
                    "hasPrevious"
                ],
                "properties": {
                    "packages": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/PackageSummary"
                        }
                    },
                    "totalCount": {
                        "type": "integer",
                        "format": "int64"
                    },
                    "totalPages": {
                        "type": "integer"
                    },
                    "currentPage": {
                        "type": "integer"
                    },
                    "pageSize": {
                        "type": "integer"
                    },
                    "hasNext": {
                        "type": "boolean"
                    },
                    "hasPrevious": {
                        "type": "boolean"
                    }
                }
            },
            "NewPackage": {
                "type": "object",
                "required": [
                    "senderName",
                    "senderAddress",
                    "senderPhone",
                    "recipientName",
                    "recipientAddress",
                    "recipientPhone"
                ],
                "properties": {
                    "senderName": {
                        "type": "string"
                    },
                    "senderAddress": {
                        "type": "string"
                    },
                    "senderPhone": {
                        "type": "string"
                    },
                    "recipientName": {
                        "type": "string"
                    },
                    "recipientAddress": {
                        "type": "string"
                    },
                    "recipientPhone": {
                        "type": "string"
                    }
                }
            },
            "NewStatus": {
                "type": "object",
                "required": [
                    "newStatus"
                ],
                "properties": {
                    "newStatus": {
                        "$ref": "#/components/schemas/PackageStatus"
                    }
                }
            },
            "Error": {
                "type": "object",
                "required": [
                    "code",
                    "message"
                ],
                "properties": {
                    "code": {
                        "type": "integer"
                    },
                    "message": {
                        "type": "string"
                    }
                }
            },
            "ValidationError": {
                "type": "object",
                "required": [
                    "code",
                    "message",
                    "fields"
                ],
                "properties": {
                    "code": {
                        "type": "integer"
                    },
                    "message": {
                        "type": "string"
                    },
                    "fields": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    }
}
`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Package Tracker API",
	Description:      "Tracks shipped packages through their lifecycle and records every status change.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
