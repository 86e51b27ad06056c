// Package docs holds the OpenAPI description served at /swagger.
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
        "/menu": {
            "get": {"tags": ["menu"], "summary": "List the menu", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/menu.MenuItem"}}}}}
        },
        "/menu/groups": {
            "get": {"tags": ["menu"], "summary": "Menu by display group", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.GroupedResponse"}}}}
        },
        "/menu/add": {
            "post": {"tags": ["menu"], "summary": "Add a menu item", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "item", "required": true, "schema": {"$ref": "#/definitions/menu.MenuItem"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/menu.MenuItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}}}
        },
        "/menu/update": {
            "post": {"tags": ["menu"], "summary": "Replace menu items", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/menu.UpdateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/menu.MenuItem"}}}}}
        },
        "/menu/remove": {
            "post": {"tags": ["menu"], "summary": "Remove a menu item", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/menu.RemoveRequest"}}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}}}
        },
        "/orders/add": {
            "post": {"tags": ["orders"], "summary": "Place an order", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "order", "required": true, "schema": {"$ref": "#/definitions/order.CreateOrderRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/order.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}}}
        },
        "/orders": {
            "get": {"tags": ["orders"], "summary": "List orders, newest first", "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "limit", "type": "integer"}, {"in": "query", "name": "offset", "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}}}}
        },
        "/orders/{id}": {
            "get": {"tags": ["orders"], "summary": "Get an order", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}}}
        },
        "/orders/{id}/ticket": {
            "get": {"tags": ["orders"], "summary": "Ticket preview of a stored order", "produces": ["text/plain", "application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "query", "name": "format", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}}
        },
        "/orders/{id}/print": {
            "post": {"tags": ["orders"], "summary": "Print the ticket of a stored order again", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}}}
        },
        "/pricing/quote": {
            "post": {"tags": ["pricing"], "summary": "Price a menu selection", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/order.QuoteRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.QuoteResponse"}}}}
        },
        "/drafts": {
            "post": {"tags": ["drafts"], "summary": "Open an empty draft", "produces": ["application/json"],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/order.DraftView"}}}}
        },
        "/drafts/{id}": {
            "get": {"tags": ["drafts"], "summary": "Get a draft with its totals", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.DraftView"}}}},
            "put": {"tags": ["drafts"], "summary": "Change customer data, payment or discount", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/order.UpdateDraftRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.DraftView"}}}},
            "delete": {"tags": ["drafts"], "summary": "Discard a draft",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"204": {"description": "No Content"}}}
        },
        "/drafts/{id}/reset": {
            "post": {"tags": ["drafts"], "summary": "Clear a draft", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.DraftView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.HTTPError"}}}}
        },
        "/drafts/{id}/items": {
            "post": {"tags": ["drafts"], "summary": "Add a menu selection to a draft", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/order.AddItemRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.DraftView"}}}}
        },
        "/drafts/{id}/items/{index}": {
            "put": {"tags": ["drafts"], "summary": "Set the quantity of a draft line", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "path", "name": "index", "required": true, "type": "integer"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/order.QuantityRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.DraftView"}}}},
            "delete": {"tags": ["drafts"], "summary": "Remove a draft line", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "path", "name": "index", "required": true, "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/order.DraftView"}}}}
        },
        "/drafts/{id}/ticket": {
            "get": {"tags": ["drafts"], "summary": "Ticket preview of a draft", "produces": ["text/plain", "application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "query", "name": "format", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}}
        },
        "/drafts/{id}/submit": {
            "post": {"tags": ["drafts"], "summary": "Place the order held by a draft", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/order.Order"}}}}
        }
    },
    "definitions": {
        "httpx.HTTPError": {"type": "object", "properties": {"error": {"type": "string", "example": "not found"}}},
        "menu.Option": {"type": "object", "properties": {"type": {"type": "string", "example": "Sencilla"}, "price": {"type": "string", "example": "50.00"}}},
        "menu.MenuItem": {"type": "object", "properties": {
            "id": {"type": "string"}, "product": {"type": "string", "example": "Hamburguesa"},
            "description": {"type": "string"}, "group": {"type": "string", "example": "CLASICAS"},
            "options": {"type": "array", "items": {"$ref": "#/definitions/menu.Option"}}}},
        "menu.UpdateRequest": {"type": "object", "properties": {"updatedItems": {"type": "array", "items": {"$ref": "#/definitions/menu.MenuItem"}}}},
        "menu.RemoveRequest": {"type": "object", "properties": {"id": {"type": "string"}}},
        "menu.Section": {"type": "object", "properties": {"group": {"type": "string"}, "items": {"type": "array", "items": {"$ref": "#/definitions/menu.MenuItem"}}}},
        "menu.GroupedResponse": {"type": "object", "properties": {
            "sections": {"type": "array", "items": {"$ref": "#/definitions/menu.Section"}},
            "extras": {"type": "array", "items": {"$ref": "#/definitions/menu.MenuItem"}}}},
        "order.Extra": {"type": "object", "properties": {"product": {"type": "string", "example": "Queso"}, "price": {"type": "string", "example": "5.00"}}},
        "order.LineItem": {"type": "object", "properties": {
            "product": {"type": "string"}, "description": {"type": "string"},
            "selectedOption": {"type": "string"}, "selectedPrice": {"type": "string"},
            "extras": {"type": "array", "items": {"$ref": "#/definitions/order.Extra"}},
            "comments": {"type": "string"}, "quantity": {"type": "integer"}, "finalPrice": {"type": "string"}}},
        "order.CreateOrderRequest": {"type": "object", "properties": {
            "customerName": {"type": "string"}, "address": {"type": "string"}, "phone": {"type": "string"},
            "comments": {"type": "string"}, "paymentMethod": {"type": "array", "items": {"type": "string", "enum": ["Efectivo", "QR"]}},
            "items": {"type": "array", "items": {"$ref": "#/definitions/order.LineItem"}},
            "discount": {"type": "integer", "enum": [0, 5, 10, 15, 20, 25]}, "totalPrice": {"type": "string"}}},
        "order.Order": {"type": "object", "properties": {
            "id": {"type": "string"}, "createdAt": {"type": "string", "format": "date-time"},
            "customerName": {"type": "string"}, "address": {"type": "string"}, "phone": {"type": "string"},
            "comments": {"type": "string"}, "paymentMethod": {"type": "array", "items": {"type": "string"}},
            "items": {"type": "array", "items": {"$ref": "#/definitions/order.LineItem"}},
            "discount": {"type": "integer"}, "totalPrice": {"type": "string"}}},
        "order.ExtraChoice": {"type": "object", "properties": {"product": {"type": "string"}, "option": {"type": "string"}}},
        "order.AddItemRequest": {"type": "object", "properties": {
            "menuItemId": {"type": "string"}, "option": {"type": "string"},
            "extras": {"type": "array", "items": {"$ref": "#/definitions/order.ExtraChoice"}}, "comments": {"type": "string"}}},
        "order.QuoteRequest": {"type": "object", "properties": {
            "menuItemId": {"type": "string"}, "option": {"type": "string"},
            "extras": {"type": "array", "items": {"$ref": "#/definitions/order.ExtraChoice"}},
            "comments": {"type": "string"}, "quantity": {"type": "integer"}}},
        "order.QuoteResponse": {"type": "object", "properties": {"item": {"$ref": "#/definitions/order.LineItem"}, "unitPrice": {"type": "string"}}},
        "order.UpdateDraftRequest": {"type": "object", "properties": {
            "customerName": {"type": "string"}, "address": {"type": "string"}, "phone": {"type": "string"},
            "comments": {"type": "string"}, "paymentMethod": {"type": "array", "items": {"type": "string"}}, "discount": {"type": "integer"}}},
        "order.QuantityRequest": {"type": "object", "properties": {"quantity": {"type": "integer"}}},
        "order.DraftView": {"type": "object", "properties": {
            "id": {"type": "string"}, "customerName": {"type": "string"}, "address": {"type": "string"},
            "phone": {"type": "string"}, "comments": {"type": "string"},
            "paymentMethod": {"type": "array", "items": {"type": "string"}},
            "items": {"type": "array", "items": {"$ref": "#/definitions/order.LineItem"}},
            "discount": {"type": "integer"}, "updatedAt": {"type": "string", "format": "date-time"},
            "subtotal": {"type": "string"}, "total": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Comandas API",
	Description:      "Order taking, pricing and ticket printing for the counter.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
