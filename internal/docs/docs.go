// Package docs holds the OpenAPI document served under /api-docs.
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
        "/habitaciones": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Habitaciones"],
                "summary": "Obtiene todas las habitaciones",
                "responses": {
                    "200": {
                        "description": "Lista de habitaciones obtenida exitosamente",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Habitacion"}}
                    },
                    "404": {"description": "No hay habitaciones registradas", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Error al obtener las habitaciones", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Habitaciones"],
                "summary": "Crea una nueva habitación",
                "parameters": [
                    {"in": "body", "name": "habitacion", "required": true, "schema": {"$ref": "#/definitions/NuevaHabitacion"}}
                ],
                "responses": {
                    "201": {"description": "Habitación creada exitosamente", "schema": {"$ref": "#/definitions/HabitacionMensaje"}},
                    "400": {"description": "Datos de la habitación inválidos", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "El número de habitación ya existe", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Error interno", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/habitaciones/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Habitaciones"],
                "summary": "Obtiene una habitación por ID",
                "parameters": [
                    {"type": "integer", "description": "ID de la habitación", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Habitación encontrada", "schema": {"$ref": "#/definitions/Habitacion"}},
                    "400": {"description": "ID inválido", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Habitación no encontrada", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Habitaciones"],
                "summary": "Actualiza parcialmente una habitación por ID",
                "parameters": [
                    {"type": "integer", "description": "ID de la habitación", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "campos", "required": true, "schema": {"$ref": "#/definitions/CamposHabitacion"}}
                ],
                "responses": {
                    "200": {"description": "Habitación actualizada correctamente", "schema": {"$ref": "#/definitions/HabitacionMensaje"}},
                    "400": {"description": "ID inválido o datos incorrectos", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Habitación no encontrada", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "El número de habitación ya existe", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Error al actualizar la habitación", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["Habitaciones"],
                "summary": "Elimina una habitación",
                "parameters": [
                    {"type": "integer", "description": "ID de la habitación", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Habitación eliminada exitosamente"},
                    "400": {"description": "ID inválido", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Habitación no encontrada", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Error al eliminar la habitación", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/reservas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reservas"],
                "summary": "Lista las reservas",
                "responses": {
                    "200": {"description": "Reservas", "schema": {"type": "array", "items": {"$ref": "#/definitions/Reserva"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reservas"],
                "summary": "Crear una nueva reserva",
                "parameters": [
                    {"in": "body", "name": "reserva", "required": true, "schema": {"$ref": "#/definitions/NuevaReserva"}}
                ],
                "responses": {
                    "201": {"description": "Reserva creada con éxito", "schema": {"$ref": "#/definitions/Reserva"}},
                    "400": {"description": "Datos de la reserva inválidos", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/reservas/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reservas"],
                "summary": "Obtiene una reserva por ID",
                "parameters": [
                    {"type": "integer", "description": "ID de la reserva", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Reserva encontrada", "schema": {"$ref": "#/definitions/Reserva"}},
                    "404": {"description": "Reserva no encontrada", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reservas"],
                "summary": "Editar una reserva existente",
                "parameters": [
                    {"type": "integer", "description": "ID de la reserva", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "reserva", "required": true, "schema": {"$ref": "#/definitions/NuevaReserva"}}
                ],
                "responses": {
                    "200": {"description": "Reserva actualizada con éxito", "schema": {"$ref": "#/definitions/Reserva"}},
                    "400": {"description": "Datos de la reserva inválidos", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Reserva no encontrada", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Reservas"],
                "summary": "Eliminar una reserva",
                "parameters": [
                    {"type": "integer", "description": "ID de la reserva", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Reserva eliminada con éxito", "schema": {"$ref": "#/definitions/Mensaje"}},
                    "404": {"description": "Reserva no encontrada", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Habitacion": {
            "type": "object",
            "properties": {
                "habitacion_id": {"type": "integer"},
                "num_habi": {"type": "integer"},
                "tipo": {"type": "string"},
                "capacidad": {"type": "integer"},
                "precio": {"type": "integer"},
                "estado": {"type": "boolean"}
            }
        },
        "NuevaHabitacion": {
            "type": "object",
            "required": ["num_habi", "tipo", "capacidad", "precio", "estado"],
            "properties": {
                "num_habi": {"type": "integer", "minimum": 1},
                "tipo": {"type": "string"},
                "capacidad": {"type": "integer", "minimum": 1},
                "precio": {"type": "integer", "minimum": 1},
                "estado": {"type": "boolean"}
            }
        },
        "CamposHabitacion": {
            "type": "object",
            "properties": {
                "num_habi": {"type": "integer", "minimum": 1},
                "tipo": {"type": "string"},
                "capacidad": {"type": "integer", "minimum": 1},
                "precio": {"type": "integer", "minimum": 1},
                "estado": {"type": "boolean"}
            }
        },
        "HabitacionMensaje": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "habitacion": {"$ref": "#/definitions/Habitacion"}
            }
        },
        "Reserva": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "fecha": {"type": "string"},
                "personas": {"type": "integer"}
            }
        },
        "NuevaReserva": {
            "type": "object",
            "required": ["nombre", "fecha", "personas"],
            "properties": {
                "nombre": {"type": "string"},
                "fecha": {"type": "string"},
                "personas": {"type": "integer", "minimum": 1}
            }
        },
        "Mensaje": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "fields": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {"type": "string"},
                            "error": {"type": "string"}
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API de Habitaciones y Reservas",
	Description:      "API para manejar habitaciones y reservas (crear, consultar, editar, eliminar)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
