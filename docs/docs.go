// Package docs registers the OpenAPI description served by the Swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "LinkPort API Support"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Returns the health status of the API",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/api/v1/platforms": {
            "get": {
                "description": "Returns the streaming platforms this deployment can read from and match against.",
                "produces": ["application/json"],
                "tags": ["platforms"],
                "summary": "List platforms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.PlatformsResponse"}}
                }
            }
        },
        "/api/v1/convert": {
            "post": {
                "description": "Reads the playlist behind source_url, fuzzy-matches every track on the target platform\nand assembles a shareable mirror playlist. Each track gets a verdict (matched, partial,\nnot_found) with a confidence score, up to two alternatives and an explanation.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["conversion"],
                "summary": "Convert playlist",
                "parameters": [
                    {
                        "description": "Source playlist URL and target platform",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.ConversionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ConversionResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/api/v1/match": {
            "post": {
                "description": "Fuzzy-matches the given tracks on the target platform without assembling a playlist.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["conversion"],
                "summary": "Match tracks",
                "parameters": [
                    {
                        "description": "Target platform and tracks to match",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.MatchRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.MatchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Track": {
            "type": "object",
            "required": ["artist", "title"],
            "properties": {
                "title": {"type": "string"},
                "artist": {"type": "string"},
                "album": {"type": "string"},
                "duration_seconds": {"type": "integer"},
                "platform_ref": {"type": "string"}
            }
        },
        "domain.Playlist": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "platform": {"type": "string"},
                "original_url": {"type": "string"},
                "tracks": {"type": "array", "items": {"$ref": "#/definitions/domain.Track"}},
                "total_duration": {"type": "integer"},
                "shareable_url": {"type": "string"},
                "qr_code": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.Match": {
            "type": "object",
            "properties": {
                "original_track": {"$ref": "#/definitions/domain.Track"},
                "matched_track": {"$ref": "#/definitions/domain.Track"},
                "confidence": {"type": "number"},
                "status": {"type": "string", "enum": ["matched", "partial", "not_found"]},
                "alternative_tracks": {"type": "array", "items": {"$ref": "#/definitions/domain.Track"}},
                "best_candidate": {
                    "type": "object",
                    "properties": {
                        "track": {"$ref": "#/definitions/domain.Track"},
                        "confidence": {"type": "number"}
                    }
                },
                "variant": {"type": "string"},
                "explanation": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "domain.Stats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "matched": {"type": "integer"},
                "partial": {"type": "integer"},
                "not_found": {"type": "integer"}
            }
        },
        "domain.ConversionRequest": {
            "type": "object",
            "required": ["source_url", "target_platform"],
            "properties": {
                "source_url": {"type": "string"},
                "target_platform": {"type": "string"}
            }
        },
        "domain.MatchRequest": {
            "type": "object",
            "required": ["target_platform", "tracks"],
            "properties": {
                "target_platform": {"type": "string"},
                "tracks": {"type": "array", "items": {"$ref": "#/definitions/domain.Track"}}
            }
        },
        "domain.ConversionResult": {
            "type": "object",
            "properties": {
                "source_playlist": {"$ref": "#/definitions/domain.Playlist"},
                "target_playlist": {"$ref": "#/definitions/domain.Playlist"},
                "matches": {"type": "array", "items": {"$ref": "#/definitions/domain.Match"}},
                "shareable_url": {"type": "string"},
                "qr_code": {"type": "string"},
                "stats": {"$ref": "#/definitions/domain.Stats"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.PlatformsResponse": {
            "type": "object",
            "properties": {
                "platforms": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.MatchResponse": {
            "type": "object",
            "properties": {
                "matches": {"type": "array", "items": {"$ref": "#/definitions/domain.Match"}},
                "stats": {"$ref": "#/definitions/domain.Stats"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LinkPort API",
	Description:      "Converts playlists between streaming platforms (Spotify, YouTube Music, SoundCloud, Apple Music)\nby fuzzy-matching every track on the target platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
