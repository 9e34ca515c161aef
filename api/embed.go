// Package api embeds the OpenAPI specification so the server can serve it.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI 3.1 YAML specification for the Gingham API.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
