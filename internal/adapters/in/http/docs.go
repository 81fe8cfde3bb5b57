// Package http is the REST adapter of the ordering service.
//
// The API is described by the embedded openapi.yaml. The same document drives
// request validation (kin-openapi), the swagger UI under /swagger/ and the route
// table generated into internal/generated/servers. Callers identify themselves
// with the X-Actor-ID and X-Actor-Role headers set by the gateway.
//
// # Error Mapping
//
//	not found               404
//	forbidden               403
//	invalid transition      409
//	order locked            423
//	concurrent modification 409 with Retry-After
//	validation              400
//	anything else           500
package http

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPISpec []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

func init() {
	openapi3.DefineStringFormatValidator("uuid", openapi3.NewRegexpFormatValidator(openapi3.FormatOfStringForUUIDOfRFC4122))
	swag.Register(swag.Name, swaggerDocument{})
}

// GetSwagger returns the parsed API document. It is loaded once.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		swaggerDoc, swaggerErr = loader.LoadFromData(openAPISpec)
		if swaggerErr != nil {
			swaggerErr = fmt.Errorf("error loading Swagger: %w", swaggerErr)
		}
	})
	return swaggerDoc, swaggerErr
}

// swaggerDocument serves the API document to the swagger UI.
type swaggerDocument struct{}

func (swaggerDocument) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}
