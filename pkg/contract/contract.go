package contract

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-docform/pkg/model"
)

// Operation ids of the generation endpoints.
const (
	OperationGenerateResume      = "generateResume"
	OperationGenerateCoverLetter = "generateCoverLetter"
)

// ErrUnknownOperation is returned when the contract has no operation with the
// requested id.
var ErrUnknownOperation = errors.New("contract: unknown operation")

//go:embed openapi.yaml
var embeddedDocument []byte

// Endpoint locates one generation operation.
type Endpoint struct {
	OperationID string
	Method      string
	Path        string
}

// String renders "METHOD /path".
func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

// Contract is the parsed description of the generation backend.
type Contract struct {
	endpoints map[string]Endpoint
}

// Load parses the embedded contract.
func Load(ctx context.Context) (*Contract, error) {
	return Parse(ctx, embeddedDocument)
}

// Parse loads and validates an OpenAPI document and indexes its operations
// by operation id.
func Parse(ctx context.Context, raw []byte) (*Contract, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("contract: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("contract: validate document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("contract: document does not contain any paths")
	}

	c := &Contract{endpoints: make(map[string]Endpoint)}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || strings.TrimSpace(op.OperationID) == "" {
				continue
			}
			id := strings.TrimSpace(op.OperationID)
			if _, exists := c.endpoints[id]; exists {
				return nil, fmt.Errorf("contract: duplicate operation id %q", id)
			}
			c.endpoints[id] = Endpoint{
				OperationID: id,
				Method:      strings.ToUpper(method),
				Path:        path,
			}
		}
	}
	return c, nil
}

// Endpoint returns the endpoint registered under an operation id.
func (c *Contract) Endpoint(operationID string) (Endpoint, error) {
	if c == nil {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnknownOperation, operationID)
	}
	ep, ok := c.endpoints[operationID]
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnknownOperation, operationID)
	}
	return ep, nil
}

// Operations lists the known operation ids, sorted.
func (c *Contract) Operations() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.endpoints))
	for id := range c.endpoints {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ForForm returns the endpoint a form type submits to.
func (c *Contract) ForForm(formType model.FormType) (Endpoint, error) {
	switch formType {
	case model.FormTypeResume:
		return c.Endpoint(OperationGenerateResume)
	case model.FormTypeCoverLetter:
		return c.Endpoint(OperationGenerateCoverLetter)
	default:
		return Endpoint{}, fmt.Errorf("%w: %q", model.ErrUnknownFormType, formType)
	}
}

// DefaultMethod is used for endpoints constructed without a contract.
const DefaultMethod = http.MethodPost
