package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ArmaRealms/ToolStats/internal/validation"
)

// Loader reads scenario documents, validating them against the embedded
// scenario schema before decoding
type Loader struct {
	validator validation.SchemaValidator
}

// NewLoader creates a Loader. A nil validator uses a fresh schema validator.
func NewLoader(v validation.SchemaValidator) *Loader {
	if v == nil {
		v = validation.NewSchemaValidator()
	}
	return &Loader{validator: v}
}

// Load reads and parses a scenario file
func (l *Loader) Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadScenarioFailed, path, err)
	}
	return l.Parse(data)
}

// Parse validates and decodes a YAML scenario document
func (l *Loader) Parse(data []byte) (*Scenario, error) {
	if err := l.validator.ValidateYAML(data, validation.SchemaScenario); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailed, ErrInvalidScenario, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailed, ErrInvalidScenario, err)
	}
	return &sc, nil
}
