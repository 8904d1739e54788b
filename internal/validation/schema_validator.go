// Package validation checks JSON and YAML documents against JSON schemas,
// either shipped with the binary or read from disk.
package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/*.schema.json
var embeddedSchemas embed.FS

// embeddedBaseURL names embedded schemas for the compiler; nothing is fetched
const embeddedBaseURL = "https://armarealms.github.io/toolstats/schemas/"

// SchemaValidator validates JSON and YAML data against JSON schemas. A schema
// path names an embedded schema or, failing that, a file on disk.
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
	ValidateYAML(data []byte, schemaPath string) error
}

// Violation is one failed keyword at one location in the document.
type Violation struct {
	// Location is a JSON pointer, "" for the document root
	Location string
	Keyword  string
}

func (v Violation) String() string {
	loc := v.Location
	if loc == "" {
		loc = "(root)"
	}
	if v.Keyword == "" {
		return "at " + loc + ": validation failed"
	}
	return "at " + loc + ": " + v.Keyword + " validation failed"
}

// ValidationError lists every violation a document produced, leaves of the
// schema's error tree first to last.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMsgValidationFailed)
	b.WriteString(":")
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.String())
	}
	return b.String()
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile picks YAML or JSON decoding from the file extension.
func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf(ErrMsgReadDataFailed, dataPath, err)
	}
	if ext := strings.ToLower(filepath.Ext(dataPath)); ext == ".yaml" || ext == ".yml" {
		return v.ValidateYAML(data, schemaPath)
	}
	return v.ValidateBytes(data, schemaPath)
}

func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf(ErrMsgParseJSONFailed, err)
	}
	return v.validate(doc, schemaPath)
}

// ValidateYAML round-trips the document through JSON so the schema sees the
// same types a JSON document would produce.
func (v *validator) ValidateYAML(data []byte, schemaPath string) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf(ErrMsgParseYAMLFailed, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf(ErrMsgConvertYAMLFailed, err)
	}
	return v.ValidateBytes(raw, schemaPath)
}

func (v *validator) validate(doc any, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf(ErrMsgLoadSchemaFailed, schemaPath, err)
	}

	err = schema.Validate(doc)
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		out := &ValidationError{}
		collectViolations(verr, &out.Violations)
		return out
	}
	return err
}

// schema compiles schemaPath once and caches it for the validator's lifetime
func (v *validator) schema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[schemaPath]; ok {
		return s, nil
	}

	url, raw, err := readSchema(schemaPath)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSchemaFailed, err)
	}
	if err := v.compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf(ErrMsgCompileFailed, err)
	}
	s, err := v.compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompileFailed, err)
	}

	v.schemas[schemaPath] = s
	return s, nil
}

// readSchema returns the compiler resource URL and contents for schemaPath
func readSchema(schemaPath string) (string, []byte, error) {
	data, err := fs.ReadFile(embeddedSchemas, path.Join("schemas", schemaPath))
	if err == nil {
		return embeddedBaseURL + schemaPath, data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
		return "", nil, err
	}

	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return "", nil, fmt.Errorf(ErrMsgReadSchemaFailed, err)
	}
	data, err = os.ReadFile(abs)
	if err != nil {
		return "", nil, fmt.Errorf(ErrMsgReadSchemaFailed, err)
	}
	return abs, data, nil
}

// collectViolations walks the error tree depth first. Inner nodes that only
// group their causes are skipped.
func collectViolations(err *jsonschema.ValidationError, out *[]Violation) {
	if len(err.Causes) == 0 {
		*out = append(*out, violationOf(err))
		return
	}
	for _, cause := range err.Causes {
		collectViolations(cause, out)
	}
}

func violationOf(err *jsonschema.ValidationError) Violation {
	v := Violation{}
	if len(err.InstanceLocation) > 0 {
		v.Location = "/" + strings.Join(err.InstanceLocation, "/")
	}
	if err.ErrorKind != nil {
		v.Keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	return v
}
