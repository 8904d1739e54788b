package validation

// SchemaScenario is the embedded schema scenario files are checked against.
const SchemaScenario = "scenario.schema.json"

const (
	ErrMsgReadDataFailed    = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFailed  = "failed to load schema %s: %w"
	ErrMsgReadSchemaFailed  = "failed to read schema file: %w"
	ErrMsgParseSchemaFailed = "failed to parse schema JSON: %w"
	ErrMsgCompileFailed     = "failed to compile schema: %w"
	ErrMsgParseJSONFailed   = "failed to parse JSON data: %w"
	ErrMsgParseYAMLFailed   = "failed to parse YAML data: %w"
	ErrMsgConvertYAMLFailed = "failed to convert YAML to JSON: %w"
	ErrMsgValidationFailed  = "schema validation failed"
)
