package scenario

import (
	"encoding/json"
	"io"
	"time"
)

// ExecutionResult is what one Engine.Execute call produced. Success starts
// true and is cleared by the first failing step, failed expectation or
// SetError.
type ExecutionResult struct {
	ScenarioName string            `json:"scenario_name"`
	Success      bool              `json:"success"`
	DurationMS   int64             `json:"duration_ms"`
	StartedAt    time.Time         `json:"started_at"`
	CompletedAt  time.Time         `json:"completed_at"`
	Steps        []StepResult      `json:"steps"`
	Ticks        int               `json:"ticks"`
	Assertions   []AssertionResult `json:"assertions,omitempty"`
	Error        string            `json:"error,omitempty"`
	Report       *Report           `json:"report,omitempty"`
}

type StepResult struct {
	StepIndex  int            `json:"step_index"`
	Action     ActionType     `json:"action"`
	Success    bool           `json:"success"`
	DurationMS int64          `json:"duration_ms"`
	Output     map[string]any `json:"output,omitempty"`
	Error      string         `json:"error,omitempty"`

	started time.Time
}

// AssertionResult compares one expectation against the item it addresses.
// Error holds the mismatch description when Passed is false.
type AssertionResult struct {
	Target   string `json:"target"`
	Stat     string `json:"stat"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
	Passed   bool   `json:"passed"`
	Reason   string `json:"reason,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Report is the final state of every tracked item in the world
type Report struct {
	Players []PlayerReport `json:"players"`
	Thrown  []ItemReport   `json:"thrown,omitempty"`
}

type PlayerReport struct {
	Name      string       `json:"name"`
	Removed   bool         `json:"removed,omitempty"`
	Inventory []ItemReport `json:"inventory,omitempty"`
	Armor     []ItemReport `json:"armor,omitempty"`
}

// ItemReport is one item with its counters and rendered lore
type ItemReport struct {
	Holder   string             `json:"holder"`
	Material string             `json:"material"`
	Stats    map[string]float64 `json:"stats,omitempty"`
	Lore     []string           `json:"lore,omitempty"`
}

// Tally counts passes against totals for a finished execution
type Tally struct {
	Steps            int `json:"steps"`
	PassedSteps      int `json:"passed_steps"`
	Assertions       int `json:"assertions"`
	PassedAssertions int `json:"passed_assertions"`
}

func NewExecutionResult(scenarioName string) *ExecutionResult {
	return &ExecutionResult{
		ScenarioName: scenarioName,
		Success:      true,
		StartedAt:    time.Now(),
		Steps:        []StepResult{},
	}
}

func (r *ExecutionResult) addStep(step *StepResult) {
	step.DurationMS = time.Since(step.started).Milliseconds()
	r.Steps = append(r.Steps, *step)
	r.Success = r.Success && step.Success
}

func (r *ExecutionResult) addAssertion(a AssertionResult) {
	r.Assertions = append(r.Assertions, a)
	r.Success = r.Success && a.Passed
}

// finish stamps the completion time. It returns r so early exits can
// return it directly.
func (r *ExecutionResult) finish() *ExecutionResult {
	r.CompletedAt = time.Now()
	r.DurationMS = r.CompletedAt.Sub(r.StartedAt).Milliseconds()
	return r
}

func (r *ExecutionResult) SetError(err error) {
	r.Success = false
	r.Error = err.Error()
}

// Tally counts passed steps and expectations.
func (r *ExecutionResult) Tally() Tally {
	t := Tally{Steps: len(r.Steps), Assertions: len(r.Assertions)}
	for _, s := range r.Steps {
		if s.Success {
			t.PassedSteps++
		}
	}
	for _, a := range r.Assertions {
		if a.Passed {
			t.PassedAssertions++
		}
	}
	return t
}

// WriteJSON writes the result as indented JSON followed by a newline.
func (r *ExecutionResult) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func newStepResult(index int, action ActionType) *StepResult {
	return &StepResult{
		StepIndex: index,
		Action:    action,
		Success:   true,
		Output:    map[string]any{},
		started:   time.Now(),
	}
}

func (r *StepResult) fail(err error) {
	r.Success = false
	r.Error = err.Error()
}

func (r *StepResult) AddOutput(key string, value any) {
	r.Output[key] = value
}
