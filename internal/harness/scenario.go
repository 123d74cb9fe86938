package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines an end-to-end logging session.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Start is the epoch second the clock reads before the first step.
	Start int64 `yaml:"start"`

	// Extension overrides the log file extension. Empty means the default.
	Extension string `yaml:"extension,omitempty"`

	// Steps run in order against a fresh storage root.
	Steps []Step `yaml:"steps"`
}

// Step is a single action in a scenario.
type Step struct {
	// Action is one of start, append, stamp or touch.
	Action string `yaml:"action"`

	// Advance moves the clock forward by this many seconds before the action.
	Advance int64 `yaml:"advance,omitempty"`

	// Message is the text appended (append only).
	Message string `yaml:"message,omitempty"`

	// Shift is the raw shift text passed to the replay (stamp only).
	Shift string `yaml:"shift,omitempty"`

	// File and Content place a raw file in the root (touch only).
	File    string `yaml:"file,omitempty"`
	Content string `yaml:"content,omitempty"`

	// Expect validates the outcome of this step. Nil means no validation.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected outcome of a step.
type Expect struct {
	// Error is the expected store error code (e.g. "NO_ACTIVE_LOG").
	// Empty means the step must succeed.
	Error string `yaml:"error,omitempty"`

	// Lines is the exact replay output (stamp only).
	Lines []string `yaml:"lines,omitempty"`

	// Empty requires a replay with no output lines (stamp only).
	Empty bool `yaml:"empty,omitempty"`

	// Active is the expected active log ID after the step.
	Active int64 `yaml:"active,omitempty"`
}

// Step action constants.
const (
	ActionStart  = "start"
	ActionAppend = "append"
	ActionStamp  = "stamp"
	ActionTouch  = "touch"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "mesage:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.Action {
		case ActionStart, ActionAppend, ActionStamp:
		case ActionTouch:
			if step.File == "" {
				return fmt.Errorf("step %d: touch requires file", i)
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i, step.Action)
		}
		if step.Advance < 0 {
			return fmt.Errorf("step %d: advance must not be negative", i)
		}
	}
	return nil
}
