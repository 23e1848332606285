package persist

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// statsSchema describes a stored LearnerStats document. Documents that do
// not match are treated as corrupt and replaced by the caller's default.
const statsSchema = `{
  "type": "object",
  "required": ["score", "totalScore", "streak"],
  "properties": {
    "score":         {"type": "integer", "minimum": 0},
    "totalScore":    {"type": "integer", "minimum": 0},
    "streak":        {"type": "integer", "minimum": 0},
    "puzzlesSolved": {"type": "integer", "minimum": 0},
    "lastPlayed": {
      "anyOf": [
        {"type": "null"},
        {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"}
      ]
    },
    "unlockedAchievements": {"type": "array", "items": {"type": "string"}},
    "completedLevels":      {"type": "array", "items": {"type": "string"}},
    "weakWords":            {"type": "array", "items": {"type": "string"}}
  }
}`

const statsSchemaURL = "schema://learner-stats.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func statsValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(statsSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse stats schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(statsSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(statsSchemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks raw against the stats schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	sch, err := statsValidator()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
