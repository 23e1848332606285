package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const storyRequestSchema = `{
  "type": "object",
  "required": ["prompt"],
  "properties": {
    "prompt": {"type": "string", "minLength": 1}
  }
}`

const storyRequestSchemaURL = "schema://story-request.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func storyRequestValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(storyRequestSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse story request schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(storyRequestSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(storyRequestSchemaURL)
	})
	return compiled, compileErr
}
