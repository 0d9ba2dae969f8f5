package display

import (
	"encoding/json"
	"fmt"
)

// JSONRenderer emits results as indented JSON for machine consumption
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// RenderCommandResult renders the result as indented JSON
func (r *JSONRenderer) RenderCommandResult(result CommandResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}", err.Error())
	}
	return string(data)
}
