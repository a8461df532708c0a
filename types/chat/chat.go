package chat

import "fmt"

// ChatRequest carries a single prompt for the assistant.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

func (r ChatRequest) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("Prompt no proporcionado.")
	}
	return nil
}
