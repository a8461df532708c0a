package chatbot

import (
	"context"
	"errors"
	"fmt"
	"os"

	"transvert-logistics/logger"

	"google.golang.org/genai"
)

// ErrUnavailable is returned when the service started without an API key.
var ErrUnavailable = errors.New("GEMINI_API_KEY no configurada")

const model = "gemini-2.5-flash"

const systemInstruction = "Eres el asistente virtual de Transvert Solutions, empresa colombiana de logística. " +
	"Responde sobre envíos, tarifas y seguimiento con tono profesional y amigable."

// Service proxies prompts to the Gemini backend. The client is constructed
// once at startup; a missing API key yields an unavailable service instead of
// a per-call presence check.
type Service struct {
	client *genai.Client
}

// NewServiceFromEnv builds the Gemini client from GEMINI_API_KEY.
func NewServiceFromEnv(ctx context.Context) *Service {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warning("GEMINI_API_KEY not set, chatbot endpoint disabled")
		return &Service{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error("Failed to create Gemini client, chatbot endpoint disabled", err)
		return &Service{}
	}

	logger.Success("Chatbot service initialized")
	return &Service{client: client}
}

// Available reports whether the Gemini backend can be reached at all.
func (s *Service) Available() bool {
	return s.client != nil
}

// Ask sends the prompt to Gemini under the assistant system instruction and
// returns the generated text.
func (s *Service) Ask(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := s.client.Models.GenerateContent(
		ctx,
		model,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return responseText, nil
}
