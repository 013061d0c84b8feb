package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
	"github.com/rentora/rentora/internal/utils"
)

// CompletionClient is the capability the extractor needs from a model
// provider: one chat completion call returning a structured function-call
// payload. Any provider speaking the OpenAI chat completions shape satisfies it.
type CompletionClient interface {
	ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error)
}

const extractorSystemPrompt = "Eres un asistente que ayuda a buscar propiedades de alquiler. " +
	"Extrae los parámetros de búsqueda del mensaje del usuario en español."

// FilterExtractor turns a free-form housing request into a validated
// SearchFilter through one schema-constrained completion call. Decoding is
// pinned to temperature zero so repeated calls with the same utterance extract
// the same filter. The extractor never retries on its own; whether a failed
// call is worth a second round trip is the caller's cost decision.
type FilterExtractor struct {
	client CompletionClient
	model  string
	logger *zap.Logger
}

// NewFilterExtractor creates a new filter extractor
func NewFilterExtractor(client CompletionClient, chatModel string, logger *zap.Logger) *FilterExtractor {
	return &FilterExtractor{
		client: client,
		model:  chatModel,
		logger: logger,
	}
}

// Extract sends the utterance to the completion service with the
// search_properties function forced, then parses and validates the returned
// arguments. Failure modes:
//   - no function-call payload: ExtractionError "no structured response"
//   - unparseable arguments: ExtractionError "malformed arguments"
//   - parsed but schema-invalid: ValidationError from ValidateFilter
func (e *FilterExtractor) Extract(ctx context.Context, utterance string) (*model.SearchFilter, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil, &ExtractionError{Reason: "empty utterance"}
	}

	temperature := 0.0
	req := ChatCompletionRequest{
		Model: e.model,
		Messages: []ChatMessage{
			{Role: "system", Content: extractorSystemPrompt},
			{Role: "user", Content: utterance},
		},
		Temperature:  &temperature,
		Functions:    []FunctionDefinition{SearchFunction()},
		FunctionCall: FunctionCallRef{Name: SearchFunctionName},
	}

	resp, err := e.client.ChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, &ExtractionError{Reason: "no structured response"}
	}
	call := resp.Choices[0].Message.FunctionCall
	if call == nil || call.Arguments == "" {
		return nil, &ExtractionError{Reason: "no structured response"}
	}

	var raw map[string]interface{}
	if err := utils.ParseModelJSON(call.Arguments, &raw); err != nil {
		e.logger.Debug("unparseable function call arguments",
			zap.String("arguments", call.Arguments),
			zap.Error(err),
		)
		return nil, &ExtractionError{Reason: "malformed arguments"}
	}

	filter, err := ValidateFilter(raw)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("extracted search filter", zap.Any("filter", filter))
	return filter, nil
}
