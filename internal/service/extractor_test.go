package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
)

// fakeCompletionClient records the request it receives and replies with a
// canned response.
type fakeCompletionClient struct {
	lastReq ChatCompletionRequest
	resp    *ChatCompletionResponse
	err     error
}

func (f *fakeCompletionClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func functionCallResponse(arguments string) *ChatCompletionResponse {
	return &ChatCompletionResponse{
		Choices: []ChatChoice{
			{
				Message: ChatMessage{
					Role: "assistant",
					FunctionCall: &FunctionCall{
						Name:      SearchFunctionName,
						Arguments: arguments,
					},
				},
				FinishReason: "function_call",
			},
		},
	}
}

func TestExtract_StructuredFilter(t *testing.T) {
	client := &fakeCompletionClient{
		resp: functionCallResponse(`{"bedrooms": 2, "max_price": 800, "has_parking": true}`),
	}
	extractor := NewFilterExtractor(client, "gpt-4o-mini", zap.NewNop())

	filter, err := extractor.Extract(context.Background(), "busco un departamento de 2 habitaciones por menos de $800 con estacionamiento")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &model.SearchFilter{
		Bedrooms:   intPtr(2),
		MaxPrice:   float64Ptr(800),
		HasParking: boolPtr(true),
	}
	if !reflect.DeepEqual(filter, want) {
		t.Errorf("filter = %+v, want %+v", filter, want)
	}
}

// TestExtract_RequestShape checks the extraction call is deterministic and
// schema-constrained: temperature pinned to zero and the search function
// forced by name.
func TestExtract_RequestShape(t *testing.T) {
	client := &fakeCompletionClient{resp: functionCallResponse(`{}`)}
	extractor := NewFilterExtractor(client, "gpt-4o-mini", zap.NewNop())

	if _, err := extractor.Extract(context.Background(), "algo barato en el centro"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := client.lastReq
	if req.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", req.Model)
	}
	if req.Temperature == nil || *req.Temperature != 0 {
		t.Errorf("temperature = %v, want pinned to 0", req.Temperature)
	}
	if len(req.Functions) != 1 || req.Functions[0].Name != SearchFunctionName {
		t.Errorf("functions = %+v, want exactly the %s function", req.Functions, SearchFunctionName)
	}
	ref, ok := req.FunctionCall.(FunctionCallRef)
	if !ok || ref.Name != SearchFunctionName {
		t.Errorf("function_call = %+v, want forced %s", req.FunctionCall, SearchFunctionName)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("messages = %+v, want system prompt then user utterance", req.Messages)
	}
}

func TestExtract_EmptyUtterance(t *testing.T) {
	client := &fakeCompletionClient{}
	extractor := NewFilterExtractor(client, "gpt-4o-mini", zap.NewNop())

	tests := []string{"", "   ", "\n\t"}
	for _, utterance := range tests {
		_, err := extractor.Extract(context.Background(), utterance)
		var extractionErr *ExtractionError
		if !errors.As(err, &extractionErr) {
			t.Errorf("utterance %q: expected *ExtractionError, got %v", utterance, err)
		}
	}
}

func TestExtract_NoFunctionCall(t *testing.T) {
	tests := []struct {
		name string
		resp *ChatCompletionResponse
	}{
		{"no choices", &ChatCompletionResponse{}},
		{
			"plain text reply",
			&ChatCompletionResponse{
				Choices: []ChatChoice{{Message: ChatMessage{Role: "assistant", Content: "Claro, ¿qué buscas?"}}},
			},
		},
		{
			"empty arguments",
			functionCallResponse(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeCompletionClient{resp: tt.resp}
			extractor := NewFilterExtractor(client, "gpt-4o-mini", zap.NewNop())

			_, err := extractor.Extract(context.Background(), "busco departamento")
			var extractionErr *ExtractionError
			if !errors.As(err, &extractionErr) {
				t.Fatalf("expected *ExtractionError, got %v", err)
			}
			if extractionErr.Reason != "no structured response" {
				t.Errorf("reason = %q, want %q", extractionErr.Reason, "no structured response")
			}
		})
	}
}

func TestExtract_MalformedArguments(t *testing.T) {
	client := &fakeCompletionClient{resp: functionCallResponse(`not json at all`)}
	extractor := NewFilterExtractor(client, "gpt-4o-mini", zap.NewNop())

	_, err := extractor.Extract(context.Background(), "busco departamento")
	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected *ExtractionError, got %v", err)
	}
	if extractionErr.Reason != "malformed arguments" {
		t.Errorf("reason = %q, want %q", extractionErr.Reason, "malformed arguments")
	}
}

func TestExtract_FencedArguments(t *testing.T) {
	client := &fakeCompletionClient{
		resp: functionCallResponse("```json\n{\"max_price\": 650}\n```"),
	}
	extractor := NewFilterExtractor(client, "gpt-4o-mini", zap.NewNop())

	filter, err := extractor.Extract(context.Background(), "algo por menos de 650")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.MaxPrice == nil || *filter.MaxPrice != 650 {
		t.Errorf("max_price = %v, want 650", filter.MaxPrice)
	}
}

func TestExtract_InvalidFieldBecomesValidationError(t *testing.T) {
	client := &fakeCompletionClient{resp: functionCallResponse(`{"bedrooms": -3}`)}
	extractor := NewFilterExtractor(client, "gpt-4o-mini", zap.NewNop())

	_, err := extractor.Extract(context.Background(), "busco departamento")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if validationErr.Field != "bedrooms" {
		t.Errorf("field = %q, want bedrooms", validationErr.Field)
	}
}

func TestExtract_ClientErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	client := &fakeCompletionClient{err: wantErr}
	extractor := NewFilterExtractor(client, "gpt-4o-mini", zap.NewNop())

	_, err := extractor.Extract(context.Background(), "busco departamento")
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}
