package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
)

// ChatState is the turn-processing state of a session
type ChatState string

const (
	StateIdle               ChatState = "idle"
	StateAwaitingExtraction ChatState = "awaiting_extraction"
	StateAwaitingQuery      ChatState = "awaiting_query"
)

// TurnResult is what one completed turn hands back to the caller for
// rendering. Err carries the stage failure for callers that map it onto a
// transport status; the transcript entry for it is already appended.
type TurnResult struct {
	Filter     *model.SearchFilter
	Properties []model.Property
	Reply      model.ChatMessage
	Failed     bool
	Err        error
}

// ChatSession is a single-threaded, turn-based loop over one user's
// transcript. A session is owned exclusively by the caller that created it:
// turns are strictly sequential and no locking is needed. Every turn, success
// or failure, ends back in the idle state, and failures become system-role
// transcript entries instead of errors.
type ChatSession struct {
	id           string
	extractor    Extractor
	properties   PropertyStore
	resultLimit  int
	historyLimit int
	state        ChatState
	transcript   model.ChatHistory
	logger       *zap.Logger
}

// NewChatSession creates an idle session with an empty transcript.
func NewChatSession(extractor Extractor, properties PropertyStore, resultLimit, historyLimit int, logger *zap.Logger) *ChatSession {
	return &ChatSession{
		id:           uuid.NewString(),
		extractor:    extractor,
		properties:   properties,
		resultLimit:  resultLimit,
		historyLimit: historyLimit,
		state:        StateIdle,
		logger:       logger,
	}
}

// ID returns the session identifier.
func (s *ChatSession) ID() string { return s.id }

// State returns the current turn-processing state.
func (s *ChatSession) State() ChatState { return s.state }

// Transcript returns a copy of the session transcript.
func (s *ChatSession) Transcript() model.ChatHistory {
	out := make(model.ChatHistory, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Reset clears the transcript and returns the session to idle.
func (s *ChatSession) Reset() {
	s.transcript = nil
	s.state = StateIdle
}

// Restore seeds the session with a previously persisted transcript, trimmed to
// the session's bound. The session stays idle.
func (s *ChatSession) Restore(history model.ChatHistory) {
	s.transcript = trimHistory(append(model.ChatHistory{}, history...), s.historyLimit)
	s.state = StateIdle
}

// ProcessTurn runs one user turn: append the user message, extract a filter,
// query the store with the tenant's profile merged in, and append the
// assistant reply. Any stage failure appends a system-role entry describing it
// and the session returns to idle either way; the turn itself never surfaces
// an error.
func (s *ChatSession) ProcessTurn(ctx context.Context, tenant *model.TenantProfile, utterance string) *TurnResult {
	s.append(model.ChatMessage{Role: model.ChatRoleUser, Content: utterance, Timestamp: time.Now().UTC()})

	s.state = StateAwaitingExtraction
	filter, err := s.extractor.Extract(ctx, utterance)
	if err != nil {
		return s.failTurn(err)
	}

	s.state = StateAwaitingQuery
	query := BuildSearchQuery(filter, tenant, s.resultLimit)
	properties, err := s.properties.SearchProperties(ctx, query)
	if err != nil {
		return s.failTurn(err)
	}
	if properties == nil {
		properties = []model.Property{}
	}

	reply := model.ChatMessage{
		Role:       model.ChatRoleAssistant,
		Content:    assistantReply(len(properties)),
		Properties: properties,
		Timestamp:  time.Now().UTC(),
	}
	s.append(reply)
	s.state = StateIdle

	return &TurnResult{Filter: filter, Properties: properties, Reply: reply}
}

// failTurn converts a stage failure into a system transcript entry and returns
// the session to idle. This is the single place where failures become
// user-visible, so nothing silently disappears and nothing crashes the
// session.
func (s *ChatSession) failTurn(err error) *TurnResult {
	var (
		validationErr *ValidationError
		extractionErr *ExtractionError
	)

	var content string
	switch {
	case errors.As(err, &validationErr):
		content = ReplyClarify
	case errors.As(err, &extractionErr):
		content = ReplyRephrase
	default:
		s.logger.Error("search turn failed", zap.String("session_id", s.id), zap.Error(err))
		content = ReplyStoreError
	}

	reply := model.ChatMessage{Role: model.ChatRoleSystem, Content: content, Timestamp: time.Now().UTC()}
	s.append(reply)
	s.state = StateIdle

	return &TurnResult{Reply: reply, Failed: true, Err: err}
}

func (s *ChatSession) append(msg model.ChatMessage) {
	s.transcript = trimHistory(append(s.transcript, msg), s.historyLimit)
}
