package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
)

// Extractor turns one utterance into a validated search filter. Satisfied by
// *FilterExtractor; tests substitute a canned implementation.
type Extractor interface {
	Extract(ctx context.Context, utterance string) (*model.SearchFilter, error)
}

// SearchService handles assistant search and eligibility business logic
type SearchService struct {
	extractor    Extractor
	properties   PropertyStore
	profiles     ProfileStore
	chats        ChatStore
	resultLimit  int
	historyLimit int
	logger       *zap.Logger
}

// NewSearchService creates a new search service
func NewSearchService(
	extractor Extractor,
	properties PropertyStore,
	profiles ProfileStore,
	chats ChatStore,
	resultLimit, historyLimit int,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		extractor:    extractor,
		properties:   properties,
		profiles:     profiles,
		chats:        chats,
		resultLimit:  resultLimit,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Search runs one assistant search turn for the given tenant through the chat
// loop: seed a session from the stored transcript, process the turn, persist
// the updated transcript. The turn itself is strictly sequential (extraction is
// the only suspension point); persistence is best-effort off the request path.
// Failed turns reach the stored transcript too, as system-role entries, so no
// failure silently disappears from the history.
func (s *SearchService) Search(ctx context.Context, userID, message string) (*model.SearchResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &AuthorizationFault{Reason: "profile not found"}
	}
	if profile.Role != model.RoleTenant {
		return nil, &AuthorizationFault{Reason: "tenant role required"}
	}

	session := NewChatSession(s.extractor, s.properties, s.resultLimit, s.historyLimit, s.logger)
	history, loadErr := s.chats.LoadHistory(ctx, userID)
	if loadErr != nil {
		// Run the turn anyway, but do not persist over a transcript we could
		// not read.
		s.logger.Warn("failed to load chat history", zap.String("user_id", userID), zap.Error(loadErr))
	} else {
		session.Restore(history)
	}

	turn := session.ProcessTurn(ctx, profile, message)

	if loadErr == nil {
		go s.persistTranscript(userID, session.Transcript())
	}

	if turn.Err != nil {
		return nil, turn.Err
	}

	return &model.SearchResult{
		ExtractedFilters: turn.Filter,
		Properties:       turn.Properties,
	}, nil
}

// Eligibility evaluates one tenant against one property. The caller must be
// the tenant themself or the landlord who owns the property.
func (s *SearchService) Eligibility(ctx context.Context, callerID string, callerRole model.UserRole, tenantID string, propertyID int64) (*model.EligibilityVerdict, error) {
	property, err := s.properties.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, fmt.Errorf("property %d not found", propertyID)
	}

	switch {
	case callerRole == model.RoleAdmin:
	case callerRole == model.RoleTenant && callerID == tenantID:
	case callerRole == model.RoleLandlord && property.LandlordID == callerID:
	default:
		return nil, &AuthorizationFault{Reason: "caller may not evaluate this tenant/property pair"}
	}

	tenant, err := s.profiles.GetProfile(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, fmt.Errorf("profile %s not found", tenantID)
	}

	verdict := Evaluate(tenant, property.Criteria, property.Details)
	return &verdict, nil
}

// ListProperties returns the listings visible to the caller: landlords see
// their own properties in any status, everyone else sees active listings.
func (s *SearchService) ListProperties(ctx context.Context, callerID string, callerRole model.UserRole) ([]model.Property, error) {
	if callerRole == model.RoleLandlord {
		return s.properties.ListPropertiesByLandlord(ctx, callerID)
	}
	return s.properties.ListActiveProperties(ctx)
}

// GetProperty returns one listing by id, or nil when it does not exist.
func (s *SearchService) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	return s.properties.GetProperty(ctx, id)
}

// persistTranscript writes the session transcript back to the store. A failed
// save must not fail the search.
func (s *SearchService) persistTranscript(userID string, history model.ChatHistory) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.chats.SaveHistory(ctx, userID, history); err != nil {
		s.logger.Warn("failed to save chat history", zap.String("user_id", userID), zap.Error(err))
	}
}

// assistantReply is the rendered assistant text for a completed search turn.
func assistantReply(count int) string {
	if count == 0 {
		return "No encontré propiedades que coincidan con tus criterios. ¿Quieres intentar con otros parámetros?"
	}
	return fmt.Sprintf("Encontré %d propiedades que coinciden con tu búsqueda:", count)
}

// trimHistory drops the oldest entries once the transcript exceeds max.
func trimHistory(history model.ChatHistory, max int) model.ChatHistory {
	if max <= 0 || len(history) <= max {
		return history
	}
	return history[len(history)-max:]
}
