package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentora/rentora/internal/model"
)

// LoadHistory returns a user's saved assistant transcript, or an empty history
// when the user has not chatted yet.
func (r *PostgresRepository) LoadHistory(ctx context.Context, userID string) (model.ChatHistory, error) {
	var history model.ChatHistory
	query := "SELECT message_history FROM chats WHERE user_id = $1"

	if err := r.db.GetContext(ctx, &history, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ChatHistory{}, nil
		}
		return nil, &StoreFault{Op: "load chat history", Err: err}
	}
	return history, nil
}

// SaveHistory upserts a user's assistant transcript
func (r *PostgresRepository) SaveHistory(ctx context.Context, userID string, history model.ChatHistory) error {
	query := `
		INSERT INTO chats (user_id, message_history, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET message_history = EXCLUDED.message_history, updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, userID, history); err != nil {
		return &StoreFault{Op: "save chat history", Err: err}
	}
	return nil
}
