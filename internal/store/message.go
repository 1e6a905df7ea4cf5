package store

import (
	"context"

	"pathway.app/server/internal/model"
)

type messageStore struct {
	db DBTX
}

func (s *messageStore) Create(ctx context.Context, msg *model.Message) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO messages (id, conversation_id, sender_id, sender_role, message_text, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.ConversationID, msg.SenderID, msg.SenderRole, msg.Text, msg.IsRead, msg.CreatedAt,
	)
	return err
}

func (s *messageStore) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, conversation_id, sender_id, sender_role, message_text, is_read, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(
			&m.ID, &m.ConversationID, &m.SenderID, &m.SenderRole, &m.Text, &m.IsRead, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead reports false when the message does not belong to the given
// conversation, so the caller can surface not-found.
func (s *messageStore) MarkRead(ctx context.Context, conversationID, messageID int64) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE messages
		SET is_read = true
		WHERE id = $1 AND conversation_id = $2`,
		messageID, conversationID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
