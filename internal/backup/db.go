package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/glebarez/go-sqlite"

	"github.com/rikkatools/rikkaview/internal/logger"
	"github.com/rikkatools/rikkaview/internal/message"
	"github.com/rikkatools/rikkaview/internal/model"
)

const untitled = "(无标题)"

// readConversations loads every conversation with its message nodes. Each
// node carries the turn's branch variants as a JSON array; nodes whose JSON
// is malformed are skipped, not fatal.
func readConversations(dbPath string) ([]model.Conversation, error) {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, assistant_id, title, create_at, update_at, is_pinned
		FROM ConversationEntity ORDER BY update_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("query conversations: %w", err)
	}
	defer rows.Close()

	var conversations []model.Conversation
	for rows.Next() {
		var (
			conv   model.Conversation
			title  sql.NullString
			pinned int
		)
		if err := rows.Scan(&conv.ID, &conv.AssistantID, &title, &conv.CreateAtTS, &conv.UpdateAtTS, &pinned); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		conv.Title = title.String
		if conv.Title == "" {
			conv.Title = untitled
		}
		conv.CreateAt = epochMillis(conv.CreateAtTS)
		conv.UpdateAt = epochMillis(conv.UpdateAtTS)
		conv.Pinned = pinned != 0
		conversations = append(conversations, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read conversations: %w", err)
	}

	for i := range conversations {
		msgs, err := readMessages(db, conversations[i].ID)
		if err != nil {
			return nil, err
		}
		conversations[i].Messages = msgs
	}
	return conversations, nil
}

func readMessages(db *sql.DB, conversationID string) ([]model.Message, error) {
	rows, err := db.Query(`SELECT messages, select_index FROM message_node
		WHERE conversation_id = ? ORDER BY node_index ASC;`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("query message nodes: %w", err)
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var (
			variantsJSON string
			selected     int
		)
		if err := rows.Scan(&variantsJSON, &selected); err != nil {
			return nil, fmt.Errorf("scan message node: %w", err)
		}
		var variants []map[string]any
		if err := json.Unmarshal([]byte(variantsJSON), &variants); err != nil {
			logger.L.Warn("skipping malformed message node", "conversation", conversationID, "error", err)
			continue
		}
		if msg, ok := message.Assemble(variants, selected); ok {
			msgs = append(msgs, *msg)
		}
	}
	return msgs, rows.Err()
}

// readMemories loads AI memory entries. The table does not exist in older
// backups, so every failure just yields no memories.
func readMemories(dbPath string) []model.Memory {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, assistant_id, content FROM MemoryEntity;`)
	if err != nil {
		logger.L.Debug("no MemoryEntity table", "error", err)
		return nil
	}
	defer rows.Close()

	var memories []model.Memory
	for rows.Next() {
		var m model.Memory
		if err := rows.Scan(&m.ID, &m.AssistantID, &m.Content); err == nil {
			memories = append(memories, m)
		}
	}
	return memories
}
