package backup

import (
	"archive/zip"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/glebarez/go-sqlite"
	"github.com/stretchr/testify/require"

	"github.com/rikkatools/rikkaview/internal/model"
)

const variantsJSON = `[
  {"role":"user","parts":[{"text":"hello"}],"createdAt":"2025-01-01T08:00:00Z"},
  {"role":"user","parts":[{"text":"hello, edited"}],"createdAt":"2025-01-01T08:01:00Z"}
]`

// writeBackupZip builds a minimal but realistic backup: settings.json plus a
// sqlite database with one pinned conversation, two message nodes and one
// memory entry.
func writeBackupZip(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	dbPath := filepath.Join(dir, "rikka_hub.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)

	stmts := []string{
		`CREATE TABLE ConversationEntity (
			id TEXT PRIMARY KEY, assistant_id TEXT, title TEXT,
			create_at INTEGER, update_at INTEGER,
			truncate_index INTEGER, suggestions TEXT, is_pinned INTEGER);`,
		`CREATE TABLE message_node (
			id TEXT PRIMARY KEY, conversation_id TEXT, node_index INTEGER,
			messages TEXT, select_index INTEGER);`,
		`CREATE TABLE MemoryEntity (id INTEGER PRIMARY KEY, assistant_id TEXT, content TEXT);`,
		// 1735689600000 = 2025-01-01 00:00:00 UTC
		`INSERT INTO ConversationEntity VALUES
			('conv-1', 'asst-1', 'Testing', 1735689600000, 1735776000000, 0, '', 1);`,
		`INSERT INTO message_node VALUES
			('node-1', 'conv-1', 0, '` + variantsJSON + `', 1);`,
		`INSERT INTO message_node VALUES
			('node-2', 'conv-1', 1, '[{"role":"assistant","parts":[{"text":"hi there"}]}]', 0);`,
		`INSERT INTO message_node VALUES
			('node-3', 'conv-1', 2, 'not json at all', 0);`,
		`INSERT INTO MemoryEntity VALUES (1, 'asst-1', 'likes go');`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	zipPath := filepath.Join(dir, "backup.zip")
	zf, err := os.Create(zipPath)
	require.NoError(t, err)
	zw := zip.NewWriter(zf)

	w, err := zw.Create("settings.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(`{"assistants":[{"id":"asst-1","name":"Tester"},{"id":"asst-2","name":""}]}`))
	require.NoError(t, err)

	w, err = zw.Create("rikka_hub.db")
	require.NoError(t, err)
	data, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	require.NoError(t, zf.Close())
	return zipPath
}

func TestParse_FullBackup(t *testing.T) {
	archive, err := Parse(writeBackupZip(t))
	require.NoError(t, err)

	require.Equal(t, "Tester", archive.Assistants["asst-1"])
	require.Equal(t, defaultAssistantName, archive.Assistants["asst-2"])

	require.Len(t, archive.Conversations, 1)
	conv := archive.Conversations[0]
	require.Equal(t, "conv-1", conv.ID)
	require.Equal(t, "Testing", conv.Title)
	require.True(t, conv.Pinned)
	require.Equal(t, "2025-01-01 00:00:00", conv.CreateAt)
	require.Equal(t, "2025-01-02 00:00:00", conv.UpdateAt)

	// The malformed node is skipped; both valid nodes survive in order.
	require.Len(t, conv.Messages, 2)
	first := conv.Messages[0]
	require.Equal(t, "user", first.Role)
	require.Equal(t, 2, first.BranchCount)
	require.Equal(t, 1, first.BranchIndex)
	require.Equal(t, model.TextPart{Text: "hello, edited"}, first.Parts[0])

	second := conv.Messages[1]
	require.Equal(t, "assistant", second.Role)
	require.Equal(t, 1, second.BranchCount)

	require.Len(t, archive.Memories, 1)
	require.Equal(t, "likes go", archive.Memories[0].Content)
}

func TestParse_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.zip")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a zip"), 0o644))
	_, err := Parse(path)
	require.Error(t, err)
}

func TestParse_MissingDatabase(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "empty.zip")
	zf, err := os.Create(zipPath)
	require.NoError(t, err)
	zw := zip.NewWriter(zf)
	w, err := zw.Create("settings.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(`{"assistants":[]}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, zf.Close())

	archive, err := Parse(zipPath)
	require.NoError(t, err)
	require.Empty(t, archive.Conversations)
	require.Empty(t, archive.Memories)
}

func TestEpochMillis(t *testing.T) {
	require.Equal(t, "", epochMillis(0))
	require.Equal(t, "2025-01-01 00:00:00", epochMillis(1735689600000))
}
