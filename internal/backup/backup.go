// Package backup reads a RikkaHub backup zip into typed conversations.
//
// A backup contains settings.json (assistant names among other things) and
// rikka_hub.db, a sqlite database whose message_node rows store each turn's
// branch variants as a JSON array plus the selected index.
package backup

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rikkatools/rikkaview/internal/logger"
	"github.com/rikkatools/rikkaview/internal/model"
)

const defaultAssistantName = "默认助手"

// Parse extracts the backup zip to a temp dir, reads the settings and the
// database, and returns the parsed archive. The temp dir is removed before
// returning.
func Parse(zipPath string) (*model.Archive, error) {
	tmpDir, err := os.MkdirTemp("", "rikkaview-")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := extract(zipPath, tmpDir); err != nil {
		return nil, err
	}

	archive := &model.Archive{Assistants: map[string]string{}}

	settingsPath := filepath.Join(tmpDir, "settings.json")
	if data, err := os.ReadFile(settingsPath); err == nil {
		readAssistants(data, archive.Assistants)
	} else {
		logger.L.Debug("no settings.json in backup", "error", err)
	}

	dbPath := filepath.Join(tmpDir, "rikka_hub.db")
	if _, err := os.Stat(dbPath); err == nil {
		archive.Conversations, err = readConversations(dbPath)
		if err != nil {
			return nil, err
		}
		archive.Memories = readMemories(dbPath)
	} else {
		logger.L.Warn("backup contains no rikka_hub.db")
	}
	return archive, nil
}

func extract(zipPath, destDir string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open backup %s: %w", zipPath, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		name := filepath.Clean(f.Name)
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			continue
		}
		dest := filepath.Join(destDir, name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf("extract dir %s: %w", name, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("extract dir for %s: %w", name, err)
		}
		if err := extractFile(f, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(rc); err != nil {
		return fmt.Errorf("extract %s: %w", f.Name, err)
	}
	return nil
}

func readAssistants(data []byte, into map[string]string) {
	var settings struct {
		Assistants []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"assistants"`
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.L.Warn("settings.json unreadable", "error", err)
		return
	}
	for _, a := range settings.Assistants {
		name := a.Name
		if name == "" {
			name = defaultAssistantName
		}
		into[a.ID] = name
	}
}

// epochMillis formats a millisecond unix timestamp for display; zero stays
// empty.
func epochMillis(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05")
}
