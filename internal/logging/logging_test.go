package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogPathPrefersXDGStateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	path, err := resolveLogPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join("/tmp/state", "jaskfocus", "log.jsonl") {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestNewWritesJSONLines(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	rt, err := New()
	if err != nil {
		t.Fatal(err)
	}
	rt.Logger.Info("timer started", "mode", "work")
	if err := rt.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(rt.Path)
	if err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(string(data))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, line)
	}
	if entry["msg"] != "timer started" || entry["mode"] != "work" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
