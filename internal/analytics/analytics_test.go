package analytics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLogWritesEventRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	e := NewLog(path)

	e.Event(EventEntryStart, zap.String("cohort", "female"), zap.String("ageBand", "25–34"))
	e.Event(EventResultView, zap.String("top1", "qixu"))

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 event lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("parse first event: %v", err)
	}
	if first["msg"] != EventEntryStart {
		t.Fatalf("expected event %q, got %v", EventEntryStart, first["msg"])
	}
	if first["cohort"] != "female" {
		t.Fatalf("expected cohort field, got %v", first)
	}
	if first["session"] == "" || first["session"] == nil {
		t.Fatalf("expected session id on every event, got %v", first)
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("parse second event: %v", err)
	}
	if second["session"] != first["session"] {
		t.Fatalf("expected stable session id, got %v vs %v", second["session"], first["session"])
	}
}

func TestNewLogFailureDegradesToNop(t *testing.T) {
	// A path whose parent is a regular file cannot be created.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	e := NewLog(filepath.Join(blocker, "events.log"))
	if _, ok := e.(Nop); !ok {
		t.Fatalf("expected Nop emitter, got %T", e)
	}
	// Emitting on the Nop must be harmless.
	e.Event(EventConsultClick)
}
