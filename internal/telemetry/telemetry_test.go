package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestEmitter_WritesJSONL(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "events.jsonl")

	e, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	events := []Event{
		{Kind: KindQueryIssued, Query: "funny and light"},
		{Kind: KindListMutation, List: "towatch", Data: float64(296)},
	}
	for _, evt := range events {
		if err := e.Emit(evt); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening log: %v", err)
	}
	defer f.Close()

	var got []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var evt Event
		if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
			t.Fatalf("line not valid JSON: %v", err)
		}
		got = append(got, evt)
	}

	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if got[i].Kind != events[i].Kind {
			t.Errorf("event %d kind = %q, want %q", i, got[i].Kind, events[i].Kind)
		}
		if got[i].Timestamp.IsZero() {
			t.Errorf("event %d has zero timestamp", i)
		}
	}
}

func TestEmitter_NilIsNoOp(t *testing.T) {
	t.Parallel()
	var e *Emitter
	if err := e.Emit(Event{Kind: KindQueryDone}); err != nil {
		t.Errorf("nil Emit = %v, want nil", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("nil Close = %v, want nil", err)
	}
}

func TestEmitter_Appends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "events.jsonl")

	for i := 0; i < 2; i++ {
		e, err := NewEmitter(path)
		if err != nil {
			t.Fatalf("NewEmitter: %v", err)
		}
		if err := e.Emit(Event{Kind: KindScreenChanged}); err != nil {
			t.Fatalf("Emit: %v", err)
		}
		if err := e.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("got %d lines, want 2", lines)
	}
}
