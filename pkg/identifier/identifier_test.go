package identifier

import (
	"strings"
	"testing"
)

func TestNewFormat(t *testing.T) {
	id := New("mov")
	if !strings.HasPrefix(id, "mov_") {
		t.Fatalf("expected mov_ prefix, got %s", id)
	}
	if len(id) != len("mov_")+32 {
		t.Fatalf("unexpected length %d for %s", len(id), id)
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New("txn")
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate identifier %s", id)
		}
		seen[id] = struct{}{}
	}
}
