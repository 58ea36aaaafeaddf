package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "bottube:limit=10", want: "bottube_limit_10"},
		{key: "../../etc/passwd", want: "etc/passwd"},
		{key: "a//b", want: "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := normalizeKey(tt.key); got != tt.want {
				t.Errorf("normalizeKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetOrSet(t *testing.T) {
	c := New[[]map[string]any]("test")
	if err := c.SetDir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	calls := 0
	fetch := func() ([]map[string]any, error) {
		calls++
		return []map[string]any{{"id": "1", "tags": []any{"a", "b"}, "meta": map[string]any{"n": 1.0}}}, nil
	}

	first, err := c.GetOrSet("moltbook", fetch, false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.GetOrSet("moltbook", fetch, false)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached value mismatch (-first +second):\n%s", diff)
	}

	if _, err := c.GetOrSet("moltbook", fetch, true); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("forced update did not refetch, calls = %d", calls)
	}
}

func TestGetOrSetExpires(t *testing.T) {
	c := New[string]("test")
	if err := c.SetDir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "v", nil
	}

	c.GetOrSet("k", fetch, false)
	now = now.Add(DefaultTTL + time.Second)
	c.GetOrSet("k", fetch, false)
	if calls != 2 {
		t.Errorf("expired entry was served, calls = %d", calls)
	}
}

func TestGetOrSetDoesNotCacheErrors(t *testing.T) {
	c := New[string]("test")
	if err := c.SetDir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrSet("k", func() (string, error) { return "", boom }, false); !errors.Is(err, boom) {
		t.Fatalf("GetOrSet() error = %v, want %v", err, boom)
	}
	got, err := c.GetOrSet("k", func() (string, error) { return "ok", nil }, false)
	if err != nil || got != "ok" {
		t.Errorf("GetOrSet() = %q, %v", got, err)
	}
}
