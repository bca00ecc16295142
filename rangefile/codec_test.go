package rangefile

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ranges"
	"github.com/npillmayer/ranges/interval"
)

func testMap(t *testing.T) ranges.MultiMap[int, string] {
	t.Helper()
	b := ranges.NewBuilder[int, string]()
	entries := []struct {
		iv interval.Interval[int]
		v  string
	}{
		{interval.Closed(1, 5), "a"},
		{interval.Closed(1, 5), "b"},
		{interval.Open(6, 8), "c"},
		{interval.GreaterThan(10), "d"},
		{interval.LessThan(0), "e"},
	}
	for _, e := range entries {
		if err := b.Put(e.iv, e.v); err != nil {
			t.Fatalf("Put(%s) failed: %v", e.iv, err)
		}
	}
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return m
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := testMap(t)
	var buf bytes.Buffer
	if err := Save(m, &buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load[int, string](&buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Equal(m) {
		t.Errorf("round trip changed the map:\nsaved  %s\nloaded %s", m, loaded)
	}
}

func TestSaveLoadEmptyMap(t *testing.T) {
	var m ranges.MultiMap[int, string]
	var buf bytes.Buffer
	if err := Save(m, &buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load[int, string](&buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.IsEmpty() {
		t.Errorf("expected empty map, got %s", loaded)
	}
}

func TestRoundTripOfSubRangeView(t *testing.T) {
	m := testMap(t).SubRangeMap(interval.Closed(3, 7))
	var buf bytes.Buffer
	if err := Save(m, &buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load[int, string](&buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Equal(m) {
		t.Errorf("view round trip changed content:\nsaved  %s\nloaded %s", m, loaded)
	}
}

func TestLoadRejectsCorruptStream(t *testing.T) {
	if _, err := Load[int, string](bytes.NewReader([]byte{0xc1, 0xff, 0x00})); !errors.Is(err, ErrCorruptEntry) {
		t.Fatalf("expected ErrCorruptEntry, got %v", err)
	}
	// A valid prefix cut short mid-entry must fail as well.
	var buf bytes.Buffer
	if err := Save(testMap(t), &buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	if _, err := Load[int, string](bytes.NewReader(truncated)); err == nil {
		t.Fatalf("expected error for truncated stream")
	}
}

func TestFileRoundTrip(t *testing.T) {
	m := testMap(t)
	path := filepath.Join(t.TempDir(), "spans.rmap")
	if err := SaveFile(m, path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	loaded, err := LoadFile[int, string](path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !loaded.Equal(m) {
		t.Errorf("file round trip changed the map")
	}
}

func TestLoadFileRejectsDirectory(t *testing.T) {
	if _, err := LoadFile[int, string](t.TempDir()); !errors.Is(err, ErrNotRegularFile) {
		t.Fatalf("expected ErrNotRegularFile, got %v", err)
	}
}

func TestStreamBroadcastsEveryEntry(t *testing.T) {
	m := testMap(t)
	var buf bytes.Buffer
	if err := Save(m, &buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	cast := caster.New(nil)
	ch, ok := cast.Sub(nil, 16)
	if !ok {
		t.Fatal("cannot subscribe to caster")
	}
	loaded, err := Stream[int, string](&buf, cast)
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}
	if !loaded.Equal(m) {
		t.Errorf("streamed map differs from saved map")
	}
	seen := 0
	for range ch { // caster closes the channel when the stream ends
		seen++
	}
	if seen != m.Size() {
		t.Errorf("expected %d broadcast entries, got %d", m.Size(), seen)
	}
}
