package rangefmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ranges"
	"github.com/npillmayer/ranges/interval"
)

func testMap(t *testing.T) ranges.MultiMap[int, string] {
	t.Helper()
	b := ranges.NewBuilder[int, string]()
	puts := []struct {
		iv interval.Interval[int]
		v  string
	}{
		{interval.Closed(1, 5), "a"},
		{interval.Closed(1, 5), "b"},
		{interval.Open(6, 8), "c"},
	}
	for _, p := range puts {
		if err := b.Put(p.iv, p.v); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return m
}

func TestOutputOneEntryPerLine(t *testing.T) {
	color.NoColor = true // deterministic output without a terminal
	var buf bytes.Buffer
	if err := Output(testMap(t), &buf, &Config{}, nil); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "[1‥5]=[a b]" || lines[1] != "(6‥8)=[c]" {
		t.Errorf("unexpected rendering: %q", lines)
	}
}

func TestOutputClipsLongValueLists(t *testing.T) {
	color.NoColor = true
	b := ranges.NewBuilder[int, string]()
	for i := 0; i < 20; i++ {
		if err := b.Put(interval.Closed(1, 5), "value"); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Output(m, &buf, &Config{LineWidth: 30}, nil); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	line := strings.TrimRight(buf.String(), "\n")
	if got := len([]rune(line)); got > 30 {
		t.Errorf("line exceeds width 30: %d runes, %q", got, line)
	}
	if !strings.HasSuffix(line, "…") {
		t.Errorf("clipped line should end in ellipsis, got %q", line)
	}
}

func TestLineWidthLeavesTerminalMargin(t *testing.T) {
	cases := []struct {
		terminal, want int
	}{
		{120, 110}, // wide terminals keep a 10-column margin
		{66, 56},
		{65, 60}, // medium terminals keep a 5-column margin
		{31, 26},
		{30, 30}, // narrow terminals are used in full
		{11, 11},
		{10, 10}, // floor
		{3, 10},
	}
	for _, c := range cases {
		if got := lineWidthFor(c.terminal); got != c.want {
			t.Errorf("terminal width %d: expected line width %d, got %d", c.terminal, c.want, got)
		}
	}
}

func TestOutputEmptyMap(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	var m ranges.MultiMap[int, string]
	if err := Output(m, &buf, &Config{}, nil); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty map should print nothing, got %q", buf.String())
	}
}
