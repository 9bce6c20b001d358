package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/console-caster/render"
)

func TestAnsiColor(t *testing.T) {
	tests := []struct {
		index uint8
		want  int
	}{
		{0x0, 0},
		{0x1, 4},  // blue
		{0x2, 2},  // green
		{0x4, 1},  // red
		{0x6, 3},  // yellow
		{0x7, 7},  // silver
		{0x8, 60}, // gray
		{0xC, 61}, // bright red
		{0xF, 67}, // white
	}
	for _, tt := range tests {
		if got := ansiColor(tt.index); got != tt.want {
			t.Errorf("ansiColor(%#x) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestWriteANSI(t *testing.T) {
	fb := render.NewFrameBuffer(3, 2)
	fb.SetCell(0, 0, 'a', 0x40)
	fb.SetCell(1, 0, 'b', 0x40)
	fb.SetCell(2, 0, 'c', 0x1F)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeANSI(w, fb)
	w.Flush()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	want := "\x1b[30;41mab\x1b[97;44mc" + ansiReset
	if lines[0] != want {
		t.Errorf("row 0 = %q, want %q", lines[0], want)
	}
	// A cleared row is one style run of blanks
	if got := strings.Count(lines[1], "\x1b["); got != 2 {
		t.Errorf("row 1 has %d escapes, want style + reset", got)
	}
}
