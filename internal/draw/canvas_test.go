package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFillCircleCoversCentreOnly(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600) // 0.1 columns and sub-pixel rows per unit
	c.FillCircle(400, 300, 50)

	if !c.Pixel(40, 30) {
		t.Fatal("centre pixel should be set")
	}
	if c.Pixel(0, 0) || c.Pixel(79, 59) {
		t.Fatal("corners should be empty")
	}
	if c.Pixel(40+6, 30) || c.Pixel(40, 30+6) {
		t.Fatal("pixels beyond the radius should be empty")
	}

	c.Clear()
	if c.Pixel(40, 30) {
		t.Fatal("Clear should reset pixels")
	}
}

func TestDrawCircleLeavesCentreEmpty(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.DrawCircle(400, 300, 100)
	if c.Pixel(40, 30) {
		t.Fatal("outline should not fill the centre")
	}
	if !c.Pixel(50, 30) || !c.Pixel(30, 30) {
		t.Fatal("outline should pass through the horizontal extremes")
	}
}

func TestRenderUsesHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(2, 1)
	c.SetFloat(0, 0) // top half of cell (1,1)
	c.SetFloat(1, 0)
	c.SetFloat(1, 1) // both halves of cell (2,1)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "\033[2;3H▀") {
		t.Fatalf("missing upper half block in %q", out)
	}
	if !strings.Contains(out, "\033[2;4H█") {
		t.Fatalf("missing full block in %q", out)
	}
}

func TestTerminalLogicalRoundTrip(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.SetOffset(5, 2)
	col, row := 41+c.OffsetCol(), 16+c.OffsetRow()
	x, y := c.TerminalToLogical(col, row)
	if x < 400 || x > 410 || y < 300 || y > 320 {
		t.Fatalf("TerminalToLogical = (%v, %v)", x, y)
	}
	gotCol, gotRow := c.LogicalToTerminal(x, y)
	if gotCol != 41 || gotRow != 16 {
		t.Fatalf("LogicalToTerminal = (%d, %d), want (41, 16)", gotCol, gotRow)
	}
}

func TestFitTermKeepsAspect(t *testing.T) {
	tests := []struct {
		name                     string
		termW, termH             int
		wantW, wantH, offC, offR int
	}{
		{"wide terminal", 200, 30, 80, 30, 60, 0},
		{"tall terminal", 80, 60, 80, 30, 0, 15},
		{"exact", 80, 30, 80, 30, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := FitTerm(tt.termW, tt.termH, 800, 600)
			if w != tt.wantW || h != tt.wantH || oc != tt.offC || or != tt.offR {
				t.Fatalf("FitTerm = %d,%d,%d,%d want %d,%d,%d,%d", w, h, oc, or, tt.wantW, tt.wantH, tt.offC, tt.offR)
			}
		})
	}
}

func TestChunkWriterAppliesOffset(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 3, 2)
	cw.WriteAt(1, 1, "Score: 7")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\033[3;4HScore: 7" {
		t.Fatalf("output = %q", got)
	}
}
