package tui

import (
	"os"
	"strings"
	"sync/atomic"
)

// Some terminal fonts render the chevrons poorly; DTPICK_TUI_GLYPHS=ascii
// swaps them for plain ASCII.

type glyphSet int32

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

type glyphTable struct {
	prev, next, step string
}

var (
	currentGlyphs atomic.Int32

	glyphTables = [...]glyphTable{
		glyphSetUnicode: {prev: "‹", next: "›", step: "±"},
		glyphSetASCII:   {prev: "<", next: ">", step: "+/-"},
	}
)

func applyGlyphPreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DTPICK_TUI_GLYPHS"))) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) { currentGlyphs.Store(int32(gs)) }

func glyphs() glyphSet { return glyphSet(currentGlyphs.Load()) }

func currentGlyphTable() glyphTable {
	gs := glyphs()
	if gs < 0 || int(gs) >= len(glyphTables) {
		gs = glyphSetUnicode
	}
	return glyphTables[gs]
}

func glyphPrev() string { return currentGlyphTable().prev }
func glyphNext() string { return currentGlyphTable().next }

// glyphStep marks the step line under the clock.
func glyphStep() string { return currentGlyphTable().step }
