package lspserver

import (
	"unicode/utf16"

	"go.lsp.dev/protocol"
)

// rangeToOffsets resolves an LSP Range (line/character, character
// counted in UTF-16 code units per the LSP spec) against text to a pair
// of byte offsets, the translation spec.md §6.4 calls out explicitly
// for incremental didChange application. go.lsp.dev/protocol only
// carries the wire-format Position/Range types, not a translator —
// unicode/utf16 is the standard library mechanism every Go LSP server
// uses for this (there is no third-party UTF-16 codec in the pack to
// reach for instead).
func rangeToOffsets(text string, r protocol.Range) (start, end int) {
	start = positionToOffset(text, r.Start)
	end = positionToOffset(text, r.End)
	return start, end
}

func positionToOffset(text string, pos protocol.Position) int {
	line := 0
	lineStart := 0
	for i, b := range []byte(text) {
		if line == int(pos.Line) {
			break
		}
		if b == '\n' {
			line++
			lineStart = i + 1
		}
	}
	if line < int(pos.Line) {
		return len(text)
	}
	lineEnd := len(text)
	for i := lineStart; i < len(text); i++ {
		if text[i] == '\n' {
			lineEnd = i
			break
		}
	}
	return lineStart + utf16OffsetToByteOffset(text[lineStart:lineEnd], int(pos.Character))
}

// utf16OffsetToByteOffset walks line, a single line of text with no
// line break, converting a UTF-16 code-unit count into a byte offset.
func utf16OffsetToByteOffset(line string, utf16Offset int) int {
	units := 0
	for i, r := range line {
		if units >= utf16Offset {
			return i
		}
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		units += n
	}
	return len(line)
}

// offsetToPosition converts a byte offset within text back into an LSP
// Position, the inverse of positionToOffset — used to report
// diagnostic/symbol ranges computed from byte-offset TextRanges back to
// the client.
func offsetToPosition(text string, offset int) protocol.Position {
	if offset > len(text) {
		offset = len(text)
	}
	line := uint32(0)
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	character := uint32(len(utf16.Encode([]rune(text[lineStart:offset]))))
	return protocol.Position{Line: line, Character: character}
}
