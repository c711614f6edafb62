package chunker

import (
	"strings"

	"studyrag/internal/domain"
)

// WindowChunker splits text into overlapping character windows. Each chunk
// after the first starts window-overlap characters after the previous
// chunk's start, so consecutive chunks share context across the boundary.
// Chunk ends prefer a structural break near the window edge: paragraph,
// then sentence, then word, falling back to a hard cut.
type WindowChunker struct {
	window  int
	overlap int
}

func NewWindowChunker(window, overlap int) *WindowChunker {
	if window <= 0 {
		window = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= window {
		overlap = window / 5
	}
	return &WindowChunker{window: window, overlap: overlap}
}

func (c *WindowChunker) Chunk(sourceID, text string) []domain.Chunk {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	runes := []rune(trimmed)
	if len(runes) <= c.window {
		return []domain.Chunk{{SourceID: sourceID, Text: trimmed}}
	}

	step := c.window - c.overlap
	var chunks []domain.Chunk

	for start := 0; start < len(runes); start += step {
		end := start + c.window
		if end >= len(runes) {
			end = len(runes)
		} else {
			// The break point never moves below start+step, so the region
			// between this chunk's end and the next chunk's start is always
			// covered by one of the two.
			end = c.breakPoint(runes, start+step, end)
		}

		piece := strings.TrimSpace(string(runes[start:end]))
		if piece != "" {
			chunks = append(chunks, domain.Chunk{SourceID: sourceID, Text: piece})
		}

		if end == len(runes) {
			break
		}
	}

	return chunks
}

// breakPoint picks a cut position in (minEnd, hardEnd] preferring paragraph,
// then sentence, then word boundaries.
func (c *WindowChunker) breakPoint(runes []rune, minEnd, hardEnd int) int {
	for i := hardEnd - 1; i > minEnd; i-- {
		if runes[i] == '\n' && runes[i-1] == '\n' {
			return i - 1
		}
	}

	for i := hardEnd - 1; i > minEnd; i-- {
		if isSpace(runes[i]) && isSentenceEnd(runes[i-1]) {
			// Cut after the terminating punctuation.
			return i
		}
	}

	for i := hardEnd - 1; i > minEnd; i-- {
		if isSpace(runes[i]) {
			return i
		}
	}

	return hardEnd
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func (c *WindowChunker) Window() int  { return c.window }
func (c *WindowChunker) Overlap() int { return c.overlap }
