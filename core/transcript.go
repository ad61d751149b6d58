package core

import (
	"strings"

	"github.com/coderoom-dev/coderoom/schema"
)

// transcript stores terminal scrollback and scroll state. The final line is
// always a bare prompt except transiently between an echo and its response.
// ScrollOffset is the number of lines from the bottom; 0 means at bottom.
type transcript struct {
	lines        []string
	scrollOffset int
	maxLines     int
	prompt       string
}

func newTranscript(maxLines int, prompt string, welcome []string) *transcript {
	if maxLines <= 0 {
		maxLines = schema.DefaultTranscriptMaxLines
	}
	if prompt == "" {
		prompt = schema.DefaultPrompt
	}
	t := &transcript{maxLines: maxLines, prompt: prompt}
	t.lines = append(t.lines, welcome...)
	t.lines = append(t.lines, prompt)
	return t
}

// Echo replaces the trailing bare prompt with the echoed command line. A
// transcript that somehow lost its trailing prompt gets the echo appended
// instead, so the command is never dropped.
func (t *transcript) Echo(command string) []string {
	line := t.prompt + command
	if n := len(t.lines); n > 0 && t.lines[n-1] == t.prompt {
		t.lines[n-1] = line
		return []string{line}
	}
	t.append(line)
	return []string{line}
}

// Respond appends response lines followed by a fresh trailing prompt. With no
// lines it just restores the prompt after an echo.
func (t *transcript) Respond(lines ...string) []string {
	appended := make([]string, 0, len(lines)+1)
	appended = append(appended, lines...)
	appended = append(appended, t.prompt)
	t.append(appended...)
	return appended
}

// AppendRun records an execution block: the invocation line, its output, and
// a fresh prompt. A trailing bare prompt is consumed first so the block sits
// directly under the previous entry.
func (t *transcript) AppendRun(invocation string, outputs ...string) []string {
	if n := len(t.lines); n > 0 && t.lines[n-1] == t.prompt {
		t.lines = t.lines[:n-1]
	}
	appended := make([]string, 0, len(outputs)+2)
	appended = append(appended, invocation)
	appended = append(appended, outputs...)
	appended = append(appended, t.prompt)
	t.append(appended...)
	return appended
}

// Clear resets the transcript to a single bare prompt.
func (t *transcript) Clear() {
	t.lines = []string{t.prompt}
	t.scrollOffset = 0
}

// append adds lines, keeping a scrolled-up view anchored and trimming to the
// configured limit.
func (t *transcript) append(lines ...string) {
	if len(lines) == 0 {
		return
	}
	t.lines = append(t.lines, lines...)
	if t.scrollOffset > 0 {
		t.scrollOffset += len(lines)
	}
	if t.maxLines > 0 && len(t.lines) > t.maxLines {
		trim := len(t.lines) - t.maxLines
		t.lines = t.lines[trim:]
		if t.scrollOffset > len(t.lines) {
			t.scrollOffset = len(t.lines)
		}
		if t.scrollOffset < 0 {
			t.scrollOffset = 0
		}
	}
}

// Scroll adjusts the scroll offset by delta. Positive delta scrolls up (older
// lines), negative delta scrolls down. Limit is the viewport height.
func (t *transcript) Scroll(delta, limit int) {
	t.scrollOffset = clampScroll(t.scrollOffset+delta, len(t.lines), limit)
}

// Snapshot returns a view of the transcript for the given viewport limit.
func (t *transcript) Snapshot(limit int) schema.TranscriptSnapshot {
	total := len(t.lines)
	if limit <= 0 || limit > total {
		limit = total
	}

	max := maxScroll(total, limit)
	if t.scrollOffset > max {
		t.scrollOffset = max
	}

	end := total - t.scrollOffset
	if end < 0 {
		end = 0
	}
	start := end - limit
	if start < 0 {
		start = 0
	}

	lines := make([]schema.TranscriptLine, 0, end-start)
	for _, text := range t.lines[start:end] {
		lines = append(lines, t.line(text))
	}
	return schema.TranscriptSnapshot{
		Lines:        lines,
		TotalLines:   total,
		ScrollOffset: t.scrollOffset,
		AtBottom:     t.scrollOffset == 0,
	}
}

func (t *transcript) line(text string) schema.TranscriptLine {
	return schema.TranscriptLine{Text: text, Prompt: strings.HasPrefix(text, t.prompt)}
}

func (t *transcript) eventLines(texts []string) []schema.TranscriptLine {
	lines := make([]schema.TranscriptLine, 0, len(texts))
	for _, text := range texts {
		lines = append(lines, t.line(text))
	}
	return lines
}

func maxScroll(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	if total <= limit {
		return 0
	}
	return total - limit
}

func clampScroll(offset, total, limit int) int {
	max := maxScroll(total, limit)
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
