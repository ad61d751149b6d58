package core

import (
	"github.com/coderoom-dev/coderoom/internal/lang"
	"github.com/coderoom-dev/coderoom/schema"
)

// openBuffer is one editor tab: a path, its full text, and a language tag.
type openBuffer struct {
	path     schema.Path
	content  string
	language schema.Language
}

// bufferList keeps open buffers in opening order with at most one active.
type bufferList struct {
	items  []*openBuffer
	active int
}

func newBufferList() *bufferList {
	return &bufferList{active: -1}
}

func (l *bufferList) find(path schema.Path) (*openBuffer, int) {
	for i, buf := range l.items {
		if buf.path == path {
			return buf, i
		}
	}
	return nil, -1
}

// open activates the existing buffer for path, or appends a new one with the
// given content. Content is ignored when the buffer is already open.
func (l *bufferList) open(path schema.Path, content string) *openBuffer {
	if buf, i := l.find(path); buf != nil {
		l.active = i
		return buf
	}
	segments := schema.SplitPath(path)
	name := string(path)
	if len(segments) > 0 {
		name = segments[len(segments)-1]
	}
	buf := &openBuffer{path: path, content: content, language: lang.Classify(name)}
	l.items = append(l.items, buf)
	l.active = len(l.items) - 1
	return buf
}

// close removes the buffer for path. When the active buffer closes, focus
// falls to the first remaining buffer.
func (l *bufferList) close(path schema.Path) error {
	_, i := l.find(path)
	if i < 0 {
		return schema.ErrBufferNotFound
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	switch {
	case len(l.items) == 0:
		l.active = -1
	case l.active == i:
		l.active = 0
	case l.active > i:
		l.active--
	}
	return nil
}

func (l *bufferList) activate(path schema.Path) (*openBuffer, error) {
	buf, i := l.find(path)
	if buf == nil {
		return nil, schema.ErrBufferNotFound
	}
	l.active = i
	return buf, nil
}

func (l *bufferList) activeBuffer() (*openBuffer, bool) {
	if l.active < 0 || l.active >= len(l.items) {
		return nil, false
	}
	return l.items[l.active], true
}

func (l *bufferList) activePath() schema.Path {
	if buf, ok := l.activeBuffer(); ok {
		return buf.path
	}
	return ""
}

func (l *bufferList) snapshot() []schema.BufferSnapshot {
	out := make([]schema.BufferSnapshot, 0, len(l.items))
	for i, buf := range l.items {
		out = append(out, schema.BufferSnapshot{
			Path:     buf.path,
			Content:  buf.content,
			Language: buf.language,
			Active:   i == l.active,
		})
	}
	return out
}

func (b *openBuffer) snapshot(active bool) schema.BufferSnapshot {
	return schema.BufferSnapshot{
		Path:     b.path,
		Content:  b.content,
		Language: b.language,
		Active:   active,
	}
}
