package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"paperfold/internal/paper"
	"paperfold/internal/silhouette"
	"paperfold/internal/solution"
)

func (m *model) getCurrentBuffer() *Buffer {
	if len(m.buffers) == 0 {
		return nil
	}
	return &m.buffers[m.currentBufferIndex]
}

func (m *model) getSession() *paper.Session {
	if buf := m.getCurrentBuffer(); buf != nil {
		return buf.session
	}
	return nil
}

func (m *model) currentSilhouette() *silhouette.Silhouette {
	buf := m.getCurrentBuffer()
	if buf == nil || buf.silhouette < 0 || buf.silhouette >= len(m.catalog) {
		return nil
	}
	return m.catalog[buf.silhouette]
}

// cycleSilhouette steps through the catalog and a final "none" slot.
func (m *model) cycleSilhouette(step int) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	n := len(m.catalog) + 1
	i := (buf.silhouette + 1 + step) % n
	if i < 0 {
		i += n
	}
	buf.silhouette = i - 1
}

func (m *model) silhouetteIndex(name string) int {
	for i, s := range m.catalog {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func (m *model) addNewBuffer(silhouette int) {
	m.buffers = append(m.buffers, Buffer{
		session:    paper.NewSession(),
		silhouette: silhouette,
	})
	m.currentBufferIndex = len(m.buffers) - 1
}

func (m *model) closeBuffer() {
	if len(m.buffers) <= 1 {
		m.buffers[0] = Buffer{session: paper.NewSession(), silhouette: m.buffers[0].silhouette}
		m.currentBufferIndex = 0
		return
	}
	m.buffers = append(m.buffers[:m.currentBufferIndex], m.buffers[m.currentBufferIndex+1:]...)
	m.currentBufferIndex = max(m.currentBufferIndex-1, 0)
}

func (m *model) switchBuffer(step int) {
	if len(m.buffers) <= 1 {
		return
	}
	m.currentBufferIndex = (m.currentBufferIndex + step + len(m.buffers)) % len(m.buffers)
	m.gesture = gesture{}
}

func (m *model) renderBufferBar(width int) string {
	if len(m.buffers) <= 1 {
		return strings.Repeat(" ", width)
	}

	var bar strings.Builder
	bar.WriteString("Sheets: ")
	for i, buf := range m.buffers {
		if i > 0 {
			bar.WriteString(" | ")
		}
		name := buf.filename
		if name == "" {
			name = fmt.Sprintf("Sheet %d", i+1)
		}
		if i == m.currentBufferIndex {
			name = "[" + name + "]"
		}
		bar.WriteString(name)
	}

	s := bar.String()
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return string([]rune(s)[:width])
}

// copySolution puts the contest solution of the current sheet on the system
// clipboard and returns its size.
func (m *model) copySolution() (int, error) {
	sess := m.getSession()
	if sess == nil {
		return 0, fmt.Errorf("no sheet")
	}
	sol := solution.FromState(sess.Current())
	if err := clipboard.WriteAll(sol.String()); err != nil {
		return 0, fmt.Errorf("copy solution: %w", err)
	}
	return sol.Size(), nil
}
