package main

import "paperfold/internal/paper"

func (m *model) handleNavigation(key string, speed int) {
	if m.panMode {
		m.handlePan(key, speed)
		return
	}
	m.handleCursorMove(key, speed)
}

func (m *model) handlePan(key string, speed int) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	switch key {
	case "h", "left", "H", "shift+left":
		buf.panX -= speed
	case "l", "right", "L", "shift+right":
		buf.panX += speed
	case "k", "up", "K", "shift+up":
		buf.panY -= speed
	case "j", "down", "J", "shift+down":
		buf.panY += speed
	}
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	if m.gesture.active && !m.gesture.mouse {
		m.gesture.to = m.cursorPlane()
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	vp, _ := m.layout()
	m.cursorX = min(max(m.cursorX, 0), vp.cols-1)
	m.cursorY = min(max(m.cursorY, 0), vp.rows-1)
}

// cursorPlane returns the display position under the keyboard cursor.
func (m *model) cursorPlane() paper.Vec2 {
	vp, _ := m.layout()
	return vp.toPlane(m.cursorX, m.cursorY)
}

// layout returns the folded pane viewport and the screen row it starts on.
func (m *model) layout() (viewport, int) {
	top := 0
	if len(m.buffers) > 1 {
		top = 1
	}
	cols, _ := m.paneWidths()
	rows := max(m.height-1-top, 1)
	panX, panY := 0, 0
	if buf := m.getCurrentBuffer(); buf != nil {
		panX, panY = buf.panX, buf.panY
	}
	return foldedViewport(cols, rows, panX, panY), top
}

// paneWidths splits the screen between the folded pane and, when shown, the
// material pane. A zero material width means the pane is hidden.
func (m *model) paneWidths() (int, int) {
	width := max(m.width, 1)
	if !m.showMaterial || width < 24 {
		return width, 0
	}
	right := width / 3
	return width - right - 1, right
}
