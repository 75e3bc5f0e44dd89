package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"paperfold/internal/paper"
	"paperfold/internal/silhouette"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

func initialModel(config *Config, log *zap.Logger, catalog []*silhouette.Silhouette) model {
	if config == nil {
		config = defaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	m := model{
		catalog:      catalog,
		mode:         ModeNormal,
		showMaterial: config.ShowMaterial,
		config:       config,
		log:          log,
	}
	m.addNewBuffer(m.silhouetteIndex(config.Silhouette))
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			return m, m.handleHelpKey(msg.String())
		}
		switch m.mode {
		case ModeGesture:
			m.handleGestureKey(msg.String())
			return m, nil
		case ModeFileInput:
			m.handleFileInputKey(msg)
			return m, nil
		case ModeConfirm:
			return m, m.handleConfirmKey(msg.String())
		default:
			return m, m.handleNormalKey(msg.String())
		}
	}
	return m, nil
}

// handleMouse turns a drag in the folded pane into a fold: the press picks
// the first point, motion previews, the release commits.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.help || (m.mode != ModeNormal && m.mode != ModeGesture) {
		return
	}
	vp, top := m.layout()
	col, row := msg.X, msg.Y-top
	at := vp.toPlane(col, row)

	switch msg.Type {
	case tea.MouseLeft:
		if m.gesture.active && m.gesture.mouse {
			m.gesture.to = at
			return
		}
		if !vp.contains(col, row) {
			return
		}
		m.gesture = gesture{active: true, mouse: true, from: at, to: at}
		m.mode = ModeGesture
	case tea.MouseMotion:
		if m.gesture.active && m.gesture.mouse {
			m.gesture.to = at
		}
	case tea.MouseRelease:
		if !m.gesture.active || !m.gesture.mouse {
			return
		}
		m.gesture.to = at
		m.commitFold(m.gesture.from, m.gesture.to)
		m.gesture = gesture{}
		m.mode = ModeNormal
	}
}

func (m *model) handleHelpKey(key string) tea.Cmd {
	switch key {
	case "ctrl+c":
		return tea.Quit
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return nil
}

func (m *model) handleNormalKey(key string) tea.Cmd {
	switch key {
	case "ctrl+c", "q":
		if sess := m.getSession(); m.config.Confirmations && sess != nil && sess.HistoryDepth() > 0 {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return nil
		}
		return tea.Quit
	case "esc":
		m.panMode = false
		m.errorMessage = ""
		m.successMessage = ""
	case "?":
		m.help = true
	case "z":
		m.panMode = !m.panMode
	case " ":
		at := m.cursorPlane()
		m.gesture = gesture{active: true, from: at, to: at}
		m.mode = ModeGesture
	case "f":
		m.flip()
	case "u":
		m.undo()
	case "t":
		m.cycleSilhouette(1)
	case "T":
		m.cycleSilhouette(-1)
	case "m":
		m.showMaterial = !m.showMaterial
		m.ensureCursorInBounds()
	case "s":
		m.startFileInput(FileOpSavePNG)
	case "w":
		m.startFileInput(FileOpSaveSolution)
	case "y":
		n, err := m.copySolution()
		if err != nil {
			m.errorMessage = err.Error()
			m.log.Warn("clipboard", zap.Error(err))
			return nil
		}
		m.errorMessage = ""
		m.successMessage = fmt.Sprintf("Copied solution (%d chars)", n)
	case "n":
		m.requestConfirm(ConfirmNewSheet)
	case "N":
		sil := -1
		if buf := m.getCurrentBuffer(); buf != nil {
			sil = buf.silhouette
		}
		m.addNewBuffer(sil)
		m.ensureCursorInBounds()
	case "x":
		m.requestConfirm(ConfirmCloseBuffer)
	case "{":
		m.switchBuffer(-1)
	case "}":
		m.switchBuffer(1)
	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return nil
}

// handleGestureKey drives a keyboard gesture anchored with space.
func (m *model) handleGestureKey(key string) {
	if m.gesture.mouse {
		if key == "esc" {
			m.gesture = gesture{}
			m.mode = ModeNormal
		}
		return
	}
	switch key {
	case "esc":
		m.gesture = gesture{}
		m.mode = ModeNormal
	case "enter", " ":
		m.commitFold(m.gesture.from, m.gesture.to)
		m.gesture = gesture{}
		m.mode = ModeNormal
	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	}
}

func (m *model) requestConfirm(action ConfirmAction) {
	if !m.config.Confirmations {
		m.confirm(action)
		return
	}
	m.mode = ModeConfirm
	m.confirmAction = action
}

func (m *model) handleConfirmKey(key string) tea.Cmd {
	switch key {
	case "y", "Y":
		if m.confirmAction == ConfirmQuit {
			return tea.Quit
		}
		m.mode = ModeNormal
		m.confirm(m.confirmAction)
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else {
			m.mode = ModeNormal
		}
	}
	return nil
}

func (m *model) confirm(action ConfirmAction) {
	switch action {
	case ConfirmNewSheet:
		if buf := m.getCurrentBuffer(); buf != nil {
			*buf = Buffer{session: paper.NewSession(), silhouette: buf.silhouette}
		}
		m.errorMessage = ""
		m.successMessage = ""
	case ConfirmCloseBuffer:
		m.closeBuffer()
		m.errorMessage = ""
		m.successMessage = ""
	case ConfirmOverwriteFile:
		m.save(m.config.GetSavePath(m.filename))
	}
	m.ensureCursorInBounds()
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.errorMessage = ""
	m.successMessage = ""
	name := "sheet"
	if buf := m.getCurrentBuffer(); buf != nil && buf.filename != "" {
		name = buf.filename
	}
	m.filename = name + m.fileExt()
}

func (m *model) fileExt() string {
	if m.fileOp == FileOpSavePNG {
		return ".png"
	}
	return ".txt"
}

func (m *model) handleFileInputKey(msg tea.KeyMsg) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
	case msg.Type == tea.KeyEnter:
		name := strings.TrimSpace(m.filename)
		if name == "" {
			m.errorMessage = "Filename cannot be empty"
			return
		}
		if filepath.Ext(name) == "" {
			name += m.fileExt()
		}
		m.filename = name
		path := m.config.GetSavePath(name)
		if _, err := os.Stat(path); err == nil && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			m.errorMessage = err.Error()
			return
		}
		m.save(path)
	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			r := []rune(m.filename)
			m.filename = string(r[:len(r)-1])
		}
	default:
		if key := msg.String(); len([]rune(key)) == 1 {
			m.filename += key
		}
	}
}

// save writes the current sheet as an image or a solution, depending on the
// pending file operation.
func (m *model) save(path string) {
	sess := m.getSession()
	if sess == nil {
		return
	}
	var err error
	switch m.fileOp {
	case FileOpSavePNG:
		err = exportPNG(path, sess.Current(), m.currentSilhouette(), m.config.PNGSize)
	case FileOpSaveSolution:
		err = writeSolution(path, sess.Current())
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("Error saving file: %s", err)
		m.mode = ModeFileInput
		m.log.Error("save failed", zap.String("path", path), zap.Error(err))
		return
	}
	if buf := m.getCurrentBuffer(); buf != nil {
		buf.filename = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	abs, _ := filepath.Abs(path)
	m.successMessage = fmt.Sprintf("Saved to %s", abs)
	m.errorMessage = ""
	m.mode = ModeNormal
	m.filename = ""
	m.log.Info("saved", zap.String("path", abs))
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	vp, _ := m.layout()
	_, materialCols := m.paneWidths()
	state := m.displayState()

	grid := foldedGrid(vp, state, m.currentSilhouette())
	if m.gesture.active {
		mark(grid, vp, m.gesture.from, '●', cellMarker)
		mark(grid, vp, m.gesture.to, '●', cellMarker)
	}
	if !m.gesture.mouse && vp.contains(m.cursorX, m.cursorY) {
		grid[m.cursorY][m.cursorX] = cell{'┼', cellCursor}
	}
	lines := renderGrid(grid)
	if materialCols > 0 {
		mvp := materialViewport(materialCols, vp.rows)
		lines = joinPanes(lines, renderGrid(materialGrid(mvp, state)))
	}

	var result strings.Builder
	if len(m.buffers) > 1 {
		result.WriteString(m.renderBufferBar(max(m.width, 1)))
		result.WriteString("\n")
	}
	result.WriteString(strings.Join(lines, "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeFileInput:
		op := "Export PNG"
		if m.fileOp == FileOpSaveSolution {
			op = "Write solution"
		}
		status := fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", op, m.filename)
		if m.errorMessage != "" {
			status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
		}
		return status
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit paperfold? (y/n)"
		case ConfirmNewSheet:
			message = "Start a new sheet? All folds will be lost. (y/n)"
		case ConfirmCloseBuffer:
			message = "Close current sheet? All folds will be lost. (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	}

	sess := m.getSession()
	mode := m.modeString()
	if m.panMode {
		mode = "PAN"
	}
	status := fmt.Sprintf("Mode: %s | Facets: %d | Undo: %d", mode, len(sess.Current()), sess.HistoryDepth())
	if sess.Flipped() {
		status += " | Flipped"
	}
	if sil := m.currentSilhouette(); sil != nil {
		status += " | Target: " + sil.Name
	}
	if m.mode == ModeGesture {
		status += fmt.Sprintf(" | %v → %v", m.gesture.from, m.gesture.to)
	}
	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + successStyle.Render(m.successMessage)
	default:
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeGesture:
		return "FOLD"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		titleStyle.Render("paperfold help"),
		"==============",
		"",
		"Folding:",
		"--------",
		"  mouse drag       Press on the sheet, drag, release to fold.",
		"                   The crease is the perpendicular bisector of the drag;",
		"                   the paper under the press point is folded over.",
		"  space            Anchor a fold at the cursor",
		"  h/j/k/l, arrows  Move the cursor (and the loose end of an anchored fold)",
		"  Shift+h/j/k/l    Move faster",
		"  enter            Commit the anchored fold",
		"  esc              Cancel the fold in progress",
		"  f                Turn the whole sheet over (press again to turn it back)",
		"  u                Undo the last fold or turn",
		"",
		"View:",
		"-----",
		"  z                Toggle pan mode (h/j/k/l then move the view)",
		"  m                Show/hide the unfolded sheet with its creases",
		"  t / T            Next / previous target silhouette",
		"",
		"  █ front   ▒ back   ▓ crease   ░ uncovered target   ● fold points",
		"",
		"Files:",
		"------",
		"  s                Export both views as PNG",
		"  w                Write the solution file",
		"  y                Copy the solution to the clipboard",
		"",
		"Sheets:",
		"-------",
		"  n                Start over on the current sheet",
		"  N                Open a new sheet",
		"  x                Close the current sheet",
		"  { / }            Previous / next sheet",
		"",
		"General:",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit",
	}

	visibleHeight := max(m.height-1, 1)
	startLine := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result
}
