package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeGesture
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveSolution
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmNewSheet
	ConfirmCloseBuffer
	ConfirmOverwriteFile
)

const (
	// viewSpan is the height of display space shown in the folded pane.
	viewSpan = 2.0
	// viewTop is the display y coordinate of the top row.
	viewTop = 1.5
	// cellAspect is how much taller a terminal cell is than it is wide.
	cellAspect = 2.0
	// materialMargin pads the unit square in the material pane.
	materialMargin = 0.1
)
