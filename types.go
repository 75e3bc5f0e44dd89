package main

import (
	"go.uber.org/zap"

	"paperfold/internal/paper"
	"paperfold/internal/silhouette"
)

type Buffer struct {
	session    *paper.Session
	silhouette int // index into model.catalog, -1 for none
	filename   string
	panX       int
	panY       int
}

type model struct {
	width              int
	height             int
	cursorX            int
	cursorY            int
	buffers            []Buffer
	currentBufferIndex int
	catalog            []*silhouette.Silhouette
	mode               Mode
	panMode            bool
	help               bool
	helpScroll         int
	showMaterial       bool
	gesture            gesture
	filename           string
	fileOp             FileOperation
	confirmAction      ConfirmAction
	errorMessage       string
	successMessage     string
	config             *Config
	log                *zap.Logger
}

// gesture is a drag in progress, in display coordinates.
type gesture struct {
	active bool
	mouse  bool
	from   paper.Vec2
	to     paper.Vec2
}
