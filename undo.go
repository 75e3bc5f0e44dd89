package main

import (
	"errors"

	"go.uber.org/zap"

	"paperfold/internal/paper"
)

func (m *model) undo() {
	sess := m.getSession()
	if sess == nil || !sess.Undo() {
		return
	}
	m.errorMessage = ""
	m.log.Info("undo",
		zap.Int("facets", len(sess.Current())),
		zap.Int("depth", sess.HistoryDepth()))
}

func (m *model) flip() {
	sess := m.getSession()
	if sess == nil {
		return
	}
	sess.Flip()
	m.errorMessage = ""
	m.log.Info("flip",
		zap.Bool("flipped", sess.Flipped()),
		zap.Int("depth", sess.HistoryDepth()))
}

// commitFold applies a finished gesture. A gesture of zero length does
// nothing; a fold the sheet cannot take is reported and leaves it unchanged.
func (m *model) commitFold(from, to paper.Vec2) {
	sess := m.getSession()
	if sess == nil {
		return
	}
	err := sess.Commit(from, to)
	switch {
	case errors.Is(err, paper.ErrDegenerateGesture):
		return
	case err != nil:
		m.errorMessage = err.Error()
		m.log.Warn("fold rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Error(err))
		return
	}
	m.errorMessage = ""
	m.successMessage = ""
	m.log.Info("fold",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("facets", len(sess.Current())),
		zap.Int("depth", sess.HistoryDepth()))
}

// displayState is the state to draw: the preview of the gesture in progress
// when there is one and it folds, the current state otherwise.
func (m *model) displayState() paper.State {
	sess := m.getSession()
	if sess == nil {
		return nil
	}
	if m.gesture.active {
		if s, err := sess.Preview(m.gesture.from, m.gesture.to); err == nil {
			return s
		}
	}
	return sess.Current()
}
