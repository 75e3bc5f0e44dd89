package paper

// Session is the folding history of one sheet: the current state, the undo
// stack and whether the sheet is shown turned over.
//
// A Session is not safe for concurrent use. Previews never modify it, so a
// caller may compute them freely between mutations.
type Session struct {
	current State
	history []State
	flipped bool
}

// NewSession returns a session holding the unfolded unit square.
func NewSession() *Session {
	return &Session{current: InitialState()}
}

// Current returns the committed state.
func (s *Session) Current() State { return s.current }

// HistoryDepth returns the number of states on the undo stack.
func (s *Session) HistoryDepth() int { return len(s.history) }

// Flipped reports whether the last operation turned the sheet over.
func (s *Session) Flipped() bool { return s.flipped }

// Preview returns the state a commit of the same gesture would produce,
// without modifying the session.
func (s *Session) Preview(cp0, cp1 Vec2) (State, error) {
	return Fold(s.current, cp0, cp1)
}

// Commit folds the current state along the gesture and pushes the previous
// state onto the undo stack. On error the session is left unchanged.
func (s *Session) Commit(cp0, cp1 Vec2) error {
	next, err := Fold(s.current, cp0, cp1)
	if err != nil {
		return err
	}
	s.history = append(s.history, s.current)
	s.current = next
	s.flipped = false
	return nil
}

// Flip turns the whole sheet over. Flipping again right away restores the
// saved state instead of mirroring a second time.
func (s *Session) Flip() {
	if s.flipped && len(s.history) > 0 {
		s.pop()
		s.flipped = false
		return
	}
	s.history = append(s.history, s.current)
	s.current = s.current.Mirror()
	s.flipped = true
}

// Undo restores the state before the last commit or flip. It reports whether
// there was anything to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	s.pop()
	return true
}

func (s *Session) pop() {
	last := len(s.history) - 1
	s.current = s.history[last]
	s.history[last] = nil
	s.history = s.history[:last]
}
