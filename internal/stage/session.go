package stage

import "errors"

// Payload is the immutable handoff from one stage to the next: the prompt
// text accumulated so far, and the predecessor's surface snapshot when one
// exists. Owned by the transition, consumed exactly once by the receiver.
type Payload struct {
	promptText string
	snapshot   []byte
}

func NewPayload(promptText string, snapshot []byte) Payload {
	p := Payload{promptText: promptText}
	if len(snapshot) > 0 {
		p.snapshot = make([]byte, len(snapshot))
		copy(p.snapshot, snapshot)
	}
	return p
}

// PromptText returns the accumulated prompt, to be used verbatim.
func (p Payload) PromptText() string { return p.promptText }

// Snapshot returns a copy of the snapshot bytes, or nil when absent.
func (p Payload) Snapshot() []byte {
	if p.snapshot == nil {
		return nil
	}
	out := make([]byte, len(p.snapshot))
	copy(out, p.snapshot)
	return out
}

// HasSnapshot reports whether a snapshot travelled with the payload.
func (p Payload) HasSnapshot() bool { return len(p.snapshot) > 0 }

// ErrWorkflowDone is returned by Advance past the last stage.
var ErrWorkflowDone = errors.New("stage: workflow already at final stage")

// Session walks a user through the stage sequence, carrying the handoff
// payload across transitions. The pending payload is handed out once: a
// back-and-forward re-entry cannot hydrate the same snapshot twice.
type Session struct {
	stages  []Config
	idx     int
	text    string
	pending *Payload
}

func NewSession() *Session {
	return &Session{stages: Sequence()}
}

// Stage returns the active stage's configuration.
func (s *Session) Stage() Config { return s.stages[s.idx] }

// Index returns the zero-based position of the active stage.
func (s *Session) Index() int { return s.idx }

// Total returns the number of stages.
func (s *Session) Total() int { return len(s.stages) }

// AtEnd reports whether the active stage is the last one.
func (s *Session) AtEnd() bool { return s.idx == len(s.stages)-1 }

// Text returns the accumulated prompt text.
func (s *Session) Text() string { return s.text }

// SetText replaces the accumulated prompt text with the active stage's
// current composition state.
func (s *Session) SetText(text string) { s.text = text }

// Advance completes the active stage: it builds the handoff payload from
// the given composition state and surface snapshot, stores it for the next
// stage, and moves forward.
func (s *Session) Advance(text string, snapshot []byte) error {
	if s.AtEnd() {
		return ErrWorkflowDone
	}
	s.text = text
	p := NewPayload(text, snapshot)
	s.pending = &p
	s.idx++
	return nil
}

// Back returns to the previous stage. No payload is produced; the earlier
// stage keeps whatever content it already has.
func (s *Session) Back() bool {
	if s.idx == 0 {
		return false
	}
	s.idx--
	return true
}

// TakePayload hands out the pending payload exactly once. The receiving
// stage seeds its text field from it verbatim and, if a snapshot is present,
// loads it after its first successful surface allocation.
func (s *Session) TakePayload() (Payload, bool) {
	if s.pending == nil {
		return Payload{}, false
	}
	p := *s.pending
	s.pending = nil
	return p, true
}
