package stage

import (
	"testing"
)

func TestSequenceShape(t *testing.T) {
	seq := Sequence()
	if len(seq) != 5 {
		t.Fatalf("sequence has %d stages, want 5", len(seq))
	}
	if seq[0].ID != StageDraw || seq[len(seq)-1].ID != StageVerbalize {
		t.Fatalf("sequence order wrong: %v … %v", seq[0].ID, seq[len(seq)-1].ID)
	}
	if seq[0].Clear != ClearBlank {
		t.Fatalf("first stage should clear to blank")
	}
	for _, cfg := range seq[1:] {
		if cfg.Clear != ClearSeed {
			t.Fatalf("stage %s should clear to seed", cfg.ID)
		}
	}
}

func TestAdvanceCarriesPayloadVerbatim(t *testing.T) {
	s := NewSession()
	snap := []byte{0x89, 'P', 'N', 'G'}

	if err := s.Advance("a fox, sleeping", snap); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.Index() != 1 {
		t.Fatalf("index=%d, want 1", s.Index())
	}

	p, ok := s.TakePayload()
	if !ok {
		t.Fatalf("no payload after advance")
	}
	if p.PromptText() != "a fox, sleeping" {
		t.Fatalf("prompt %q changed in transit", p.PromptText())
	}
	if !p.HasSnapshot() || string(p.Snapshot()) != string(snap) {
		t.Fatalf("snapshot changed in transit")
	}
}

func TestTakePayloadConsumesOnce(t *testing.T) {
	s := NewSession()
	if err := s.Advance("text", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if _, ok := s.TakePayload(); !ok {
		t.Fatalf("first take should succeed")
	}
	if _, ok := s.TakePayload(); ok {
		t.Fatalf("second take must not re-deliver the payload")
	}

	// Back and forward again: still nothing to hydrate.
	if !s.Back() {
		t.Fatalf("Back failed")
	}
	if _, ok := s.TakePayload(); ok {
		t.Fatalf("payload resurrected after back navigation")
	}
}

func TestPayloadIsImmutable(t *testing.T) {
	snap := []byte{1, 2, 3}
	p := NewPayload("text", snap)

	snap[0] = 9
	if p.Snapshot()[0] != 1 {
		t.Fatalf("payload aliased the caller's slice")
	}
	out := p.Snapshot()
	out[0] = 9
	if p.Snapshot()[0] != 1 {
		t.Fatalf("payload exposed its internal slice")
	}
}

func TestAdvancePastEnd(t *testing.T) {
	s := NewSession()
	for !s.AtEnd() {
		if err := s.Advance("t", nil); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if err := s.Advance("t", nil); err != ErrWorkflowDone {
		t.Fatalf("err=%v, want ErrWorkflowDone", err)
	}
}

func TestEmptySnapshotMeansAbsent(t *testing.T) {
	p := NewPayload("only text", nil)
	if p.HasSnapshot() {
		t.Fatalf("nil snapshot reported present")
	}
	if p.Snapshot() != nil {
		t.Fatalf("absent snapshot should read nil")
	}
}

func TestBackStopsAtFirstStage(t *testing.T) {
	s := NewSession()
	if s.Back() {
		t.Fatalf("Back from the first stage should refuse")
	}
}
