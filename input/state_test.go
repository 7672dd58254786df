package input

import (
	"testing"
	"time"

	"github.com/lowrez/gridfire/parameter"
)

// TestSnapshotHeldWithinWindow verifies a press counts as held until the
// repeat window elapses
func TestSnapshotHeldWithinWindow(t *testing.T) {
	st := NewState()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	st.Press(ActionForward, base)

	if !st.Snapshot(base).Forward {
		t.Error("Expected forward held immediately after press")
	}
	if !st.Snapshot(base.Add(parameter.KeyHoldWindow / 2)).Forward {
		t.Error("Expected forward held within the window")
	}
	if st.Snapshot(base.Add(parameter.KeyHoldWindow)).Forward {
		t.Error("Expected forward released after the window")
	}
}

// TestSnapshotFireEdge verifies one press yields exactly one firing snapshot
func TestSnapshotFireEdge(t *testing.T) {
	st := NewState()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	st.Press(ActionFire, now)

	if !st.Snapshot(now).Fire {
		t.Error("Expected fire set on first snapshot")
	}
	if st.Snapshot(now).Fire {
		t.Error("Expected fire consumed by first snapshot")
	}
}

// TestClearDropsResidualState verifies pause/focus loss leaves no held keys
func TestClearDropsResidualState(t *testing.T) {
	st := NewState()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	st.Press(ActionForward, now)
	st.Press(ActionStrafeLeft, now)
	st.Press(ActionFire, now)
	st.Clear()

	s := st.Snapshot(now)
	if s.Forward || s.StrafeLeft || s.Fire {
		t.Errorf("Expected empty snapshot after clear, got %+v", s)
	}
}

// TestMoveAxesDiagonalNormalized verifies diagonal input speed matches
// axis-aligned input speed
func TestMoveAxesDiagonalNormalized(t *testing.T) {
	diag := Snapshot{Forward: true, StrafeRight: true}
	x, z := diag.MoveAxes()
	mag := x*x + z*z
	if mag > 1.0001 || mag < 0.9999 {
		t.Errorf("Expected unit diagonal input, got magnitude² %v", mag)
	}

	straight := Snapshot{Forward: true}
	x, z = straight.MoveAxes()
	if x != 0 || z != 1 {
		t.Errorf("Expected (0, 1), got (%v, %v)", x, z)
	}
}

// TestMoveAxesOpposedKeysCancel verifies opposed holds yield no input
func TestMoveAxesOpposedKeysCancel(t *testing.T) {
	s := Snapshot{Forward: true, Back: true, StrafeLeft: true, StrafeRight: true}
	x, z := s.MoveAxes()
	if x != 0 || z != 0 {
		t.Errorf("Expected (0, 0), got (%v, %v)", x, z)
	}
}
