package wizard

import (
	"errors"
	"testing"
)

func TestSubstepCounts(t *testing.T) {
	want := map[int]int{1: 8, 2: 8, 3: 6, 4: 3, 5: 2}
	for step, n := range want {
		if got := SubstepCount(step); got != n {
			t.Errorf("SubstepCount(%d) = %d, want %d", step, got, n)
		}
	}
	if got := SubstepCount(99); got != 1 {
		t.Errorf("SubstepCount(99) = %d, want 1", got)
	}
}

func TestAdvanceWalksEveryPosition(t *testing.T) {
	m := New(nil)
	visited := 0
	for {
		main, sub := m.Position()
		if sub < 1 || sub > SubstepCount(main) {
			t.Fatalf("position (%d, %d) out of range", main, sub)
		}
		visited++
		submitted, err := m.Advance()
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if submitted {
			break
		}
	}
	total := 0
	for step := 1; step <= MaxMainStep; step++ {
		total += SubstepCount(step)
	}
	if visited != total {
		t.Fatalf("walked %d positions, want %d", visited, total)
	}
}

func TestAdvanceAtTerminalSubmitsWithoutMoving(t *testing.T) {
	calls := 0
	m := Resume(MaxMainStep, SubstepCount(MaxMainStep), func() error {
		calls++
		return nil
	})
	submitted, err := m.Advance()
	if err != nil || !submitted {
		t.Fatalf("Advance = (%v, %v), want (true, nil)", submitted, err)
	}
	if calls != 1 {
		t.Fatalf("submit called %d times, want 1", calls)
	}
	if main, sub := m.Position(); main != MaxMainStep || sub != SubstepCount(MaxMainStep) {
		t.Fatalf("terminal Advance moved to (%d, %d)", main, sub)
	}
}

func TestAdvanceSubmitErrorPropagates(t *testing.T) {
	boom := errors.New("submit failed")
	m := Resume(MaxMainStep, SubstepCount(MaxMainStep), func() error { return boom })
	submitted, err := m.Advance()
	if !submitted || !errors.Is(err, boom) {
		t.Fatalf("Advance = (%v, %v), want (true, %v)", submitted, err, boom)
	}
}

func TestRetreatLandsOnPreviousStepLastSubstep(t *testing.T) {
	m := Resume(2, 1, nil)
	m.Retreat()
	if main, sub := m.Position(); main != 1 || sub != SubstepCount(1) {
		t.Fatalf("Retreat from (2, 1) landed at (%d, %d), want (1, %d)", main, sub, SubstepCount(1))
	}
}

func TestRetreatAtOriginIsNoop(t *testing.T) {
	m := New(nil)
	m.Retreat()
	if main, sub := m.Position(); main != 1 || sub != 1 {
		t.Fatalf("Retreat at origin moved to (%d, %d)", main, sub)
	}
}

func TestJumpToClampsAndCapsAtFurthest(t *testing.T) {
	m := Resume(3, 2, nil)

	m.JumpTo(1, 4)
	if main, sub := m.Position(); main != 1 || sub != 4 {
		t.Fatalf("backward jump landed at (%d, %d), want (1, 4)", main, sub)
	}

	// Ahead of the furthest-reached position: capped, not honored.
	m.JumpTo(4, 1)
	if main, sub := m.Position(); main != 3 || sub != 2 {
		t.Fatalf("forward jump landed at (%d, %d), want furthest (3, 2)", main, sub)
	}

	// Out-of-range substep clamps to the step's last substep.
	m.JumpTo(2, 50)
	if main, sub := m.Position(); main != 2 || sub != SubstepCount(2) {
		t.Fatalf("clamped jump landed at (%d, %d), want (2, %d)", main, sub, SubstepCount(2))
	}
}

func TestResumeClampsStoredPosition(t *testing.T) {
	m := Resume(9, 9, nil)
	if main, sub := m.Position(); main != MaxMainStep || sub != SubstepCount(MaxMainStep) {
		t.Fatalf("Resume(9, 9) landed at (%d, %d)", main, sub)
	}
	m = Resume(0, 0, nil)
	if main, sub := m.Position(); main != 1 || sub != 1 {
		t.Fatalf("Resume(0, 0) landed at (%d, %d)", main, sub)
	}
}

func TestGuidanceCoversEveryPosition(t *testing.T) {
	for step := 1; step <= MaxMainStep; step++ {
		for sub := 1; sub <= SubstepCount(step); sub++ {
			g, ok := GuidanceFor(step, sub)
			if !ok {
				t.Errorf("no guidance for (%d, %d)", step, sub)
				continue
			}
			if g.Title == "" || g.Description == "" {
				t.Errorf("guidance for (%d, %d) missing title or description", step, sub)
			}
		}
	}
	if _, ok := GuidanceFor(0, 0); ok {
		t.Errorf("guidance for (0, 0) exists, want none")
	}
}
