// Package wizard is the step/substep navigation core of the application
// form: a small state machine over (mainStep, subStep) pairs with a static
// substep-count table. It knows nothing about field content or help text.
package wizard

// MaxMainStep is the number of top-level stages.
const MaxMainStep = 5

// Main step titles, in order.
var StepTitles = []string{
	"Application",
	"DBE Required Documents",
	"SWaM Documents",
	"Submit",
	"Final Confirmation",
}

// SubstepTitles lists the screens inside each main step. Substep counts
// everywhere else derive from this table.
var SubstepTitles = map[int][]string{
	1: {
		"Designations and Business Types",
		"General Information",
		"Tax Information",
		"Ownership",
		"Corporation LLC or LLP Details",
		"NIGP Commodity Codes",
		"Geographic Marketing Area",
		"FOIA Exemption",
	},
	2: {
		"Upload Instructions",
		"DBE Checklist",
		"General Submission Documents",
		"Business Financial Documents",
		"Personal Documents",
		"Business Operational Documents",
		"Corporate/Organizational Documents",
		"Additional Documents",
	},
	3: {
		"Upload Instructions",
		"Business Formation Documents",
		"Tax Documents",
		"Employment Documents",
		"Personal Documents",
		"Additional Documents",
	},
	4: {
		"Review Application",
		"Affidavit and Debarment Form",
		"Final Submission",
	},
	5: {
		"Confirmation Details",
		"Next Steps",
	},
}

// SubstepCount returns M(step), the number of substeps of a main step.
// Out-of-range steps report 1 so callers can clamp rather than branch.
func SubstepCount(step int) int {
	if titles, ok := SubstepTitles[step]; ok {
		return len(titles)
	}
	return 1
}

// SubmitFunc runs when Advance is called on the last substep of the last
// main step. Submission is an action, not a stored state.
type SubmitFunc func() error

// Machine tracks the current wizard position and the furthest position the
// user has validated their way to. Not safe for concurrent use; each form
// session owns one.
type Machine struct {
	mainStep     int
	subStep      int
	furthestMain int
	furthestSub  int
	submit       SubmitFunc
}

// New starts a machine at (1, 1).
func New(submit SubmitFunc) *Machine {
	return &Machine{mainStep: 1, subStep: 1, furthestMain: 1, furthestSub: 1, submit: submit}
}

// Resume starts a machine at a stored position, clamped into range. The
// resumed position is also the furthest-reached one.
func Resume(mainStep, subStep int, submit SubmitFunc) *Machine {
	m := New(submit)
	mainStep, subStep = clamp(mainStep, subStep)
	m.mainStep, m.subStep = mainStep, subStep
	m.furthestMain, m.furthestSub = mainStep, subStep
	return m
}

func clamp(mainStep, subStep int) (int, int) {
	if mainStep < 1 {
		mainStep = 1
	}
	if mainStep > MaxMainStep {
		mainStep = MaxMainStep
	}
	if subStep < 1 {
		subStep = 1
	}
	if max := SubstepCount(mainStep); subStep > max {
		subStep = max
	}
	return mainStep, subStep
}

// Position returns the current (mainStep, subStep).
func (m *Machine) Position() (int, int) {
	return m.mainStep, m.subStep
}

// Furthest returns the furthest validated position.
func (m *Machine) Furthest() (int, int) {
	return m.furthestMain, m.furthestSub
}

// Advance moves one substep forward, rolling into the next main step at
// substep 1. At the last substep of the last step it invokes the submit
// action instead of moving; the reported bool is true in that case.
func (m *Machine) Advance() (submitted bool, err error) {
	if m.subStep < SubstepCount(m.mainStep) {
		m.subStep++
	} else if m.mainStep < MaxMainStep {
		m.mainStep++
		m.subStep = 1
	} else {
		if m.submit != nil {
			err = m.submit()
		}
		return true, err
	}
	m.updateFurthest()
	return false, nil
}

// Retreat moves one substep back. Leaving a main step backward lands on
// the previous step's last substep, not its first, so users re-enter a
// completed step at its end. At (1, 1) it is a no-op.
func (m *Machine) Retreat() {
	if m.subStep > 1 {
		m.subStep--
	} else if m.mainStep > 1 {
		m.mainStep--
		m.subStep = SubstepCount(m.mainStep)
	}
}

// JumpTo moves directly to a position. Targets are clamped into range and
// never past the furthest-reached position, so stale UI state cannot skip
// ahead of validated content.
func (m *Machine) JumpTo(mainStep, subStep int) {
	mainStep, subStep = clamp(mainStep, subStep)
	if after(mainStep, subStep, m.furthestMain, m.furthestSub) {
		mainStep, subStep = m.furthestMain, m.furthestSub
	}
	m.mainStep, m.subStep = mainStep, subStep
}

func (m *Machine) updateFurthest() {
	if after(m.mainStep, m.subStep, m.furthestMain, m.furthestSub) {
		m.furthestMain, m.furthestSub = m.mainStep, m.subStep
	}
}

func after(aMain, aSub, bMain, bSub int) bool {
	if aMain != bMain {
		return aMain > bMain
	}
	return aSub > bSub
}
