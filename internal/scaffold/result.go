package scaffold

import "github.com/google/uuid"

// Action records what the engine did (or, in dry-run, would do) for a path.
type Action int

const (
	ActionCreated Action = iota
	ActionSkipped
	ActionOverwritten
	ActionBackedUp
)

func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionSkipped:
		return "skipped"
	case ActionOverwritten:
		return "overwritten"
	case ActionBackedUp:
		return "backed-up"
	default:
		return "unknown"
	}
}

// Touched is one path the run acted on, in application order.
type Touched struct {
	Path   string
	Action Action
}

// Result is the outcome of applying a list of entries. On a fail-fast abort
// it holds everything accumulated up to the failing entry.
type Result struct {
	RunID       string
	Created     int
	Skipped     int
	Overwritten int
	BackedUp    int
	Touched     []Touched
}

func newResult() *Result {
	return &Result{RunID: uuid.NewString()}
}

// record tallies one action against path.
func (r *Result) record(action Action, path string) {
	switch action {
	case ActionCreated:
		r.Created++
	case ActionSkipped:
		r.Skipped++
	case ActionOverwritten:
		r.Overwritten++
	case ActionBackedUp:
		r.BackedUp++
	}
	r.Touched = append(r.Touched, Touched{Path: path, Action: action})
}
