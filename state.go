package dispatch

// LifecycleState is the position of a command node in its lifecycle. A node only moves forward:
//
//	Constructed → OptionsDeclared → Initialized → Prepared → Executed → Finished
//
// Only the deepest node of a dispatch is executed, so every other node goes straight from
// Prepared to Finished.
type LifecycleState int

const (
	StateConstructed LifecycleState = iota
	StateOptionsDeclared
	StateInitialized
	StatePrepared
	StateExecuted
	StateFinished
)

func (s LifecycleState) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateOptionsDeclared:
		return "options-declared"
	case StateInitialized:
		return "initialized"
	case StatePrepared:
		return "prepared"
	case StateExecuted:
		return "executed"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
