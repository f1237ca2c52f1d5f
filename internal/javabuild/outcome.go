package javabuild

// OutcomeStatus is the kind of result of handling a command.
type OutcomeStatus int

const (
	// StatusApplied means the command was handled; Changed tells whether
	// any file was modified.
	StatusApplied OutcomeStatus = iota
	// StatusIgnored means the command has no meaning for the build tool.
	StatusIgnored
	// StatusUnsupported means the build tool can't express the command yet.
	StatusUnsupported
)

// Outcome is the result of handling one command.
type Outcome struct {
	Status  OutcomeStatus
	Changed bool
	Reason  string
}

// Applied returns an applied outcome.
func Applied(changed bool) Outcome {
	return Outcome{Status: StatusApplied, Changed: changed}
}

// Ignored returns an ignored outcome.
func Ignored() Outcome {
	return Outcome{Status: StatusIgnored}
}

// Unsupported returns an unsupported outcome with a reason.
func Unsupported(reason string) Outcome {
	return Outcome{Status: StatusUnsupported, Reason: reason}
}

// String returns the status name shown to users.
func (o Outcome) String() string {
	switch o.Status {
	case StatusIgnored:
		return "ignored"
	case StatusUnsupported:
		return "unsupported"
	default:
		if o.Changed {
			return "patched"
		}
		return "unchanged"
	}
}
