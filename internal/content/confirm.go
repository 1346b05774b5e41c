package content

// ConfirmGate blocks destructive commands until a confirmation resolves.
// A negative resolution means the command never runs and nothing changes.
type ConfirmGate interface {
	Confirm(message string) bool
}

// StaticGate resolves every request the same way. Used in tests and tooling.
type StaticGate bool

func (g StaticGate) Confirm(message string) bool {
	return bool(g)
}

// headerGate is the HTTP rendition: the client's confirmation dialog result
// travels as the X-Confirm-Delete header.
type headerGate struct {
	confirmed bool
}

func (g headerGate) Confirm(message string) bool {
	return g.confirmed
}
