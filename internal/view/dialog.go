package view

import "context"

// Dialog is the capability contract each entity's create/edit form
// implements. The engine only knows this interface: opening with a nil
// entity means create, with a non-nil one means edit pre-populated from
// that row.
type Dialog[T any] interface {
	// Open shows the form. entity is nil in create mode.
	Open(entity *T, editMode bool)
	// Close hides the form without submitting.
	Close()
	// IsOpen reports whether the form is showing.
	IsOpen() bool
	// Submit validates the form and performs the create or update. A
	// non-nil error is the inline message shown on the form; validation
	// failures never reach the network.
	Submit(ctx context.Context) error
}
