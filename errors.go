// Package scenelink implements the linked-group synchronization core of a
// hierarchical scene graph. Several groups can declare themselves linked
// copies of one logical object by joining a shared link set; edits made to
// the children of any connected member can then be propagated to every other
// connected member, modulo each copy's own placement transform.
//
// The package is single-threaded by design: none of its operations lock, and
// the surrounding editor is expected to serialize all structural edits.
package scenelink

// UpdateError is the single error type returned by the clone, transform and
// synchronization operations in this package. It carries a human-readable
// description of the first failure encountered; the operation that produced
// it was aborted without partial results.
//
// Causes are: an unsupported node kind (world or layer) nested inside a
// group's subtree, a failed solid-geometry transform, a transformed node
// falling outside the world bounds, or a group placement transform that is
// not invertible.
//
// Precondition violations (connecting an already connected group, opening an
// already open group, and so on) are programmer errors, not runtime errors.
// They panic with a "scenelink:"-prefixed message instead of being folded
// into this taxonomy.
type UpdateError struct {
	Message string
}

// Error implements the error interface.
func (e UpdateError) Error() string {
	return e.Message
}
