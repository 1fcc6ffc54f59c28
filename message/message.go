// Package message defines the envelope type delivered to process mailboxes.
//
// The runtime treats payloads as opaque: whatever an application sends with
// [Data] crosses the mailbox unchanged. One variant is reserved for the
// runtime itself: [LinkDown], which a process finds in its own mailbox when a
// linked process died and the die-when-link-dies flag was turned off.
package message

// A Message is one entry in a process mailbox. The set of variants is closed;
// use a type switch to consume them.
type Message interface {
	MessageName() string
}

// Data carries an application payload.
type Data struct {
	Term any
}

func (m Data) MessageName() string {
	return "data"
}

// LinkDown is enqueued by the process runtime in place of a termination when
// a linked process dies while die-when-link-dies is disabled. It lets in-band
// logic observe the link death without the process itself dying.
type LinkDown struct{}

func (m LinkDown) MessageName() string {
	return "link_down"
}
