package proc

// A Signal is the low level control protocol between processes. Signals
// travel on a dedicated channel, out-of-band from application messages, and
// the driver loop always handles a pending signal before making further
// computation progress. The set of signal types is closed: kill,
// die-when-link-dies, link, and the two link-death notifications.
type Signal interface {
	SignalName() string
}

// Kill requests an unconditional stop. The computation is abandoned as soon
// as the driver loop observes the signal; it is never waited on again.
type Kill struct{}

func (s Kill) SignalName() string {
	return "kill"
}

// DieWhenLinkDies reconfigures what happens when a linked process dies.
// While Die is true (the default for every process) a link-death notification
// kills the receiver; while false it is turned into a [message.LinkDown]
// mailbox entry instead.
type DieWhenLinkDies struct {
	Die bool
}

func (s DieWhenLinkDies) SignalName() string {
	return "die_when_link_dies"
}

// Link registers Handle to be notified when the receiving process
// terminates. Links are directional: for a mutual link each side sends a Link
// signal to the other.
type Link struct {
	Handle ProcessHandle
}

func (s Link) SignalName() string {
	return "link"
}

// LinkNotifyTrap is sent to every linked process when a process dies because
// its computation trapped.
type LinkNotifyTrap struct{}

func (s LinkNotifyTrap) SignalName() string {
	return "link_notify_trap"
}

// LinkNotifyKill is sent to every linked process when a process dies because
// of a kill signal, including a kill cascaded from one of its own links.
type LinkNotifyKill struct{}

func (s LinkNotifyKill) SignalName() string {
	return "link_notify_kill"
}
