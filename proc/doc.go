/*
Package proc supervises sandboxed computations as lightweight processes.

A process is an arbitrary computation paired with a driver loop that gives it
an identity, a mailbox for application messages, an out-of-band channel for
control signals, and a one-shot termination broadcast. The only way to reach
a running process is through its [ProcessHandle]; the process itself can
never be observed directly.

# Lifecycle

[Spawn] starts a [Computation] in the background and returns its handle. The
driver loop races the computation against incoming signals, always preferring
a pending signal, until one of three things happens:

  - the computation returns nil: the process finished normally
  - the computation returns an error or panics: the process trapped
  - a [Kill] signal arrives: the process is killed and the computation
    abandoned without being observed further

Each outcome is broadcast exactly once as a boolean verdict, where true means
"died abnormally". [ProcessHandle.Join] waits for the verdict; callers that
arrive after termination get it immediately.

# Links

A process that receives a [Link] signal will notify the carried handle when
it terminates: [LinkNotifyTrap] if it trapped, [LinkNotifyKill] if it was
killed. Nothing is sent on a normal exit. By default a link-death
notification kills the receiver in turn, so failures cascade through a
linked group; a process can opt out with [DieWhenLinkDies], after which link
deaths show up in its mailbox as [message.LinkDown] markers instead.

Links are directional. [SpawnLink] pre-registers the spawner on the child;
for a mutual link each side sends the other a [Link] signal.

# Channel contracts

Mailbox and signal channel are unbounded and sends never block. Both
[ProcessHandle.SendMessage] and [ProcessHandle.SendSignal] fail with
[ErrNoProc] once the target has torn down, the one delivery error this
package surfaces. Signals are handled in send order.
*/
package proc
