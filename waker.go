package blockon

// A Waker is a capability a pending [Future] invokes later to signal
// "try polling me again". It is a shared handle over one wake signal,
// with exactly four operations.
//
// Wake and WakeByRef both set the signal. The signal is a coalescing,
// level-triggered flag: setting it twice before the next poll is the same
// as setting it once, and setting it before the executor parks still
// unparks that park.
//
// Clone, Wake and Release also manage the handle's share of the signal.
// Clone takes a new share and returns a handle for it. Wake signals and
// consumes the caller's share in one step. Release consumes the share
// without signaling; releasing the last share retires the signal.
//
// The waker passed into [Future.Poll] is borrowed: a future may call
// WakeByRef on it during the poll, but may not Wake or Release it. To
// keep a waker beyond the poll, Clone it and later spend the clone with
// Wake or Release.
//
// All four operations are safe to call concurrently from multiple
// goroutines without external locking.
type Waker interface {
	Clone() Waker
	Wake()
	WakeByRef()
	Release()
}

// NopWaker is a [Waker] whose every operation does nothing. Wake calls
// made through it are silently discarded.
//
// It is the waker behind [RunBusy], [PollOnce] and [PollOnceOwned], and
// is useful on its own for polling futures whose wakes the caller has no
// way to observe anyway.
var NopWaker Waker = nopWaker{}

type nopWaker struct{}

func (w nopWaker) Clone() Waker { return w }
func (nopWaker) Wake()          {}
func (nopWaker) WakeByRef()     {}
func (nopWaker) Release()       {}
