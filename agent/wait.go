package agent

import (
	"runtime"
	"sync/atomic"
)

// waitCore is the shared notify flag behind every clone of a WaitHandle.
type waitCore struct {
	woken atomic.Bool
	refs  atomic.Int64
}

func newWaitCore() *waitCore {
	return &waitCore{}
}

// WaitHandle is a shared, clonable notify flag: Wake sets it, and the
// runner's reap pass checks References to decide whether a sleeping agent
// still has anyone who could ever wake it.
//
// Rust's Arc<AtomicBool> gets its reference count for free from the
// compiler-inserted drop glue. Go has no destructors, so References is
// backed by a finalizer attached to every WaitHandle value: when the
// garbage collector determines a handle is unreachable, the finalizer
// decrements the shared count. Callers that want deterministic timing (as
// in a test asserting reap-after-drop) must nil out their reference and
// call runtime.GC().
type WaitHandle struct {
	core *waitCore
}

func attachWaitHandle(core *waitCore) *WaitHandle {
	core.refs.Add(1)
	h := &WaitHandle{core: core}
	runtime.SetFinalizer(h, releaseWaitHandle)
	return h
}

func releaseWaitHandle(h *WaitHandle) {
	h.core.refs.Add(-1)
}

// Clone returns a new WaitHandle sharing the same underlying flag, counted
// as an additional holder.
func (h *WaitHandle) Clone() *WaitHandle {
	return attachWaitHandle(h.core)
}

// Wake notifies whatever is waiting on this handle that it may proceed.
func (h *WaitHandle) Wake() {
	h.core.woken.Store(true)
}

func (h *WaitHandle) isWoken() bool {
	return h.core.woken.Load()
}

// References reports how many live WaitHandle values (including this one)
// currently share this flag.
func (h *WaitHandle) References() int64 {
	return h.core.refs.Load()
}
