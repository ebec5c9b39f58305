package ringsig

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This cannot guarantee complete memory sanitization — the garbage collector
// and the curve backend may have made copies — but it is the current best
// practice in the Go ecosystem for sensitive buffers (see golang/go#33325).
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
