package core

import (
	"sync/atomic"
)

// Process-wide debug flag, set from configuration at startup.
var debugMode atomic.Bool

// SetDebugMode sets the global debug mode flag. When debug mode is
// enabled, packet buffers are defensively copied on construction and on
// access; when disabled, buffers pass through untouched.
func SetDebugMode(enabled bool) {
	debugMode.Store(enabled)
}

// IsDebugMode returns whether debug mode is enabled
func IsDebugMode() bool {
	return debugMode.Load()
}

// Packet represents a raw message buffer handed to or produced by the
// codec. Callers that hold only a Packet never see the underlying slice
// mutated in debug mode.
type Packet interface {
	// Data returns the packet bytes. In debug mode this is a copy; in
	// non-debug mode it is the internal buffer, which must not be
	// modified by the caller.
	Data() []byte

	// Length returns the packet length in bytes.
	Length() int
}

// SimplePacket is the plain slice-backed Packet implementation.
type SimplePacket struct {
	data []byte
}

// NewPacket wraps data as a Packet. A nil slice is treated as empty. In
// debug mode the data is copied so later mutation of the caller's slice
// cannot corrupt the packet.
func NewPacket(data []byte) Packet {
	switch {
	case data == nil:
		return &SimplePacket{data: []byte{}}
	case IsDebugMode():
		dataCopy := make([]byte, len(data))
		copy(dataCopy, data)
		return &SimplePacket{data: dataCopy}
	default:
		return &SimplePacket{data: data}
	}
}

// Data returns the packet bytes, copying in debug mode. The copy
// preserves nil-ness: an empty packet always yields an empty, non-nil
// slice.
func (p *SimplePacket) Data() []byte {
	if IsDebugMode() {
		dataCopy := make([]byte, len(p.data))
		copy(dataCopy, p.data)
		return dataCopy
	}
	return p.data
}

// Length returns the packet length in bytes.
func (p *SimplePacket) Length() int {
	return len(p.data)
}
