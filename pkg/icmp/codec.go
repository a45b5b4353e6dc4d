package icmp

import (
	"errors"
	"fmt"

	"github.com/irctrakz/icmpwire/pkg/core"
)

// ErrMalformedMessage is the single failure kind reported by Decode: the
// buffer is not a valid ICMP Echo Request/Reply, either because it is
// too short or because its type byte is unrecognized (or, for a
// verifying codec, because its checksum does not match).
var ErrMalformedMessage = errors.New("icmp: malformed message")

// Codec decodes wire buffers under a configured validation policy. The
// zero value is the permissive codec: 4-byte length floor, no checksum
// verification, matching the historical decode behavior. Codec values
// are stateless and safe for concurrent use.
type Codec struct {
	cfg core.CodecConfig
}

// NewCodec returns a codec applying the given configuration.
func NewCodec(cfg core.CodecConfig) *Codec {
	return &Codec{cfg: cfg}
}

var defaultCodec = &Codec{}

// Encode serializes the message into its wire representation: the
// 8-byte header followed by the payload, with the checksum computed
// over the whole buffer and written big-endian at offsets 2-3. Encoding
// never fails; the output length is always 8+len(payload).
func (m Message) Encode() []byte {
	buf := make([]byte, headerLen+len(m.payload))
	buf[0] = m.msgType
	buf[1] = m.code
	// bytes 2-3: checksum placeholder, filled in below
	buf[4] = byte(m.identifier >> 8)
	buf[5] = byte(m.identifier)
	buf[6] = byte(m.sequenceNumber >> 8)
	buf[7] = byte(m.sequenceNumber)
	copy(buf[headerLen:], m.payload)

	cs := checksum(buf)
	buf[2] = byte(cs >> 8)
	buf[3] = byte(cs)
	return buf
}

// Decode parses a wire buffer with the permissive default policy. See
// Codec.Decode.
func Decode(buf []byte) (Message, error) {
	return defaultCodec.Decode(buf)
}

// Decode parses a raw buffer into a Message. The type byte must be 0 or
// 8; anything else is rejected before the length is even considered.
// The buffer must reach the configured length floor (4 bytes, or the
// full 8-byte header under StrictHeader). Identifier and sequence
// number default to zero when their bytes are absent; bytes beyond the
// header become the payload. On failure the returned error wraps
// ErrMalformedMessage and no message is produced.
func (c *Codec) Decode(buf []byte) (Message, error) {
	if len(buf) == 0 {
		return Message{}, fmt.Errorf("%w: empty buffer", ErrMalformedMessage)
	}
	if buf[0] != TypeEchoReply && buf[0] != TypeEchoRequest {
		return Message{}, fmt.Errorf("%w: unknown type %d", ErrMalformedMessage, buf[0])
	}
	floor := minDecodeLen
	if c.cfg.StrictHeader {
		floor = headerLen
	}
	if len(buf) < floor {
		return Message{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedMessage, len(buf), floor)
	}

	m := Message{
		msgType:  buf[0],
		code:     buf[1],
		checksum: uint16(buf[2])<<8 | uint16(buf[3]),
		payload:  []byte{},
	}
	if len(buf) >= headerLen {
		m.identifier = uint16(buf[4])<<8 | uint16(buf[5])
		m.sequenceNumber = uint16(buf[6])<<8 | uint16(buf[7])
	}
	if len(buf) > headerLen {
		m.payload = append([]byte(nil), buf[headerLen:]...)
	}

	if c.cfg.VerifyChecksum {
		// A buffer with a correct checksum field sums to 0xffff before
		// complement, so recomputing over the buffer as-is yields zero.
		if got := checksum(buf); got != 0 {
			return Message{}, fmt.Errorf("%w: checksum mismatch (residual 0x%04x)", ErrMalformedMessage, got)
		}
	}
	return m, nil
}

// DecodePacket parses the contents of a core.Packet. See Codec.Decode.
func (c *Codec) DecodePacket(p core.Packet) (Message, error) {
	return c.Decode(p.Data())
}
