// Package icmp encodes and decodes ICMP Echo Request/Reply messages
// (RFC 792) to and from their wire byte representation, including the
// RFC 1071 Internet checksum. It is a packet-format codec only: it does
// not open sockets, send packets, or measure round trips.
package icmp

import (
	"github.com/irctrakz/icmpwire/pkg/core"
)

// ICMP message types handled by this codec (RFC 792).
const (
	TypeEchoReply   uint8 = 0
	TypeEchoRequest uint8 = 8
)

// headerLen is the fixed Echo header size: type, code, checksum,
// identifier, sequence number.
const headerLen = 8

// minDecodeLen is the shortest buffer the permissive decoder accepts:
// type, code and checksum only, with identifier and sequence number
// defaulting to zero.
const minDecodeLen = 4

// Message is an ICMP Echo Request or Echo Reply. A Message is immutable
// once constructed: the constructors copy the payload in, Decode always
// produces a fresh value, and Encode never mutates its receiver.
type Message struct {
	msgType        uint8
	code           uint8
	checksum       uint16
	identifier     uint16
	sequenceNumber uint16
	payload        []byte
}

// NewMessage constructs a message with the given fields. The payload is
// copied. The checksum field is derived on Encode and cannot be set
// here; any type/code values are accepted, validation happens on the
// decode side only.
func NewMessage(msgType, code uint8, identifier, sequenceNumber uint16, payload []byte) Message {
	return Message{
		msgType:        msgType,
		code:           code,
		identifier:     identifier,
		sequenceNumber: sequenceNumber,
		payload:        append([]byte(nil), payload...),
	}
}

// NewEchoRequest constructs an Echo Request (type 8, code 0).
func NewEchoRequest(identifier, sequenceNumber uint16, payload []byte) Message {
	return NewMessage(TypeEchoRequest, 0, identifier, sequenceNumber, payload)
}

// NewEchoReply constructs an Echo Reply (type 0, code 0), typically
// mirroring the identifier, sequence number and payload of a request.
func NewEchoReply(identifier, sequenceNumber uint16, payload []byte) Message {
	return NewMessage(TypeEchoReply, 0, identifier, sequenceNumber, payload)
}

// Type returns the ICMP type field.
func (m Message) Type() uint8 { return m.msgType }

// Code returns the ICMP code field.
func (m Message) Code() uint8 { return m.code }

// Checksum returns the wire checksum. For a decoded message this is the
// value extracted from the buffer; for a constructed message it is zero
// until Encode derives the real one into the output buffer.
func (m Message) Checksum() uint16 { return m.checksum }

// Identifier returns the identifier field, the opaque token correlating
// a reply with its request.
func (m Message) Identifier() uint16 { return m.identifier }

// SequenceNumber returns the sequence number field.
func (m Message) SequenceNumber() uint16 { return m.sequenceNumber }

// Payload returns the message payload. In debug mode this is a copy; in
// non-debug mode it is the internal buffer, which must not be modified
// by the caller.
func (m Message) Payload() []byte {
	if core.IsDebugMode() {
		payloadCopy := make([]byte, len(m.payload))
		copy(payloadCopy, m.payload)
		return payloadCopy
	}
	return m.payload
}

// IsRequest reports whether the message is an Echo Request.
func (m Message) IsRequest() bool { return m.msgType == TypeEchoRequest }

// IsReply reports whether the message is an Echo Reply.
func (m Message) IsReply() bool { return m.msgType == TypeEchoReply }
