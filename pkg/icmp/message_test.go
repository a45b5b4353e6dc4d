package icmp

import (
	"bytes"
	"testing"

	"github.com/irctrakz/icmpwire/pkg/core"
)

func TestConstructorsAndAccessors(t *testing.T) {
	payload := []byte{1, 2, 3}

	req := NewEchoRequest(0x1111, 0x2222, payload)
	if req.Type() != TypeEchoRequest || req.Code() != 0 {
		t.Errorf("request type/code = %d/%d, want 8/0", req.Type(), req.Code())
	}
	if !req.IsRequest() || req.IsReply() {
		t.Error("request misclassified")
	}

	rep := NewEchoReply(0x1111, 0x2222, payload)
	if rep.Type() != TypeEchoReply || rep.Code() != 0 {
		t.Errorf("reply type/code = %d/%d, want 0/0", rep.Type(), rep.Code())
	}
	if !rep.IsReply() || rep.IsRequest() {
		t.Error("reply misclassified")
	}

	raw := NewMessage(42, 7, 0xaaaa, 0xbbbb, nil)
	if raw.Type() != 42 || raw.Code() != 7 {
		t.Errorf("raw type/code = %d/%d, want 42/7", raw.Type(), raw.Code())
	}
	if raw.Identifier() != 0xaaaa || raw.SequenceNumber() != 0xbbbb {
		t.Errorf("raw identifier/sequence = 0x%04x/0x%04x, want 0xaaaa/0xbbbb",
			raw.Identifier(), raw.SequenceNumber())
	}
	if raw.Checksum() != 0 {
		t.Errorf("constructed checksum = 0x%04x, want 0 (derived on encode)", raw.Checksum())
	}
}

// The constructor copies the payload in, so the message is isolated
// from later mutation of the caller's slice.
func TestConstructorCopiesPayload(t *testing.T) {
	payload := []byte{1, 2, 3}
	m := NewEchoRequest(0, 0, payload)

	payload[0] = 0xff
	if m.Payload()[0] == 0xff {
		t.Error("message payload still references the caller's slice")
	}
}

// In debug mode Payload returns a fresh copy on every call, mirroring
// core.Packet semantics.
func TestPayloadDebugCopy(t *testing.T) {
	core.SetDebugMode(true)
	defer core.SetDebugMode(false)

	m := NewEchoReply(1, 1, []byte{1, 2, 3})
	data := m.Payload()
	data[0] = 0xff
	if m.Payload()[0] == 0xff {
		t.Error("Payload() did not return a copy in debug mode")
	}
}

// The debug-mode copy must not change nil-ness: a decoded message with
// an empty payload keeps reporting an empty, non-nil payload.
func TestPayloadDebugCopyKeepsEmptyNonNil(t *testing.T) {
	core.SetDebugMode(true)
	defer core.SetDebugMode(false)

	m, err := Decode([]byte{8, 0, 0xf7, 0xff, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if payload := m.Payload(); payload == nil || len(payload) != 0 {
		t.Errorf("Payload() = %v, want empty non-nil slice", payload)
	}
}

// Raw type values outside {0, 8} still round-trip through Encode; only
// the decode side rejects them.
func TestRawConstructionEncodes(t *testing.T) {
	m := NewMessage(42, 0, 1, 2, []byte("x"))
	buf := m.Encode()
	if buf[0] != 42 {
		t.Fatalf("encoded type = %d, want 42", buf[0])
	}
	if len(buf) != 9 {
		t.Fatalf("encoded length = %d, want 9", len(buf))
	}
	if checksum(buf) != 0 {
		t.Error("encoded buffer fails the checksum identity")
	}
	if !bytes.Equal(buf[8:], []byte("x")) {
		t.Errorf("encoded payload = %v, want %q", buf[8:], "x")
	}
}
