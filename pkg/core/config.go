package core

// CodecConfig contains configuration for the ICMP message codec.
type CodecConfig struct {
	// StrictHeader requires decoded buffers to carry the full 8-byte
	// Echo header. When false, 4-byte buffers (type, code, checksum)
	// are accepted and the identifier/sequence fields default to zero.
	StrictHeader bool `json:"strict_header" yaml:"strictHeader"`

	// VerifyChecksum rejects decoded buffers whose checksum field does
	// not match the checksum recomputed over the buffer.
	VerifyChecksum bool `json:"verify_checksum" yaml:"verifyChecksum"`

	// Debug enables debug logging and defensive packet copies.
	Debug bool `json:"debug" yaml:"debug"`
}
