package icmp

// checksum calculates the RFC 1071 Internet checksum for the given
// data: big-endian 16-bit words summed into a 32-bit accumulator, an
// odd trailing byte padded as the high byte of a zero word, carries
// folded back until the sum fits 16 bits, then one's-complemented.
// Total over any input including empty.
func checksum(data []byte) uint16 {
	var sum uint32
	for i := 0; i+1 < len(data); i += 2 {
		sum += uint32(data[i])<<8 | uint32(data[i+1])
	}
	if len(data)%2 == 1 {
		sum += uint32(data[len(data)-1]) << 8
	}
	for sum>>16 > 0 {
		sum = (sum & 0xffff) + (sum >> 16)
	}
	return uint16(^sum)
}
