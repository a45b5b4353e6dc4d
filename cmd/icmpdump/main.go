// Command icmpdump decodes hex-encoded ICMP Echo buffers and prints the
// parsed fields. Buffers come from the command line, or from stdin one
// per line when no arguments are given. The exit status is 1 if any
// buffer failed to decode.
//
// Configuration is read from the file named by the CONFIG env var (YAML
// or JSON), then overlaid with env overrides (ICMP_STRICT_HEADER,
// ICMP_VERIFY_CHECKSUM, LOGGING_*). DEBUG=1 enables verbose logging and
// packet copy mode.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/irctrakz/icmpwire/pkg/config"
	"github.com/irctrakz/icmpwire/pkg/core"
	"github.com/irctrakz/icmpwire/pkg/icmp"
	"github.com/irctrakz/icmpwire/pkg/logging"
)

func main() {
	cfg := config.DefaultConfig()
	if path := strings.TrimSpace(os.Getenv("CONFIG")); path != "" {
		if err := config.LoadFromFile(path, cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	config.LoadFromEnv(cfg)

	// Debug logging toggle via DEBUG env (truthy parser)
	dval := strings.ToLower(strings.TrimSpace(os.Getenv("DEBUG")))
	if dval == "1" || dval == "true" || dval == "yes" || dval == "on" {
		cfg.Codec.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Apply(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Codec.Debug {
		logging.Infof("DEBUG enabled: verbose logging and packet copy mode")
	}

	inputs := os.Args[1:]
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			log.Fatalf("stdin: %v", err)
		}
	}

	codec := icmp.NewCodec(cfg.Codec)
	failed := false
	for _, in := range inputs {
		buf, err := hex.DecodeString(normalizeHex(in))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: invalid hex: %v\n", in, err)
			failed = true
			continue
		}
		logging.WithFields(map[string]interface{}{"len": len(buf)}).Debugf("decoding buffer %x", buf)

		msg, err := codec.DecodePacket(core.NewPacket(buf))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", in, err)
			failed = true
			continue
		}
		printMessage(msg)
	}
	if failed {
		os.Exit(1)
	}
}

// normalizeHex strips the separators commonly found in pasted captures
// (spaces, colons, a leading 0x).
func normalizeHex(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', ':', '\t':
			return -1
		}
		return r
	}, s)
}

func printMessage(m icmp.Message) {
	kind := "echo reply"
	if m.IsRequest() {
		kind = "echo request"
	}
	fmt.Printf("%s code=%d id=%d seq=%d checksum=0x%04x payload=%d bytes\n",
		kind, m.Code(), m.Identifier(), m.SequenceNumber(), m.Checksum(), len(m.Payload()))
	if len(m.Payload()) > 0 {
		logging.Debugf("payload:\n%s", hex.Dump(m.Payload()))
	}
}
