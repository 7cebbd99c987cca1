package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anyproto/go-slip10"
	"github.com/pkg/errors"
)

const hardenedOffset uint32 = 0x80000000

// deriveKeyFromPath derives the ed25519 private key seed along a fully hardened SLIP-10 path.
// WARNING: Caller must clear the returned key
func deriveKeyFromPath(seed []byte, path string) ([]byte, error) {
	indices, err := ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}

	node, err := slip10.DeriveForPath(canonicalPath(indices), seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive slip10 node")
	}

	_, privateKey := node.Keypair()
	defer clear(privateKey)

	return privateKey.Seed(), nil
}

// canonicalPath renders indices in the m/44'/508' form, so "H" segments are accepted too.
func canonicalPath(indices []uint32) string {
	var b strings.Builder
	b.WriteString("m")

	for _, index := range indices {
		fmt.Fprintf(&b, "/%d'", index-hardenedOffset)
	}

	return b.String()
}

// ParseDerivationPath parses a path string into hardened indices.
// Example: "m/44'/508'/0'/0'/0'" -> [2147483692, 2147484156, 2147483648, 2147483648, 2147483648]
// ed25519 only supports hardened derivation, so every segment must end with ' (or H).
func ParseDerivationPath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, errors.Errorf("invalid derivation path: %s", path)
	}

	indices := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		trimmed := strings.TrimRight(part, "'hH")
		if trimmed == part || len(part)-len(trimmed) != 1 {
			return nil, errors.Errorf("invalid path segment %q: only hardened derivation is supported", part)
		}

		index, err := strconv.ParseUint(trimmed, 10, 31)
		if err != nil {
			return nil, errors.Errorf("invalid path segment: %s", part)
		}

		indices = append(indices, uint32(index)+hardenedOffset) //nolint:gosec // bounded to 31 bits by ParseUint
	}

	return indices, nil
}
