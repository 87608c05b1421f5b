package chain

import (
	"encoding/hex"
	"math/big"
	"strings"
)

// Call is one outgoing contract call: target, value (always zero for this
// game) and raw calldata. Immutable once constructed.
type Call struct {
	To    string
	Value *big.Int
	Data  []byte
}

// NewCall builds a zero-value call to the given contract.
func NewCall(to string, data []byte) Call {
	return Call{To: to, Value: new(big.Int), Data: data}
}

// ValidAddress reports whether s is a syntactically valid 20-byte hex address
// ("0x" followed by exactly 40 hex digits).
func ValidAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}

func addressBytes(s string) []byte {
	b, _ := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	return b
}
