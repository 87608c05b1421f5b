package chain

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// The game logs every action through a single contract entrypoint taking a
// fixed 32-byte action tag and an optional dynamic byte payload. Selectors
// are fixed; the layouts below are built byte by byte rather than through an
// ABI library because these are the only two call shapes the game emits.
//
//	act(bytes32,bytes)      -> 0x2d9bc1fb
//	transfer(address,uint256) -> 0xa9059cbb (EIP-20)
var (
	selectorLogAction = [4]byte{0x2d, 0x9b, 0xc1, 0xfb}
	selectorTransfer  = [4]byte{0xa9, 0x05, 0x9c, 0xbb}
)

const word = 32

var (
	// ErrTagTooLong means the action tag does not fit its 32-byte slot.
	ErrTagTooLong = errors.New("chain: action tag longer than 32 bytes")
	// ErrEmptyTag means no action tag was supplied.
	ErrEmptyTag = errors.New("chain: empty action tag")
	// ErrOddHex means the auxiliary payload has an odd number of hex digits.
	ErrOddHex = errors.New("chain: auxiliary payload has odd hex length")
	// ErrBadAddress means the recipient is not a 20-byte hex address.
	ErrBadAddress = errors.New("chain: malformed address")
	// ErrZeroAmount means a transfer amount was not strictly positive.
	ErrZeroAmount = errors.New("chain: transfer amount must be positive")
	// ErrAmountRange means the amount does not fit an unsigned 256-bit slot.
	ErrAmountRange = errors.New("chain: transfer amount exceeds 256 bits")
)

// EncodeLogAction builds calldata for the tagged log call. The tag is
// right-padded into a 32-byte slot; auxHex is an optional hex string (with or
// without 0x prefix) carried as the dynamic bytes argument. Layout:
//
//	selector | tag (32) | offset=0x40 (32) | len (32) | payload padded to 32
func EncodeLogAction(tag, auxHex string) ([]byte, error) {
	if tag == "" {
		return nil, ErrEmptyTag
	}
	if len(tag) > word {
		return nil, fmt.Errorf("%w: %q", ErrTagTooLong, tag)
	}

	aux, err := decodeAux(auxHex)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 4+3*word+padLen(len(aux)))
	out = append(out, selectorLogAction[:]...)

	var slot [word]byte
	copy(slot[:], tag)
	out = append(out, slot[:]...)

	out = append(out, uintWord(2*word)...)
	out = append(out, uintWord(uint64(len(aux)))...)
	out = append(out, aux...)
	out = append(out, make([]byte, padLen(len(aux))-len(aux))...)
	return out, nil
}

// EncodeTransfer builds EIP-20 transfer(address,uint256) calldata: selector,
// recipient left-padded to 32 bytes, amount (token base units) left-padded to
// 32 bytes. Amount must be strictly positive.
func EncodeTransfer(to string, amount *big.Int) ([]byte, error) {
	if !ValidAddress(to) {
		return nil, fmt.Errorf("%w: %q", ErrBadAddress, to)
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, ErrZeroAmount
	}
	if amount.BitLen() > 256 {
		return nil, ErrAmountRange
	}

	out := make([]byte, 0, 4+2*word)
	out = append(out, selectorTransfer[:]...)

	var addrSlot [word]byte
	copy(addrSlot[word-20:], addressBytes(to))
	out = append(out, addrSlot[:]...)

	var amtSlot [word]byte
	amount.FillBytes(amtSlot[:])
	out = append(out, amtSlot[:]...)
	return out, nil
}

func decodeAux(auxHex string) ([]byte, error) {
	s := strings.TrimPrefix(strings.TrimSpace(auxHex), "0x")
	if s == "" {
		return nil, nil
	}
	if len(s)%2 != 0 {
		return nil, ErrOddHex
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("chain: bad auxiliary payload: %w", err)
	}
	return b, nil
}

// padLen rounds n up to the next 32-byte boundary. Zero stays zero: an empty
// payload carries only its length word.
func padLen(n int) int {
	return (n + word - 1) / word * word
}

func uintWord(v uint64) []byte {
	b := make([]byte, word)
	new(big.Int).SetUint64(v).FillBytes(b)
	return b
}
