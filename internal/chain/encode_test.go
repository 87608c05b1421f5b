package chain

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddr = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

func TestEncodeLogActionPlantVector(t *testing.T) {
	data, err := EncodeLogAction("plant", "")
	require.NoError(t, err)

	want := "2d9bc1fb" +
		// "plant" right-padded into its 32-byte slot
		"706c616e74" + strings.Repeat("00", 27) +
		// offset to the dynamic bytes argument: two head slots = 0x40
		strings.Repeat("00", 31) + "40" +
		// zero-length payload, no trailing data
		strings.Repeat("00", 32)
	assert.Equal(t, want, hex.EncodeToString(data))
}

func TestEncodeLogActionTags(t *testing.T) {
	for _, tag := range []string{"plant", "water", "revive", "graft"} {
		data, err := EncodeLogAction(tag, "")
		require.NoError(t, err, tag)
		require.Len(t, data, 4+3*32, tag)
		assert.Equal(t, "2d9bc1fb", hex.EncodeToString(data[:4]), tag)
		assert.Equal(t, tag, string(data[4:4+len(tag)]), tag)
	}
}

func TestEncodeLogActionWithPayload(t *testing.T) {
	data, err := EncodeLogAction("graft", testAddr)
	require.NoError(t, err)

	// Head: selector + tag word + offset word + length word.
	require.Len(t, data, 4+3*32+32)
	lengthWord := data[4+2*32 : 4+3*32]
	assert.Equal(t, byte(20), lengthWord[31], "payload length should be 20 bytes")
	assert.Equal(t,
		strings.ToLower(strings.TrimPrefix(testAddr, "0x")),
		hex.EncodeToString(data[4+3*32:4+3*32+20]))
	// Tail padded with zeros to the 32-byte boundary.
	assert.Equal(t, strings.Repeat("00", 12), hex.EncodeToString(data[4+3*32+20:]))
}

func TestEncodeLogActionRejectsOddHex(t *testing.T) {
	_, err := EncodeLogAction("graft", "0xabc")
	assert.ErrorIs(t, err, ErrOddHex)
}

func TestEncodeLogActionRejectsBadTags(t *testing.T) {
	_, err := EncodeLogAction("", "")
	assert.ErrorIs(t, err, ErrEmptyTag)

	_, err = EncodeLogAction(strings.Repeat("x", 33), "")
	assert.ErrorIs(t, err, ErrTagTooLong)
}

func TestEncodeTransferVector(t *testing.T) {
	data, err := EncodeTransfer(testAddr, big.NewInt(5_000_000))
	require.NoError(t, err)

	want := "a9059cbb" +
		strings.Repeat("00", 12) + "742d35cc6634c0532925a3b844bc454e4438f44e" +
		strings.Repeat("00", 29) + "4c4b40"
	assert.Equal(t, want, hex.EncodeToString(data))
}

func TestEncodeTransferValidation(t *testing.T) {
	_, err := EncodeTransfer(testAddr, big.NewInt(0))
	assert.ErrorIs(t, err, ErrZeroAmount)

	_, err = EncodeTransfer(testAddr, big.NewInt(-5))
	assert.ErrorIs(t, err, ErrZeroAmount)

	_, err = EncodeTransfer(testAddr, nil)
	assert.ErrorIs(t, err, ErrZeroAmount)

	for _, bad := range []string{
		"",
		"0x",
		"742d35cc6634c0532925a3b844bc454e4438f44e",    // missing prefix
		"0x742d35cc6634c0532925a3b844bc454e4438f4",    // too short
		"0x742d35cc6634c0532925a3b844bc454e4438f44e1", // too long
		"0xzz2d35cc6634c0532925a3b844bc454e4438f44e",  // not hex
	} {
		_, err := EncodeTransfer(bad, big.NewInt(1))
		assert.ErrorIs(t, err, ErrBadAddress, bad)
	}

	over := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = EncodeTransfer(testAddr, over)
	assert.ErrorIs(t, err, ErrAmountRange)
}

func TestValidAddress(t *testing.T) {
	assert.True(t, ValidAddress(testAddr))
	assert.True(t, ValidAddress(strings.ToLower(testAddr)))
	assert.False(t, ValidAddress("0x0"))
	assert.False(t, ValidAddress(""))
}
