// Command calldata prints the encoded payload for game calls, for checking
// encodings against a node or a block explorer by eye.
//
//	calldata -tag water
//	calldata -tag graft -aux 0x2222222222222222222222222222222222222222
//	calldata -transfer-to 0x... -amount 5000000
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/0xnurrabby/Bonsai/internal/chain"
)

func main() {
	tag := flag.String("tag", "", "action tag for a log call (plant, water, revive, graft)")
	aux := flag.String("aux", "", "optional hex payload for the log call")
	transferTo := flag.String("transfer-to", "", "recipient for a token transfer call")
	amount := flag.Uint64("amount", 0, "transfer amount in token base units")
	flag.Parse()

	var (
		data []byte
		err  error
	)
	switch {
	case *transferTo != "":
		data, err = chain.EncodeTransfer(*transferTo, new(big.Int).SetUint64(*amount))
	case *tag != "":
		data, err = chain.EncodeLogAction(*tag, *aux)
	default:
		fmt.Fprintln(os.Stderr, "either -tag or -transfer-to is required")
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(chain.HexData(data))
}
