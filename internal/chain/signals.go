package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Signals is one read of the raw on-chain inputs the renderer's normalizer
// feeds on.
type Signals struct {
	Balance *big.Int
	TxCount uint64
}

// Reader fetches per-account signals from a read-only execution client.
type Reader struct {
	ec *ethclient.Client
}

// DialReader connects a Reader to a node RPC endpoint.
func DialReader(ctx context.Context, url string) (*Reader, error) {
	ec, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("chain: dial node: %w", err)
	}
	return &Reader{ec: ec}, nil
}

// Close releases the underlying connection.
func (r *Reader) Close() {
	r.ec.Close()
}

// Read fetches the latest balance and transaction count for account.
func (r *Reader) Read(ctx context.Context, account string) (Signals, error) {
	if !ValidAddress(account) {
		return Signals{}, fmt.Errorf("%w: %q", ErrBadAddress, account)
	}
	addr := common.HexToAddress(account)

	balance, err := r.ec.BalanceAt(ctx, addr, nil)
	if err != nil {
		return Signals{}, fmt.Errorf("chain: balance of %s: %w", addr.Hex(), err)
	}
	nonce, err := r.ec.NonceAt(ctx, addr, nil)
	if err != nil {
		return Signals{}, fmt.Errorf("chain: nonce of %s: %w", addr.Hex(), err)
	}
	return Signals{Balance: balance, TxCount: nonce}, nil
}
