package chain

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// ErrDeclined means the user rejected the wallet prompt. Distinct from
// transport failures: both leave game state untouched, but a decline is not
// worth logging as an error.
var ErrDeclined = errors.New("chain: request declined in wallet")

// EIP-1193 user rejection code.
const codeUserRejected = 4001

// SendCallsRequest is the wallet_sendCalls (EIP-5792) payload shape.
type SendCallsRequest struct {
	Version        string        `json:"version"`
	From           string        `json:"from"`
	ChainID        string        `json:"chainId"`
	AtomicRequired bool          `json:"atomicRequired"`
	Calls          []CallParam   `json:"calls"`
	Capabilities   *Capabilities `json:"capabilities,omitempty"`
}

// CallParam is one call inside a wallet_sendCalls batch.
type CallParam struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// Capabilities carries the opaque attribution suffix some wallets append to
// calldata. Supplied externally; passed through untouched.
type Capabilities struct {
	DataSuffix string `json:"dataSuffix,omitempty"`
}

// Provider talks to a wallet endpoint over JSON-RPC. It covers the four
// calls the game needs: account discovery, chain identification, chain
// switching and batched call submission.
type Provider struct {
	c   *rpc.Client
	log *slog.Logger
}

// DialProvider connects to a wallet RPC endpoint.
func DialProvider(ctx context.Context, url string, log *slog.Logger) (*Provider, error) {
	c, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("chain: dial wallet provider: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Provider{c: c, log: log}, nil
}

// NewProvider wraps an existing rpc client (used by tests).
func NewProvider(c *rpc.Client, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{c: c, log: log}
}

// Close releases the underlying connection.
func (p *Provider) Close() {
	p.c.Close()
}

// RequestAccounts asks the wallet for its unlocked accounts.
func (p *Provider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.c.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, walletErr("eth_requestAccounts", err)
	}
	return accounts, nil
}

// ChainID returns the wallet's current chain id.
func (p *Provider) ChainID(ctx context.Context) (uint64, error) {
	var raw string
	if err := p.c.CallContext(ctx, &raw, "eth_chainId"); err != nil {
		return 0, walletErr("eth_chainId", err)
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(raw, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("chain: bad chain id %q: %w", raw, err)
	}
	return id, nil
}

// SwitchChain asks the wallet to move to the given chain.
func (p *Provider) SwitchChain(ctx context.Context, chainID uint64) error {
	param := map[string]string{"chainId": hexUint(chainID)}
	var result json.RawMessage
	if err := p.c.CallContext(ctx, &result, "wallet_switchEthereumChain", param); err != nil {
		return walletErr("wallet_switchEthereumChain", err)
	}
	return nil
}

// SendCalls submits a batch through wallet_sendCalls and returns the
// wallet's bundle identifier.
func (p *Provider) SendCalls(ctx context.Context, req SendCallsRequest) (string, error) {
	var result json.RawMessage
	if err := p.c.CallContext(ctx, &result, "wallet_sendCalls", req); err != nil {
		return "", walletErr("wallet_sendCalls", err)
	}
	p.log.Debug("wallet_sendCalls accepted", "from", req.From, "chain", req.ChainID)
	return bundleID(result), nil
}

// walletErr maps a user rejection onto ErrDeclined and wraps anything else.
func walletErr(method string, err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == codeUserRejected {
		return ErrDeclined
	}
	return fmt.Errorf("chain: %s: %w", method, err)
}

// bundleID extracts the identifier from a wallet_sendCalls result, which is
// either a bare string or an {"id": ...} object depending on wallet vintage.
func bundleID(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var obj struct {
		ID string `json:"id"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		return obj.ID
	}
	return string(raw)
}

// HexData formats calldata for the JSON-RPC wire.
func HexData(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}

func hexUint(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}
