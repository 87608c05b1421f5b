package chain

import (
	"context"
	"fmt"
	"log/slog"
)

// Sender submits game calls through a wallet Provider, making sure the
// wallet sits on the configured chain first. It satisfies game.Submitter.
type Sender struct {
	provider   *Provider
	from       string
	chainID    uint64
	dataSuffix string
	log        *slog.Logger
}

// NewSender builds a Sender for one account on one chain. dataSuffix is the
// opaque attribution suffix forwarded to the wallet, may be empty.
func NewSender(p *Provider, from string, chainID uint64, dataSuffix string, log *slog.Logger) *Sender {
	if log == nil {
		log = slog.Default()
	}
	return &Sender{provider: p, from: from, chainID: chainID, dataSuffix: dataSuffix, log: log}
}

// Submit sends one call as an atomic wallet_sendCalls batch. The error is
// ErrDeclined when the user dismissed the prompt.
func (s *Sender) Submit(ctx context.Context, call Call) error {
	current, err := s.provider.ChainID(ctx)
	if err != nil {
		return err
	}
	if current != s.chainID {
		if err := s.provider.SwitchChain(ctx, s.chainID); err != nil {
			return fmt.Errorf("wrong chain %d: %w", current, err)
		}
	}

	req := SendCallsRequest{
		Version:        "2.0.0",
		From:           s.from,
		ChainID:        hexUint(s.chainID),
		AtomicRequired: true,
		Calls: []CallParam{{
			To:    call.To,
			Value: "0x0",
			Data:  HexData(call.Data),
		}},
	}
	if s.dataSuffix != "" {
		req.Capabilities = &Capabilities{DataSuffix: s.dataSuffix}
	}

	id, err := s.provider.SendCalls(ctx, req)
	if err != nil {
		return err
	}
	s.log.Info("call submitted", "to", call.To, "bundle", id)
	return nil
}

// OfflineSender logs the encoded call instead of submitting it. Used by the
// -offline flag so the whole action pipeline stays exercisable without a
// wallet endpoint.
type OfflineSender struct {
	log *slog.Logger
}

// NewOfflineSender builds an OfflineSender.
func NewOfflineSender(log *slog.Logger) *OfflineSender {
	if log == nil {
		log = slog.Default()
	}
	return &OfflineSender{log: log}
}

// Submit always succeeds after logging the payload.
func (s *OfflineSender) Submit(_ context.Context, call Call) error {
	s.log.Info("offline mode, call not submitted", "to", call.To, "data", HexData(call.Data))
	return nil
}
