// Package wallet provides a local signing provider implementation.
//
// The provider stands in for an external wallet: it owns the account list and
// the active chain, and pushes account/chain change notifications to
// subscribers in registration order, run to completion.
package wallet

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/chain"
	"github.com/chainproof/chainproof-backend/internal/model"
)

// Provider is a signing provider backed by a static keyring. It satisfies the
// connection manager's SigningProvider interface.
type Provider struct {
	mu       sync.Mutex
	logger   *zap.Logger
	accounts []model.AccountID
	chainID  model.ChainID
	known    map[model.ChainID]struct{}

	acctSubs  map[uuid.UUID]func([]model.AccountID)
	chainSubs map[uuid.UUID]func(model.ChainID)
	acctOrder []uuid.UUID
	chOrder   []uuid.UUID
}

// NewProvider constructs a Provider holding the given accounts on chainID.
// knownChains lists the chains the provider is willing to switch to.
func NewProvider(logger *zap.Logger, accounts []model.AccountID, chainID model.ChainID, knownChains []model.ChainID) *Provider {
	known := make(map[model.ChainID]struct{}, len(knownChains)+1)
	known[chainID] = struct{}{}
	for _, id := range knownChains {
		known[id] = struct{}{}
	}
	return &Provider{
		logger:    logger,
		accounts:  append([]model.AccountID(nil), accounts...),
		chainID:   chainID,
		known:     known,
		acctSubs:  make(map[uuid.UUID]func([]model.AccountID)),
		chainSubs: make(map[uuid.UUID]func(model.ChainID)),
	}
}

// RequestAccounts returns the accounts the user has exposed.
func (p *Provider) RequestAccounts(_ context.Context) ([]model.AccountID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]model.AccountID(nil), p.accounts...), nil
}

// ChainID returns the active chain identifier.
func (p *Provider) ChainID(_ context.Context) (model.ChainID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.chainID, nil
}

// SwitchChain changes the active chain and notifies chain subscribers.
// Unknown chains fail with the provider's unrecognized-chain code.
func (p *Provider) SwitchChain(_ context.Context, id model.ChainID) error {
	p.mu.Lock()
	if _, ok := p.known[id]; !ok {
		p.mu.Unlock()
		return chain.NewProviderError(chain.CodeUnrecognizedChain, "unrecognized chain "+string(id))
	}
	if p.chainID == id {
		p.mu.Unlock()
		return nil
	}
	p.chainID = id
	subs := p.chainSubsLocked()
	p.mu.Unlock()

	p.logger.Info("provider switched chain", zap.String("chain_id", string(id)))
	for _, fn := range subs {
		fn(id)
	}
	return nil
}

// SubscribeAccountsChanged registers fn for account change notifications.
func (p *Provider) SubscribeAccountsChanged(fn func([]model.AccountID)) uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := uuid.New()
	p.acctSubs[id] = fn
	p.acctOrder = append(p.acctOrder, id)
	return id
}

// SubscribeChainChanged registers fn for chain change notifications.
func (p *Provider) SubscribeChainChanged(fn func(model.ChainID)) uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := uuid.New()
	p.chainSubs[id] = fn
	p.chOrder = append(p.chOrder, id)
	return id
}

// Unsubscribe removes a subscription of either kind.
func (p *Provider) Unsubscribe(id uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.acctSubs, id)
	delete(p.chainSubs, id)
	p.acctOrder = pruneID(p.acctOrder, id)
	p.chOrder = pruneID(p.chOrder, id)
}

func pruneID(order []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, sid := range order {
		if sid == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// SetAccounts replaces the exposed account list and notifies subscribers.
// An empty list models the user disconnecting the wallet.
func (p *Provider) SetAccounts(accounts []model.AccountID) {
	p.mu.Lock()
	p.accounts = append([]model.AccountID(nil), accounts...)
	subs := p.acctSubsLocked()
	snapshot := append([]model.AccountID(nil), p.accounts...)
	p.mu.Unlock()

	p.logger.Info("provider accounts changed", zap.Int("count", len(snapshot)))
	for _, fn := range subs {
		fn(append([]model.AccountID(nil), snapshot...))
	}
}

func (p *Provider) acctSubsLocked() []func([]model.AccountID) {
	subs := make([]func([]model.AccountID), 0, len(p.acctSubs))
	for _, id := range p.acctOrder {
		if fn, ok := p.acctSubs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

func (p *Provider) chainSubsLocked() []func(model.ChainID) {
	subs := make([]func(model.ChainID), 0, len(p.chainSubs))
	for _, id := range p.chOrder {
		if fn, ok := p.chainSubs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}
