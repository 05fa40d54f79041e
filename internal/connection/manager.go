// Package connection owns the client-side connection state: the signing
// identity, the active chain and the contract binding derived from them.
//
// Exactly one Manager exists per running client. Every state mutation,
// whether caller-invoked or triggered by a provider notification, is
// serialized behind one mutex.
package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainproof/chainproof-backend/internal/model"
)

var (
	// ErrWalletUnavailable indicates no signing provider is present.
	ErrWalletUnavailable = errors.New("no signing provider available")
	// ErrNoAccounts indicates the provider exposed an empty account list.
	ErrNoAccounts = errors.New("signing provider returned no accounts")
	// ErrNotConnected indicates an operation that requires an active signing context.
	ErrNotConnected = errors.New("not connected")
	// ErrWrongNetwork indicates the signing context is bound to a different chain.
	ErrWrongNetwork = errors.New("signing context on unexpected chain")
)

// State is the connection lifecycle state.
type State string

var (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

// Event describes a connection state transition observable by subscribers.
type Event string

var (
	EventConnected          Event = "connected"
	EventDisconnected       Event = "disconnected"
	EventWalletDisconnected Event = "wallet_disconnected"
	EventIdentityChanged    Event = "identity_changed"
	EventChainChanged       Event = "chain_changed"
)

// Manager reacts to connect/disconnect calls and external account/network
// change notifications, and owns the single contract binding handle.
type Manager struct {
	mu       sync.Mutex
	logger   *zap.Logger
	provider SigningProvider

	state    State
	account  model.AccountID
	chainID  model.ChainID
	binding  *Binding
	acctSub  uuid.UUID
	chainSub uuid.UUID

	subs     map[uuid.UUID]func(Event)
	subOrder []uuid.UUID
}

// NewManager constructs a Manager. provider may be nil, in which case
// Connect fails with ErrWalletUnavailable.
func NewManager(logger *zap.Logger, provider SigningProvider) *Manager {
	return &Manager{
		logger:   logger,
		provider: provider,
		state:    StateDisconnected,
		subs:     make(map[uuid.UUID]func(Event)),
	}
}

// Connect requests account access from the signing provider and, on success,
// captures the identity and chain identifier and subscribes to change
// notifications.
func (m *Manager) Connect(ctx context.Context) (model.ConnectionStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateConnected {
		return m.statusLocked(), nil
	}
	if m.provider == nil {
		return model.ConnectionStatus{}, ErrWalletUnavailable
	}

	m.state = StateConnecting
	accounts, err := m.provider.RequestAccounts(ctx)
	if err != nil {
		m.state = StateDisconnected
		return model.ConnectionStatus{}, fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		m.state = StateDisconnected
		return model.ConnectionStatus{}, ErrNoAccounts
	}
	chainID, err := m.provider.ChainID(ctx)
	if err != nil {
		m.state = StateDisconnected
		return model.ConnectionStatus{}, fmt.Errorf("query chain id: %w", err)
	}

	m.account = accounts[0]
	m.chainID = chainID
	m.acctSub = m.provider.SubscribeAccountsChanged(m.onAccountsChanged)
	m.chainSub = m.provider.SubscribeChainChanged(m.onChainChanged)
	m.state = StateConnected

	m.logger.Info("wallet connected",
		zap.String("account", string(m.account)),
		zap.String("chain_id", string(m.chainID)),
	)
	m.emitLocked(EventConnected)
	return m.statusLocked(), nil
}

// Disconnect clears all connection state and unsubscribes from provider
// notifications.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateDisconnected {
		return
	}
	m.teardownLocked()
	m.logger.Info("wallet disconnected")
	m.emitLocked(EventDisconnected)
}

// Status returns an idempotent snapshot of the connection state.
func (m *Manager) Status() model.ConnectionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.statusLocked()
}

// Bind derives a binding handle from the descriptor, address and the current
// signing context. It requires Connected state.
func (m *Manager) Bind(desc Descriptor, address model.Address, client NodeClient) (*Binding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateConnected {
		return nil, ErrNotConnected
	}
	m.binding = newBinding(desc, address, client, m.account, m.chainID)
	m.logger.Info("record store bound",
		zap.String("address", string(address)),
		zap.String("signer", string(m.account)),
	)
	return m.binding, nil
}

// Rebind re-derives the binding handle with the same descriptor and address
// but the current signing context.
func (m *Manager) Rebind() (*Binding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateConnected || m.binding == nil {
		return nil, ErrNotConnected
	}
	m.binding = m.binding.withSigner(m.account)
	return m.binding, nil
}

// CurrentBinding returns the active binding handle, if any.
func (m *Manager) CurrentBinding() (*Binding, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.binding, m.binding != nil
}

// SwitchNetwork asks the provider to switch the active chain. The resulting
// chain-changed notification re-initializes the execution context.
func (m *Manager) SwitchNetwork(ctx context.Context, id model.ChainID) error {
	m.mu.Lock()
	provider := m.provider
	m.mu.Unlock()

	if provider == nil {
		return ErrWalletUnavailable
	}
	// Called without the lock held: the provider delivers the chain-changed
	// notification synchronously and the handler takes the lock itself.
	return provider.SwitchChain(ctx, id)
}

// Subscribe registers fn for connection events, delivered in subscription
// order, run to completion, within the manager's serialized state mutation.
func (m *Manager) Subscribe(fn func(Event)) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New()
	m.subs[id] = fn
	m.subOrder = append(m.subOrder, id)
	return id
}

// Unsubscribe removes a previously registered subscriber.
func (m *Manager) Unsubscribe(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.subs, id)
	for i, sid := range m.subOrder {
		if sid == id {
			m.subOrder = append(m.subOrder[:i], m.subOrder[i+1:]...)
			break
		}
	}
}

func (m *Manager) onAccountsChanged(accounts []model.AccountID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateConnected {
		return
	}
	if len(accounts) == 0 {
		m.teardownLocked()
		m.logger.Warn("wallet reported no accounts, disconnecting")
		m.emitLocked(EventWalletDisconnected)
		return
	}
	if accounts[0] == m.account {
		return
	}

	m.account = accounts[0]
	if m.binding != nil {
		m.binding = m.binding.withSigner(m.account)
	}
	m.logger.Info("signing identity changed", zap.String("account", string(m.account)))
	m.emitLocked(EventIdentityChanged)
}

// onChainChanged treats a chain switch as invalidating the entire execution
// context: the binding is dropped and identity and chain are re-read from
// the provider rather than partially reused.
func (m *Manager) onChainChanged(id model.ChainID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateConnected {
		return
	}

	m.binding = nil
	accounts, err := m.provider.RequestAccounts(context.Background())
	if err != nil || len(accounts) == 0 {
		m.teardownLocked()
		m.logger.Warn("re-initialization after chain change failed, disconnecting", zap.Error(err))
		m.emitLocked(EventWalletDisconnected)
		return
	}

	m.account = accounts[0]
	m.chainID = id
	m.logger.Info("chain changed, execution context re-initialized",
		zap.String("chain_id", string(id)),
		zap.String("account", string(m.account)),
	)
	m.emitLocked(EventChainChanged)
}

func (m *Manager) teardownLocked() {
	if m.provider != nil {
		m.provider.Unsubscribe(m.acctSub)
		m.provider.Unsubscribe(m.chainSub)
	}
	m.state = StateDisconnected
	m.account = ""
	m.chainID = ""
	m.binding = nil
	m.acctSub = uuid.UUID{}
	m.chainSub = uuid.UUID{}
}

func (m *Manager) statusLocked() model.ConnectionStatus {
	return model.ConnectionStatus{
		Connected: m.state == StateConnected,
		Account:   m.account,
		ChainID:   m.chainID,
		Bound:     m.binding != nil,
	}
}

func (m *Manager) emitLocked(event Event) {
	for _, id := range m.subOrder {
		if fn, ok := m.subs[id]; ok {
			fn(event)
		}
	}
}
