package connection

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/chainproof/chainproof-backend/internal/model"
)

// Descriptor describes the record store interface deployed at an address.
type Descriptor struct {
	Name    string
	Methods []string
}

// StoreDescriptor returns the descriptor of the verification record store.
func StoreDescriptor() Descriptor {
	return Descriptor{
		Name: "VerificationRegistry",
		Methods: []string{
			"storeRecord",
			"getRecord",
			"getUserRecords",
			"getUserRecordCount",
			"recordExists",
		},
	}
}

// Binding pairs a store descriptor and deployed address with a signing
// context. A binding is immutable; rebinding derives a new one with the
// current signing context. An in-flight submission keeps the binding it was
// created with and resolves under it.
type Binding struct {
	desc    Descriptor
	address model.Address
	client  NodeClient
	signer  model.AccountID
	chainID model.ChainID
}

func newBinding(desc Descriptor, address model.Address, client NodeClient, signer model.AccountID, chainID model.ChainID) *Binding {
	return &Binding{
		desc:    desc,
		address: address,
		client:  client,
		signer:  signer,
		chainID: chainID,
	}
}

// withSigner derives a binding for the same descriptor/address under a new
// signing identity.
func (b *Binding) withSigner(signer model.AccountID) *Binding {
	return newBinding(b.desc, b.address, b.client, signer, b.chainID)
}

// Signer returns the identity writes are signed with.
func (b *Binding) Signer() model.AccountID {
	return b.signer
}

// Address returns the deployed store address.
func (b *Binding) Address() model.Address {
	return b.address
}

// ensureChain verifies the node still executes on the chain the binding was
// derived for. Identifiers, costs and addresses do not carry across chains.
func (b *Binding) ensureChain(ctx context.Context) error {
	current, err := b.client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("query chain id: %w", err)
	}
	if current != b.chainID {
		return fmt.Errorf("bound to %s, node on %s: %w", b.chainID, current, ErrWrongNetwork)
	}
	return nil
}

// EstimateStoreUnits queries the resource usage estimate for a store call.
func (b *Binding) EstimateStoreUnits(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (uint64, error) {
	if err := b.ensureChain(ctx); err != nil {
		return 0, err
	}
	return b.client.EstimateStoreUnits(ctx, b.signer, digest, isAuthentic, confidence)
}

// UnitPrice returns the network's current price per resource unit.
func (b *Binding) UnitPrice(ctx context.Context) (uint64, error) {
	return b.client.UnitPrice(ctx)
}

// SubmitStore signs and submits a storeRecord call, returning the pending
// transaction hash. Once sent the submission cannot be revoked.
func (b *Binding) SubmitStore(ctx context.Context, digest chainhash.Hash, isAuthentic bool, confidence uint8) (chainhash.Hash, error) {
	if err := b.ensureChain(ctx); err != nil {
		return chainhash.Hash{}, err
	}
	return b.client.SubmitStore(ctx, b.signer, digest, isAuthentic, confidence)
}

// TransactionByHash returns the lifecycle snapshot for a submitted write.
// No chain check here: an already-signed transaction resolves independently
// under the context it was signed with.
func (b *Binding) TransactionByHash(ctx context.Context, txHash chainhash.Hash) (model.PendingTransaction, error) {
	return b.client.TransactionByHash(ctx, txHash)
}

// Height returns the current block height, used for advisory confirmation
// counting.
func (b *Binding) Height(ctx context.Context) (uint64, error) {
	return b.client.Height(ctx)
}

// Record reads the stored record for digest through the binding.
func (b *Binding) Record(ctx context.Context, digest chainhash.Hash) (model.VerificationRecord, error) {
	if err := b.ensureChain(ctx); err != nil {
		return model.VerificationRecord{}, err
	}
	return b.client.Record(ctx, digest)
}

// UserRecords reads the caller's append-only digest index.
func (b *Binding) UserRecords(ctx context.Context) ([]chainhash.Hash, error) {
	if err := b.ensureChain(ctx); err != nil {
		return nil, err
	}
	return b.client.UserRecords(ctx, b.signer)
}
