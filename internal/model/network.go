package model

// AccountID identifies a signing identity supplied by the wallet provider.
type AccountID string

// ChainID identifies the ledger execution context. Identifiers, costs and
// deployed addresses are not interchangeable across chains.
type ChainID string

// Address is the deployed location of the record store on a chain.
type Address string

// Network is the user-facing key selecting a chain.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
)

// ConnectionStatus is an idempotent snapshot of the client connection state.
type ConnectionStatus struct {
	Connected bool
	Account   AccountID
	ChainID   ChainID
	Bound     bool
}
