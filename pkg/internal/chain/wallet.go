package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
)

// Backend is everything the gateway and the contract binding need from a node connection.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Wallet stands in for the browser injected provider.
type Wallet interface {
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	SwitchChain(ctx context.Context, chainID string) error
	AddChain(ctx context.Context, network Network) error
	Backend() Backend
	Transactor(chainID *big.Int) (*bind.TransactOpts, error)
}

type Dialer func(ctx context.Context, url string) (Backend, error)

func DialEthereum(ctx context.Context, url string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// KeyWallet holds a single private key and a registry of networks it knows about.
// Switching to a network it has not been told about fails with code 4902.
type KeyWallet struct {
	key *ecdsa.PrivateKey

	lock     sync.Mutex
	dial     Dialer
	networks map[string]Network
	backends map[string]Backend
	current  string
}

type WalletOption func(*KeyWallet)

func WithDialer(dial Dialer) WalletOption {
	return func(w *KeyWallet) {
		w.dial = dial
	}
}

// WithNetwork pre-registers a network, as if it had been added earlier.
func WithNetwork(network Network) WalletOption {
	return func(w *KeyWallet) {
		w.networks[NormalizeChainID(network.ChainID)] = network
	}
}

func NewKeyWallet(hexKey string, opts ...WalletOption) (*KeyWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %v", err)
	}
	return newKeyWallet(key, opts...), nil
}

func NewKeystoreWallet(keyJSON []byte, passphrase string, opts ...WalletOption) (*KeyWallet, error) {
	key, err := keystore.DecryptKey(keyJSON, passphrase)
	if err != nil {
		return nil, fmt.Errorf("unable to decrypt keystore: %v", err)
	}
	return newKeyWallet(key.PrivateKey, opts...), nil
}

func newKeyWallet(key *ecdsa.PrivateKey, opts ...WalletOption) *KeyWallet {
	w := &KeyWallet{
		key:      key,
		dial:     DialEthereum,
		networks: make(map[string]Network),
		backends: make(map[string]Backend),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (v *KeyWallet) Address() common.Address {
	return crypto.PubkeyToAddress(v.key.PublicKey)
}

func (v *KeyWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	return []common.Address{v.Address()}, nil
}

func (v *KeyWallet) SwitchChain(ctx context.Context, chainID string) error {
	id := NormalizeChainID(chainID)

	v.lock.Lock()
	defer v.lock.Unlock()

	network, ok := v.networks[id]
	if !ok {
		return unknownChainError(chainID)
	}
	if _, ok := v.backends[id]; !ok {
		backend, err := v.dial(ctx, network.RPCURL())
		if err != nil {
			return fmt.Errorf("unable to reach %s: %v", network.ChainName, err)
		}
		remote, err := backend.ChainID(ctx)
		if err != nil {
			return fmt.Errorf("unable to query chain id of %s: %v", network.ChainName, err)
		}
		if expected := network.ChainIDInt(); expected == nil || remote.Cmp(expected) != 0 {
			return fmt.Errorf("rpc endpoint of %s serves chain %s, expected %s", network.ChainName, remote, chainID)
		}
		v.backends[id] = backend
	}
	v.current = id

	log.Debug().Str("chain", id).Str("name", network.ChainName).Msg("Wallet switched network.")
	return nil
}

func (v *KeyWallet) AddChain(ctx context.Context, network Network) error {
	if network.ChainIDInt() == nil {
		return fmt.Errorf("invalid chain id: %q", network.ChainID)
	}
	if len(network.RPCURL()) == 0 {
		return fmt.Errorf("network %s has no rpc url", network.ChainName)
	}

	v.lock.Lock()
	defer v.lock.Unlock()
	v.networks[NormalizeChainID(network.ChainID)] = network

	log.Info().Str("chain", network.ChainID).Str("name", network.ChainName).Msg("Wallet registered network.")
	return nil
}

// Backend returns the connection of the current network, nil before the first successful switch.
func (v *KeyWallet) Backend() Backend {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.backends[v.current]
}

func (v *KeyWallet) Transactor(chainID *big.Int) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(v.key, chainID)
}
