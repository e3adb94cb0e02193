package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Connection is the account, contract handle and node connection produced by a successful connect.
type Connection struct {
	Account  common.Address
	Contract Voting
	Backend  Backend
}

type Gateway struct {
	Wallet          Wallet
	Network         Network
	ContractAddress common.Address
}

func NewGateway(wallet Wallet, network Network, contract common.Address) *Gateway {
	return &Gateway{
		Wallet:          wallet,
		Network:         network,
		ContractAddress: contract,
	}
}

// Connect requests account access, pins the wallet to the target network and binds the contract.
// No wallet yields a nil connection and a nil error.
// When the wallet does not know the network it is added and ErrNetworkAdded is returned,
// connecting again performs the switch.
func (v *Gateway) Connect(ctx context.Context) (*Connection, error) {
	if v == nil || v.Wallet == nil {
		return nil, nil
	}

	accounts, err := v.Wallet.RequestAccounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when requesting wallet accounts...")
		return nil, err
	} else if len(accounts) == 0 {
		return nil, fmt.Errorf("wallet exposed no accounts")
	}
	account := accounts[0]

	if err := v.Wallet.SwitchChain(ctx, v.Network.ChainID); err != nil {
		if !IsUnknownChain(err) {
			log.Error().Err(err).Msg("An error occurred when switching wallet network...")
			return nil, err
		}
		log.Debug().Err(err).Str("chain", v.Network.ChainID).Msg("Wallet does not know the target network, adding it...")
		if err := v.Wallet.AddChain(ctx, v.Network); err != nil {
			log.Error().Err(err).Msg("An error occurred when adding network to wallet...")
			return nil, err
		}
		return nil, ErrNetworkAdded
	}

	backend := v.Wallet.Backend()
	if backend == nil {
		return nil, fmt.Errorf("wallet has no connection to %s", v.Network.ChainName)
	}
	opts, err := v.Wallet.Transactor(v.Network.ChainIDInt())
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when building transaction signer...")
		return nil, err
	}

	log.Info().Str("account", account.Hex()).Str("contract", v.ContractAddress.Hex()).Msg("Wallet connected.")

	return &Connection{
		Account:  account,
		Contract: NewVotingContract(v.ContractAddress, backend, opts),
		Backend:  backend,
	}, nil
}

// ConnectWithRetry connects, and connects once more when the first attempt had to add the network.
func (v *Gateway) ConnectWithRetry(ctx context.Context) (*Connection, error) {
	conn, err := v.Connect(ctx)
	if errors.Is(err, ErrNetworkAdded) {
		return v.Connect(ctx)
	}
	return conn, err
}

// BalanceOf reads the native balance and formats it in ether.
// Missing inputs or provider failures give false.
func (v *Gateway) BalanceOf(ctx context.Context, account string, backend Backend) (string, bool) {
	if len(account) == 0 || backend == nil || !common.IsHexAddress(account) {
		return "", false
	}

	wei, err := backend.BalanceAt(ctx, common.HexToAddress(account), nil)
	if err != nil {
		log.Error().Err(err).Str("account", account).Msg("An error occurred when fetching balance...")
		return "", false
	}

	decimals := int32(18)
	if v != nil && v.Network.NativeCurrency.Decimals > 0 {
		decimals = int32(v.Network.NativeCurrency.Decimals)
	}
	return FormatUnits(wei, decimals), true
}

// FormatUnits renders an integer amount of the smallest unit as exact fixed point,
// always keeping one fractional digit like ethers' formatEther.
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0.0"
	}
	out := decimal.NewFromBigInt(amount, -decimals).String()
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
