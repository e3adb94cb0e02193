package chain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Network is the wallet_addEthereumChain parameter set.
type Network struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	RPCURLs           []string       `json:"rpcUrls"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

var Sepolia = Network{
	ChainID:   "0xaa36a7",
	ChainName: "Sepolia Testnet",
	RPCURLs:   []string{"https://rpc.sepolia.org"},
	NativeCurrency: NativeCurrency{
		Name:     "SepoliaETH",
		Symbol:   "SEP",
		Decimals: 18,
	},
	BlockExplorerURLs: []string{"https://sepolia.etherscan.io"},
}

// ChainIDInt decodes the hex chain id, nil when it is malformed.
func (v Network) ChainIDInt() *big.Int {
	id, err := hexutil.DecodeBig(v.ChainID)
	if err != nil {
		return nil
	}
	return id
}

func (v Network) RPCURL() string {
	if len(v.RPCURLs) == 0 {
		return ""
	}
	return v.RPCURLs[0]
}

// NormalizeChainID lowercases a hex chain id so registry lookups ignore casing.
func NormalizeChainID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ReadNetworkConfig starts from Sepolia and applies overrides from the [network] section.
func ReadNetworkConfig() Network {
	network := Sepolia
	if val := viper.GetString("network.chain_id"); len(val) > 0 {
		network.ChainID = val
	}
	if val := viper.GetString("network.chain_name"); len(val) > 0 {
		network.ChainName = val
	}
	if val := viper.GetStringSlice("network.rpc_urls"); len(val) > 0 {
		network.RPCURLs = val
	}
	if val := viper.GetStringSlice("network.explorer_urls"); len(val) > 0 {
		network.BlockExplorerURLs = val
	}
	if network.ChainIDInt() == nil {
		log.Warn().Str("chain", network.ChainID).Msg("Configured chain id is malformed, falling back to Sepolia...")
		network.ChainID = Sepolia.ChainID
	}
	return network
}
