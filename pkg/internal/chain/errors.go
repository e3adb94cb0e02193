package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-1193 provider error codes.
const (
	CodeUserRejected = 4001
	CodeUnknownChain = 4902
)

var (
	ErrNoSigner     = errors.New("contract handle has no signer")
	ErrNetworkAdded = errors.New("network added to wallet, connect again to switch")
)

// WalletError is returned by wallets for provider level conditions.
// It satisfies rpc.Error so it is handled the same way as errors from a remote provider.
type WalletError struct {
	Code    int
	Message string
}

func (v *WalletError) Error() string {
	return v.Message
}

func (v *WalletError) ErrorCode() int {
	return v.Code
}

func errorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

func IsUnknownChain(err error) bool {
	code, ok := errorCode(err)
	return ok && code == CodeUnknownChain
}

func IsUserRejected(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := errorCode(err); ok && code == CodeUserRejected {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "user rejected") || strings.Contains(msg, "user denied")
}

func IsInsufficientFunds(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "insufficient funds")
}

func unknownChainError(chainID string) error {
	return &WalletError{
		Code:    CodeUnknownChain,
		Message: fmt.Sprintf("Unrecognized chain ID %q. Try adding the chain using wallet_addEthereumChain first.", chainID),
	}
}
