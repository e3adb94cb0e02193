package services

import (
	"errors"
	"strings"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/chain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type ErrorCode int

const (
	ErrValidation ErrorCode = iota + 1
	ErrNotConnected
	ErrUserRejected
	ErrInsufficientFunds
	ErrUnknownChain
	ErrRevert
	ErrInfrastructure
)

func (v ErrorCode) String() string {
	switch v {
	case ErrValidation:
		return "validation"
	case ErrNotConnected:
		return "not_connected"
	case ErrUserRejected:
		return "user_rejected"
	case ErrInsufficientFunds:
		return "insufficient_funds"
	case ErrUnknownChain:
		return "unknown_chain"
	case ErrRevert:
		return "revert"
	case ErrInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

// ActionError is the only error type the action layer returns.
// Message is safe to show to the user as is.
type ActionError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (v *ActionError) Error() string {
	return v.Message
}

func (v *ActionError) Unwrap() error {
	return v.Err
}

func validationError(message string) *ActionError {
	return &ActionError{Code: ErrValidation, Message: message}
}

var errNotConnected = &ActionError{Code: ErrNotConnected, Message: "Connect your wallet first!"}

// NotConnectedError is returned when no contract handle is available.
func NotConnectedError() *ActionError {
	return errNotConnected
}

type revertEntry struct {
	Match   string
	Message string
}

// Revert reasons the voting contract emits. Matching is by substring of the extracted reason.
var revertTable = []revertEntry{
	{"Only organizer can do it!", "Only organizer can do it!"},
	{"Already an approved voter!", "Already an approved voter!"},
	{"Already an approved candidate!", "Already an approved candidate!"},
	{"Already applied to be voter!", "Already applied to be voter!"},
	{"Already applied to be candidate!", "Already applied to be candidate!"},
	{"Voter doesn't exist!", "Voter doesn't exist!"},
	{"Candidate doesn't exist!", "Candidate doesn't exist!"},
	{"Not an approved voter!", "Not an approved voter!"},
	{"Group doesn't exist!", "Group doesn't exist!"},
	{"Candidate already in group!", "Candidate already in group!"},
	{"Candidate not in group!", "Candidate not in group!"},
	{"Age must be between 18 and 120!", "Age must be between 18 and 120!"},
	{"Start time must be before end time!", "Start time must be before end time!"},
	{"End time must be in the future!", "End time must be in the future!"},
	{"Invalid address!", "Invalid address!"},
}

func genericMessage(action string) string {
	return "Something went wrong while " + action + "!"
}

// extractReason picks the first non-empty of: decoded revert reason, provider message,
// data message, plain error text.
func extractReason(err error) string {
	var candidates []string

	var dataErr rpc.DataError
	hasData := errors.As(err, &dataErr)
	if hasData {
		candidates = append(candidates, revertReason(dataErr.ErrorData()))
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		candidates = append(candidates, rpcErr.Error())
	}
	if hasData {
		candidates = append(candidates, dataMessage(dataErr.ErrorData()))
	}
	candidates = append(candidates, err.Error())

	reason, _ := lo.Find(candidates, func(item string) bool {
		return len(strings.TrimSpace(item)) > 0
	})
	return reason
}

func revertReason(data any) string {
	raw, ok := data.(string)
	if !ok {
		return ""
	}
	encoded, err := hexutil.Decode(raw)
	if err != nil {
		return ""
	}
	reason, err := abi.UnpackRevert(encoded)
	if err != nil {
		return ""
	}
	return reason
}

func dataMessage(data any) string {
	switch val := data.(type) {
	case string:
		if strings.HasPrefix(val, "0x") {
			return ""
		}
		return val
	case map[string]any:
		if msg, ok := val["message"].(string); ok {
			return msg
		}
	}
	return ""
}

// translate maps any failure of an action into an ActionError.
func translate(action string, err error) *ActionError {
	if err == nil {
		return nil
	}
	var actionErr *ActionError
	if errors.As(err, &actionErr) {
		return actionErr
	}
	if errors.Is(err, chain.ErrNoSigner) {
		return &ActionError{Code: ErrNotConnected, Message: errNotConnected.Message, Err: err}
	}

	reason := extractReason(err)
	lowered := strings.ToLower(reason)

	switch {
	case chain.IsUserRejected(err) || strings.Contains(lowered, "user rejected") || strings.Contains(lowered, "user denied"):
		log.Debug().Err(err).Str("action", action).Msg("Transaction rejected by user...")
		return &ActionError{Code: ErrUserRejected, Message: "Transaction rejected by user.", Err: err}
	case chain.IsInsufficientFunds(err) || strings.Contains(lowered, "insufficient funds"):
		log.Debug().Err(err).Str("action", action).Msg("Wallet has insufficient funds...")
		return &ActionError{Code: ErrInsufficientFunds, Message: "Insufficient funds for gas.", Err: err}
	case chain.IsUnknownChain(err):
		log.Debug().Err(err).Str("action", action).Msg("Wallet is on an unknown network...")
		return &ActionError{Code: ErrUnknownChain, Message: "Please switch your wallet to the Sepolia network.", Err: err}
	}

	if entry, ok := lo.Find(revertTable, func(item revertEntry) bool {
		return strings.Contains(reason, item.Match)
	}); ok {
		log.Debug().Str("reason", reason).Str("action", action).Msg("Contract reverted...")
		return &ActionError{Code: ErrRevert, Message: entry.Message, Err: err}
	}

	log.Error().Err(err).Str("reason", reason).Str("action", action).Msg("An error occurred when calling the voting contract...")
	return &ActionError{Code: ErrInfrastructure, Message: genericMessage(action), Err: err}
}
