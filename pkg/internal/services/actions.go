package services

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	localCache "git.solsynth.dev/hypernet/votechain/pkg/internal/cache"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/chain"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

const (
	MinimumAge = 18
	MaximumAge = 120
)

// Actions wraps one contract handle. It is safe for concurrent use as long as the handle is.
type Actions struct {
	contract  chain.Voting
	now       func() time.Time
	cache     *marshaler.Marshaler
	cacheTTL  time.Duration
	namespace string
}

type Option func(*Actions)

func WithClock(now func() time.Time) Option {
	return func(v *Actions) {
		v.now = now
	}
}

// WithCache stores group enumerations in the given store, nil disables caching.
// A non-positive ttl keeps the default.
func WithCache(source store.StoreInterface, ttl time.Duration) Option {
	return func(v *Actions) {
		if source == nil {
			v.cache = nil
			return
		}
		v.cache = marshaler.New(cache.New[any](source))
		if ttl > 0 {
			v.cacheTTL = ttl
		}
	}
}

// WithNamespace separates cache entries of different contracts.
func WithNamespace(namespace string) Option {
	return func(v *Actions) {
		v.namespace = namespace
	}
}

func NewActions(contract chain.Voting, opts ...Option) *Actions {
	v := &Actions{
		contract: contract,
		now:      time.Now,
		cacheTTL: 10 * time.Minute,
	}
	if localCache.S != nil {
		v.cache = marshaler.New(cache.New[any](localCache.S))
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Actions) ready() error {
	if v == nil || v.contract == nil {
		return errNotConnected
	}
	return nil
}

// CanonicalAddress returns the EIP-55 form of a hex address.
func CanonicalAddress(address string) (string, bool) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", false
	}
	return common.HexToAddress(address).Hex(), true
}

// SameAddress compares two addresses after canonicalizing both.
func SameAddress(a, b string) bool {
	ca, ok := CanonicalAddress(a)
	if !ok {
		return false
	}
	cb, ok := CanonicalAddress(b)
	return ok && ca == cb
}

func requireAddress(address, missing string) (common.Address, *ActionError) {
	if len(strings.TrimSpace(address)) == 0 {
		return common.Address{}, validationError(missing)
	}
	canonical, ok := CanonicalAddress(address)
	if !ok {
		return common.Address{}, validationError("Invalid address!")
	}
	return common.HexToAddress(canonical), nil
}

func requireGroupID(groupID string) (*big.Int, *ActionError) {
	groupID = strings.TrimSpace(groupID)
	if len(groupID) == 0 {
		return nil, validationError("Group id required!")
	}
	id, ok := new(big.Int).SetString(groupID, 10)
	if !ok || id.Sign() < 0 {
		return nil, validationError("Invalid group id!")
	}
	return id, nil
}

func validateAge(age int) *ActionError {
	switch {
	case age == 0:
		return validationError("Age required!")
	case age < MinimumAge:
		return validationError("Age must be at least 18!")
	case age > MaximumAge:
		return validationError("Age must not be more than 120!")
	}
	return nil
}

func parseTimestamp(value string) (int64, bool) {
	ts, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || ts < 0 {
		return 0, false
	}
	return ts, true
}

// submit sends one transaction and waits for its inclusion. It never retries.
func (v *Actions) submit(ctx context.Context, action string, send func() (*types.Transaction, error)) error {
	tx, err := send()
	if err != nil {
		return translate(action, err)
	}

	log.Debug().Str("tx", tx.Hash().Hex()).Str("action", action).Msg("Transaction submitted, waiting for inclusion...")

	receipt, err := v.contract.WaitMined(ctx, tx)
	if err != nil {
		return translate(action, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		log.Warn().Str("tx", tx.Hash().Hex()).Str("action", action).Msg("Transaction reverted after inclusion...")
		return &ActionError{
			Code:    ErrRevert,
			Message: genericMessage(action),
			Err:     fmt.Errorf("transaction %s reverted", tx.Hash().Hex()),
		}
	}

	log.Info().Str("tx", tx.Hash().Hex()).Str("action", action).Uint64("block", toUint64(receipt.BlockNumber)).Msg("Transaction included.")
	return nil
}

func toUint64(val *big.Int) uint64 {
	if val == nil || !val.IsUint64() {
		return 0
	}
	return val.Uint64()
}

func toInt64(val *big.Int) int64 {
	if val == nil || !val.IsInt64() {
		return 0
	}
	return val.Int64()
}

func voterFromRecord(rec chain.VoterRecord) models.Voter {
	return models.Voter{
		ID:           toUint64(rec.Id),
		Name:         rec.Name,
		VoterAddress: rec.VoterAddress.Hex(),
		Age:          toUint64(rec.Age),
		Image:        rec.Image,
		Ipfs:         rec.Ipfs,
		VoteCount:    toUint64(rec.VoteCount),
		Exists:       rec.Exists,
	}
}

func candidateFromRecord(rec chain.CandidateRecord) models.Candidate {
	return models.Candidate{
		ID:               toUint64(rec.Id),
		Name:             rec.Name,
		CandidateAddress: rec.CandidateAddress.Hex(),
		Age:              toUint64(rec.Age),
		Image:            rec.Image,
		Ipfs:             rec.Ipfs,
		VoteCount:        toUint64(rec.VoteCount),
		Exists:           rec.Exists,
	}
}

func groupFromRecord(rec chain.GroupRecord) models.Group {
	return models.Group{
		ID:                       toUint64(rec.Id),
		Name:                     rec.Name,
		Image:                    rec.Image,
		Ipfs:                     rec.Ipfs,
		Description:              rec.Description,
		RequiresRegisteredVoters: rec.RequiresRegisteredVoters,
		Exists:                   rec.Exists,
		StartTime:                toInt64(rec.StartTime),
		EndTime:                  toInt64(rec.EndTime),
	}
}
