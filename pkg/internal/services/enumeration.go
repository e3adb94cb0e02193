package services

import (
	"context"
	"fmt"
	"math/big"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

const groupSnapshotTag = "group-snapshot"

var zeroAddress = common.Address{}

type groupSnapshotEntry struct {
	Groups []models.Group
}

func (v *Actions) groupSnapshotCacheKey(counter *big.Int) string {
	return fmt.Sprintf("group-snapshot#%s#%s", v.namespace, counter.String())
}

// groupSnapshot returns every group slot from 0 through the counter inclusive.
// The snapshot is cached under the counter value, so a new group misses by itself.
func (v *Actions) groupSnapshot(ctx context.Context) ([]models.Group, error) {
	counter, err := v.contract.GroupID(ctx)
	if err != nil {
		return nil, err
	}
	if counter == nil || !counter.IsUint64() {
		return nil, fmt.Errorf("group counter out of range: %v", counter)
	}

	key := v.groupSnapshotCacheKey(counter)
	if v.cache != nil {
		if val, err := v.cache.Get(ctx, key, new(groupSnapshotEntry)); err == nil {
			if snapshot, ok := val.(*groupSnapshotEntry); ok {
				return snapshot.Groups, nil
			}
		}
	}

	total := counter.Uint64()
	groups := make([]models.Group, 0, total+1)
	for idx := uint64(0); idx <= total; idx++ {
		rec, err := v.contract.Groups(ctx, new(big.Int).SetUint64(idx))
		if err != nil {
			return nil, err
		}
		groups = append(groups, groupFromRecord(rec))
	}

	if v.cache != nil {
		if err := v.cache.Set(
			ctx,
			key,
			groupSnapshotEntry{Groups: groups},
			store.WithExpiration(v.cacheTTL),
			store.WithTags([]string{groupSnapshotTag}),
		); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Unable to cache group snapshot...")
		}
	}

	return groups, nil
}

func (v *Actions) invalidateGroups(ctx context.Context) {
	if v.cache == nil {
		return
	}
	if err := v.cache.Invalidate(ctx, store.WithInvalidateTags([]string{groupSnapshotTag})); err != nil {
		log.Warn().Err(err).Msg("Unable to invalidate group snapshot...")
	}
}

// Pending lists keep stale and zero slots after removal. Only records still
// waiting for approval with a real address are returned.

func (v *Actions) walkPendingVoters(ctx context.Context) ([]models.Voter, error) {
	length, err := v.contract.GetVotersToBeAllowedListLength(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Voter
	for idx := uint64(0); idx < toUint64(length); idx++ {
		address, err := v.contract.VotersToBeAllowedList(ctx, new(big.Int).SetUint64(idx))
		if err != nil {
			return nil, err
		}
		if address == zeroAddress {
			continue
		}
		rec, err := v.contract.VotersToBeAllowed(ctx, address)
		if err != nil {
			return nil, err
		}
		if !rec.Exists && rec.VoterAddress != zeroAddress {
			out = append(out, voterFromRecord(rec))
		}
	}
	return out, nil
}

func (v *Actions) walkPendingCandidates(ctx context.Context) ([]models.Candidate, error) {
	length, err := v.contract.GetCandidatesToBeAllowedListLength(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Candidate
	for idx := uint64(0); idx < toUint64(length); idx++ {
		address, err := v.contract.CandidatesToBeAllowedList(ctx, new(big.Int).SetUint64(idx))
		if err != nil {
			return nil, err
		}
		if address == zeroAddress {
			continue
		}
		rec, err := v.contract.CandidatesToBeAllowed(ctx, address)
		if err != nil {
			return nil, err
		}
		if !rec.Exists && rec.CandidateAddress != zeroAddress {
			out = append(out, candidateFromRecord(rec))
		}
	}
	return out, nil
}
