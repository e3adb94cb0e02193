package services

import (
	"context"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Dashboard fans out the organizer overview reads. Any single failure fails the whole overview.
func (v *Actions) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	if err := v.ready(); err != nil {
		return models.DashboardStats{}, err
	}

	var stats models.DashboardStats
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		owner, err := v.GetOwner(ctx)
		stats.Owner = owner
		return err
	})
	eg.Go(func() error {
		total, err := v.GetTotalPollsLength(ctx)
		stats.TotalPolls = total
		return err
	})
	eg.Go(func() error {
		groups, err := v.groupSnapshot(ctx)
		if err != nil {
			return translate("fetching polls", err)
		}
		now := v.now()
		stats.CompletedPolls = uint64(lo.CountBy(groups, func(item models.Group) bool {
			return item.IsCompleted(now)
		}))
		stats.ExistingPolls = uint64(lo.CountBy(groups, func(item models.Group) bool {
			return item.Exists
		}))
		return nil
	})
	eg.Go(func() error {
		total, err := v.GetVotersLength(ctx)
		stats.TotalVoters = total
		return err
	})
	eg.Go(func() error {
		total, err := v.GetCandidatesLength(ctx)
		stats.TotalCandidates = total
		return err
	})
	eg.Go(func() error {
		total, err := v.GetTotalVotersToBeApproved(ctx)
		stats.VotersToBeApproved = total
		return err
	})
	eg.Go(func() error {
		total, err := v.GetTotalCandidatesToBeApproved(ctx)
		stats.CandidatesToBeApproved = total
		return err
	})

	if err := eg.Wait(); err != nil {
		log.Warn().Err(err).Msg("An error occurred when loading dashboard...")
		return models.DashboardStats{}, err
	}
	return stats, nil
}
