package services

import (
	"context"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/models"
	"github.com/samber/lo"
)

func (v *Actions) GetOwner(ctx context.Context) (string, error) {
	if err := v.ready(); err != nil {
		return "", err
	}
	owner, err := v.contract.VotingOrganizer(ctx)
	if err != nil {
		return "", translate("fetching owner", err)
	}
	return owner.Hex(), nil
}

// IsOrganizer gates the administrative pages.
func (v *Actions) IsOrganizer(ctx context.Context, account string) (bool, error) {
	owner, err := v.GetOwner(ctx)
	if err != nil {
		return false, err
	}
	return SameAddress(owner, account), nil
}

func (v *Actions) GetCandidatesLength(ctx context.Context) (uint64, error) {
	if err := v.ready(); err != nil {
		return 0, err
	}
	length, err := v.contract.GetCandidatesLength(ctx)
	if err != nil {
		return 0, translate("fetching candidates count", err)
	}
	return toUint64(length), nil
}

func (v *Actions) GetVotersLength(ctx context.Context) (uint64, error) {
	if err := v.ready(); err != nil {
		return 0, err
	}
	length, err := v.contract.GetVotersLength(ctx)
	if err != nil {
		return 0, translate("fetching voters count", err)
	}
	return toUint64(length), nil
}

func (v *Actions) GetCandidateData(ctx context.Context, candidate string) (models.Candidate, error) {
	if err := v.ready(); err != nil {
		return models.Candidate{}, err
	}
	address, verr := requireAddress(candidate, "Candidate address required!")
	if verr != nil {
		return models.Candidate{}, verr
	}
	rec, err := v.contract.GetCandidateData(ctx, address)
	if err != nil {
		return models.Candidate{}, translate("fetching candidate", err)
	}
	return candidateFromRecord(rec), nil
}

func (v *Actions) GetVoterData(ctx context.Context, voter string) (models.Voter, error) {
	if err := v.ready(); err != nil {
		return models.Voter{}, err
	}
	address, verr := requireAddress(voter, "Voter address required!")
	if verr != nil {
		return models.Voter{}, verr
	}
	rec, err := v.contract.GetVoterData(ctx, address)
	if err != nil {
		return models.Voter{}, translate("fetching voter", err)
	}
	return voterFromRecord(rec), nil
}

// GetProfile reads the approved voter record of the account. Exists is false until approval.
func (v *Actions) GetProfile(ctx context.Context, account string) (models.Voter, error) {
	if err := v.ready(); err != nil {
		return models.Voter{}, err
	}
	address, verr := requireAddress(account, "Account required!")
	if verr != nil {
		return models.Voter{}, verr
	}
	rec, err := v.contract.Voters(ctx, address)
	if err != nil {
		return models.Voter{}, translate("fetching profile", err)
	}
	return voterFromRecord(rec), nil
}

func (v *Actions) CheckIfAlreadyAppliedToBeVoter(ctx context.Context, account string) (bool, error) {
	if err := v.ready(); err != nil {
		return false, err
	}
	address, verr := requireAddress(account, "Account required!")
	if verr != nil {
		return false, verr
	}
	rec, err := v.contract.VotersToBeAllowed(ctx, address)
	if err != nil {
		return false, translate("checking application", err)
	}
	return rec.VoterAddress != zeroAddress, nil
}

func (v *Actions) CheckIfAlreadyAppliedToBeCandidate(ctx context.Context, account string) (bool, error) {
	if err := v.ready(); err != nil {
		return false, err
	}
	address, verr := requireAddress(account, "Account required!")
	if verr != nil {
		return false, verr
	}
	rec, err := v.contract.CandidatesToBeAllowed(ctx, address)
	if err != nil {
		return false, translate("checking application", err)
	}
	return rec.CandidateAddress != zeroAddress, nil
}

func (v *Actions) GetTotalPollsLength(ctx context.Context) (uint64, error) {
	if err := v.ready(); err != nil {
		return 0, err
	}
	counter, err := v.contract.GroupID(ctx)
	if err != nil {
		return 0, translate("fetching polls count", err)
	}
	return toUint64(counter), nil
}

// GetCompletedPollsLength counts every slot up to the counter whose end time has passed.
func (v *Actions) GetCompletedPollsLength(ctx context.Context) (uint64, error) {
	if err := v.ready(); err != nil {
		return 0, err
	}
	groups, err := v.groupSnapshot(ctx)
	if err != nil {
		return 0, translate("fetching completed polls", err)
	}
	now := v.now()
	return uint64(lo.CountBy(groups, func(item models.Group) bool {
		return item.IsCompleted(now)
	})), nil
}

func (v *Actions) GetGroups(ctx context.Context) ([]models.Group, error) {
	if err := v.ready(); err != nil {
		return nil, err
	}
	groups, err := v.groupSnapshot(ctx)
	if err != nil {
		return nil, translate("fetching groups", err)
	}
	now := v.now()
	return lo.FilterMap(groups, func(item models.Group, _ int) (models.Group, bool) {
		item.Active = item.IsActive(now)
		return item, item.Exists
	}), nil
}

func (v *Actions) GetGroup(ctx context.Context, groupID string) (models.Group, error) {
	if err := v.ready(); err != nil {
		return models.Group{}, err
	}
	id, verr := requireGroupID(groupID)
	if verr != nil {
		return models.Group{}, verr
	}
	rec, err := v.contract.Groups(ctx, id)
	if err != nil {
		return models.Group{}, translate("fetching group", err)
	}
	group := groupFromRecord(rec)
	if !group.Exists {
		return models.Group{}, &ActionError{Code: ErrRevert, Message: "Group doesn't exist!"}
	}
	group.Active = group.IsActive(v.now())
	return group, nil
}

func (v *Actions) GetTotalVotersToBeApproved(ctx context.Context) (uint64, error) {
	voters, err := v.GetVotersToBeAllowed(ctx)
	if err != nil {
		return 0, err
	}
	return uint64(len(voters)), nil
}

func (v *Actions) GetTotalCandidatesToBeApproved(ctx context.Context) (uint64, error) {
	candidates, err := v.GetCandidatesToBeAllowed(ctx)
	if err != nil {
		return 0, err
	}
	return uint64(len(candidates)), nil
}

func (v *Actions) GetVotersToBeAllowed(ctx context.Context) ([]models.Voter, error) {
	if err := v.ready(); err != nil {
		return nil, err
	}
	voters, err := v.walkPendingVoters(ctx)
	if err != nil {
		return nil, translate("fetching pending voters", err)
	}
	return voters, nil
}

func (v *Actions) GetCandidatesToBeAllowed(ctx context.Context) ([]models.Candidate, error) {
	if err := v.ready(); err != nil {
		return nil, err
	}
	candidates, err := v.walkPendingCandidates(ctx)
	if err != nil {
		return nil, translate("fetching pending candidates", err)
	}
	return candidates, nil
}
