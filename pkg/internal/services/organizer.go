package services

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type GroupInput struct {
	Name                     string
	Image                    string
	Ipfs                     string
	Description              string
	RequiresRegisteredVoters bool
	// Unix seconds, as typed by the organizer.
	StartTime string
	EndTime   string
}

type ApplicantInput struct {
	Name    string
	Address string
	Age     int
	Image   string
	Ipfs    string
}

func (v *Actions) ChangeOwner(ctx context.Context, newOwner string) error {
	if err := v.ready(); err != nil {
		return err
	}
	owner, verr := requireAddress(newOwner, "New owner address required!")
	if verr != nil {
		return verr
	}
	return v.submit(ctx, "changing owner", func() (*types.Transaction, error) {
		return v.contract.ChangeOwner(ctx, owner)
	})
}

// CreateGroup checks the time window against the wall clock before submitting.
// The contract validates again against block time.
func (v *Actions) CreateGroup(ctx context.Context, in GroupInput) error {
	if err := v.ready(); err != nil {
		return err
	}
	if len(strings.TrimSpace(in.Name)) == 0 {
		return validationError("Group name required!")
	}
	start, ok := parseTimestamp(in.StartTime)
	if !ok {
		return validationError("Invalid start or end time!")
	}
	end, ok := parseTimestamp(in.EndTime)
	if !ok {
		return validationError("Invalid start or end time!")
	}
	if start >= end {
		return validationError("Start time must be before end time!")
	}
	if end <= v.now().Unix() {
		return validationError("End time must be in the future!")
	}

	err := v.submit(ctx, "creating group", func() (*types.Transaction, error) {
		return v.contract.CreateGroup(
			ctx,
			strings.TrimSpace(in.Name),
			in.Image,
			in.Ipfs,
			in.RequiresRegisteredVoters,
			big.NewInt(start),
			big.NewInt(end),
			in.Description,
		)
	})
	if err == nil {
		v.invalidateGroups(ctx)
	}
	return err
}

func (v *Actions) DeleteGroup(ctx context.Context, groupID string) error {
	if err := v.ready(); err != nil {
		return err
	}
	id, verr := requireGroupID(groupID)
	if verr != nil {
		return verr
	}
	err := v.submit(ctx, "deleting group", func() (*types.Transaction, error) {
		return v.contract.DeleteGroup(ctx, id)
	})
	if err == nil {
		v.invalidateGroups(ctx)
	}
	return err
}

func (v *Actions) AddCandidateToGroup(ctx context.Context, groupID, candidate string) error {
	return v.changeGroupCandidate(ctx, "adding candidate to group", groupID, candidate,
		func(ctx context.Context, id *big.Int, address common.Address) (*types.Transaction, error) {
			return v.contract.AddCandidateToGroup(ctx, id, address)
		})
}

func (v *Actions) DeleteCandidateFromGroup(ctx context.Context, groupID, candidate string) error {
	return v.changeGroupCandidate(ctx, "removing candidate from group", groupID, candidate,
		func(ctx context.Context, id *big.Int, address common.Address) (*types.Transaction, error) {
			return v.contract.DeleteCandidateFromGroup(ctx, id, address)
		})
}

func (v *Actions) changeGroupCandidate(
	ctx context.Context,
	action, groupID, candidate string,
	send func(context.Context, *big.Int, common.Address) (*types.Transaction, error),
) error {
	if err := v.ready(); err != nil {
		return err
	}
	id, verr := requireGroupID(groupID)
	if verr != nil {
		return verr
	}
	address, verr := requireAddress(candidate, "Candidate address required!")
	if verr != nil {
		return verr
	}
	err := v.submit(ctx, action, func() (*types.Transaction, error) {
		return send(ctx, id, address)
	})
	if err == nil {
		v.invalidateGroups(ctx)
	}
	return err
}

// CreateCandidate registers an approved candidate directly, skipping the application queue.
func (v *Actions) CreateCandidate(ctx context.Context, in ApplicantInput) error {
	if err := v.ready(); err != nil {
		return err
	}
	address, verr := validateApplicant(in, "Candidate address required!")
	if verr != nil {
		return verr
	}
	return v.submit(ctx, "creating candidate", func() (*types.Transaction, error) {
		return v.contract.CreateCandidate(ctx, strings.TrimSpace(in.Name), address, big.NewInt(int64(in.Age)), in.Image, in.Ipfs)
	})
}

func (v *Actions) AddVoterByApproval(ctx context.Context, voter string) error {
	if err := v.ready(); err != nil {
		return err
	}
	address, verr := requireAddress(voter, "Voter address required!")
	if verr != nil {
		return verr
	}
	return v.submit(ctx, "approving voter", func() (*types.Transaction, error) {
		return v.contract.AddVoterByApproval(ctx, address)
	})
}

func (v *Actions) AddCandidateByApproval(ctx context.Context, candidate string) error {
	if err := v.ready(); err != nil {
		return err
	}
	address, verr := requireAddress(candidate, "Candidate address required!")
	if verr != nil {
		return verr
	}
	return v.submit(ctx, "approving candidate", func() (*types.Transaction, error) {
		return v.contract.AddCandidateByApproval(ctx, address)
	})
}

func validateApplicant(in ApplicantInput, missingAddress string) (common.Address, *ActionError) {
	if len(strings.TrimSpace(in.Name)) == 0 {
		return common.Address{}, validationError("Name required!")
	}
	address, verr := requireAddress(in.Address, missingAddress)
	if verr != nil {
		return common.Address{}, verr
	}
	if verr := validateAge(in.Age); verr != nil {
		return common.Address{}, verr
	}
	return address, nil
}
