package services

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"
)

func (v *Actions) ApplyToBeVoter(ctx context.Context, in ApplicantInput) error {
	if err := v.ready(); err != nil {
		return err
	}
	address, verr := validateApplicant(in, "Voter address required!")
	if verr != nil {
		return verr
	}
	return v.submit(ctx, "applying to be voter", func() (*types.Transaction, error) {
		return v.contract.ApplyToBeVoter(ctx, strings.TrimSpace(in.Name), address, big.NewInt(int64(in.Age)), in.Image, in.Ipfs)
	})
}

func (v *Actions) ApplyToBeCandidate(ctx context.Context, in ApplicantInput) error {
	if err := v.ready(); err != nil {
		return err
	}
	address, verr := validateApplicant(in, "Candidate address required!")
	if verr != nil {
		return verr
	}
	return v.submit(ctx, "applying to be candidate", func() (*types.Transaction, error) {
		return v.contract.ApplyToBeCandidate(ctx, strings.TrimSpace(in.Name), address, big.NewInt(int64(in.Age)), in.Image, in.Ipfs)
	})
}

// UpdateVoterImage points the caller's voter record at a new image.
// Retiring the previous pinned object is the content store's job.
func (v *Actions) UpdateVoterImage(ctx context.Context, url, cid string) error {
	if err := v.ready(); err != nil {
		return err
	}
	if len(strings.TrimSpace(url)) == 0 || len(strings.TrimSpace(cid)) == 0 {
		return validationError("New image URL and CID required!")
	}
	return v.submit(ctx, "updating image", func() (*types.Transaction, error) {
		return v.contract.UpdateVoterImage(ctx, url, cid)
	})
}
