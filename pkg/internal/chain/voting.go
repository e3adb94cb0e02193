package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// VoterRecord mirrors the contract's Voter struct.
type VoterRecord struct {
	Id           *big.Int
	Name         string
	VoterAddress common.Address
	Age          *big.Int
	Image        string
	Ipfs         string
	VoteCount    *big.Int
	Exists       bool
}

// CandidateRecord mirrors the contract's Candidate struct.
type CandidateRecord struct {
	Id               *big.Int
	Name             string
	CandidateAddress common.Address
	Age              *big.Int
	Image            string
	Ipfs             string
	VoteCount        *big.Int
	Exists           bool
}

// GroupRecord is what the public groups getter returns. The getter skips the
// dynamic candidate array of the underlying struct.
type GroupRecord struct {
	Id                       *big.Int
	Name                     string
	Image                    string
	Ipfs                     string
	RequiresRegisteredVoters bool
	Exists                   bool
	StartTime                *big.Int
	EndTime                  *big.Int
	Description              string
}

// Voting is the contract surface the action layer talks to.
type Voting interface {
	VotingOrganizer(ctx context.Context) (common.Address, error)
	GetCandidatesLength(ctx context.Context) (*big.Int, error)
	GetVotersLength(ctx context.Context) (*big.Int, error)
	GetCandidateData(ctx context.Context, candidate common.Address) (CandidateRecord, error)
	GetVoterData(ctx context.Context, voter common.Address) (VoterRecord, error)
	Voters(ctx context.Context, voter common.Address) (VoterRecord, error)
	Candidates(ctx context.Context, candidate common.Address) (CandidateRecord, error)
	VotersToBeAllowed(ctx context.Context, voter common.Address) (VoterRecord, error)
	VotersToBeAllowedList(ctx context.Context, index *big.Int) (common.Address, error)
	GetVotersToBeAllowedListLength(ctx context.Context) (*big.Int, error)
	CandidatesToBeAllowed(ctx context.Context, candidate common.Address) (CandidateRecord, error)
	CandidatesToBeAllowedList(ctx context.Context, index *big.Int) (common.Address, error)
	GetCandidatesToBeAllowedListLength(ctx context.Context) (*big.Int, error)
	GroupID(ctx context.Context) (*big.Int, error)
	Groups(ctx context.Context, index *big.Int) (GroupRecord, error)

	ChangeOwner(ctx context.Context, newOwner common.Address) (*types.Transaction, error)
	CreateGroup(ctx context.Context, name, image, ipfs string, requiresRegisteredVoters bool, startTime, endTime *big.Int, description string) (*types.Transaction, error)
	DeleteGroup(ctx context.Context, groupID *big.Int) (*types.Transaction, error)
	AddCandidateToGroup(ctx context.Context, groupID *big.Int, candidate common.Address) (*types.Transaction, error)
	DeleteCandidateFromGroup(ctx context.Context, groupID *big.Int, candidate common.Address) (*types.Transaction, error)
	CreateCandidate(ctx context.Context, name string, candidate common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error)
	AddVoterByApproval(ctx context.Context, voter common.Address) (*types.Transaction, error)
	AddCandidateByApproval(ctx context.Context, candidate common.Address) (*types.Transaction, error)
	ApplyToBeVoter(ctx context.Context, name string, voter common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error)
	ApplyToBeCandidate(ctx context.Context, name string, candidate common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error)
	UpdateVoterImage(ctx context.Context, image, ipfs string) (*types.Transaction, error)

	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

var votingABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(VotingABI))
	if err != nil {
		panic(fmt.Sprintf("voting abi is malformed: %v", err))
	}
	votingABI = parsed
}

// VotingContract binds the voting organization contract at a fixed address.
type VotingContract struct {
	backend  Backend
	contract *bind.BoundContract
	opts     *bind.TransactOpts
}

// NewVotingContract binds the contract. A nil opts gives a read only handle.
func NewVotingContract(address common.Address, backend Backend, opts *bind.TransactOpts) *VotingContract {
	return &VotingContract{
		backend:  backend,
		contract: bind.NewBoundContract(address, votingABI, backend, backend, backend),
		opts:     opts,
	}
}

func (v *VotingContract) callOpts(ctx context.Context) *bind.CallOpts {
	opts := &bind.CallOpts{Context: ctx}
	if v.opts != nil {
		opts.From = v.opts.From
	}
	return opts
}

func (v *VotingContract) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if v.opts == nil {
		return nil, ErrNoSigner
	}
	opts := *v.opts
	opts.Context = ctx
	return &opts, nil
}

func (v *VotingContract) call(ctx context.Context, method string, params ...any) ([]any, error) {
	var out []any
	if err := v.contract.Call(v.callOpts(ctx), &out, method, params...); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return out, nil
}

func (v *VotingContract) transact(ctx context.Context, method string, params ...any) (*types.Transaction, error) {
	opts, err := v.transactOpts(ctx)
	if err != nil {
		return nil, err
	}
	return v.contract.Transact(opts, method, params...)
}

func (v *VotingContract) callAddress(ctx context.Context, method string, params ...any) (common.Address, error) {
	out, err := v.call(ctx, method, params...)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (v *VotingContract) callUint(ctx context.Context, method string, params ...any) (*big.Int, error) {
	out, err := v.call(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func voterFromOutputs(out []any) VoterRecord {
	return VoterRecord{
		Id:           *abi.ConvertType(out[0], new(*big.Int)).(**big.Int),
		Name:         *abi.ConvertType(out[1], new(string)).(*string),
		VoterAddress: *abi.ConvertType(out[2], new(common.Address)).(*common.Address),
		Age:          *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		Image:        *abi.ConvertType(out[4], new(string)).(*string),
		Ipfs:         *abi.ConvertType(out[5], new(string)).(*string),
		VoteCount:    *abi.ConvertType(out[6], new(*big.Int)).(**big.Int),
		Exists:       *abi.ConvertType(out[7], new(bool)).(*bool),
	}
}

func candidateFromOutputs(out []any) CandidateRecord {
	return CandidateRecord{
		Id:               *abi.ConvertType(out[0], new(*big.Int)).(**big.Int),
		Name:             *abi.ConvertType(out[1], new(string)).(*string),
		CandidateAddress: *abi.ConvertType(out[2], new(common.Address)).(*common.Address),
		Age:              *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		Image:            *abi.ConvertType(out[4], new(string)).(*string),
		Ipfs:             *abi.ConvertType(out[5], new(string)).(*string),
		VoteCount:        *abi.ConvertType(out[6], new(*big.Int)).(**big.Int),
		Exists:           *abi.ConvertType(out[7], new(bool)).(*bool),
	}
}

func groupFromOutputs(out []any) GroupRecord {
	return GroupRecord{
		Id:                       *abi.ConvertType(out[0], new(*big.Int)).(**big.Int),
		Name:                     *abi.ConvertType(out[1], new(string)).(*string),
		Image:                    *abi.ConvertType(out[2], new(string)).(*string),
		Ipfs:                     *abi.ConvertType(out[3], new(string)).(*string),
		RequiresRegisteredVoters: *abi.ConvertType(out[4], new(bool)).(*bool),
		Exists:                   *abi.ConvertType(out[5], new(bool)).(*bool),
		StartTime:                *abi.ConvertType(out[6], new(*big.Int)).(**big.Int),
		EndTime:                  *abi.ConvertType(out[7], new(*big.Int)).(**big.Int),
		Description:              *abi.ConvertType(out[8], new(string)).(*string),
	}
}

func (v *VotingContract) callVoterFlat(ctx context.Context, method string, params ...any) (VoterRecord, error) {
	out, err := v.call(ctx, method, params...)
	if err != nil {
		return VoterRecord{}, err
	}
	if len(out) < 8 {
		return VoterRecord{}, fmt.Errorf("%s returned %d values", method, len(out))
	}
	return voterFromOutputs(out), nil
}

func (v *VotingContract) callCandidateFlat(ctx context.Context, method string, params ...any) (CandidateRecord, error) {
	out, err := v.call(ctx, method, params...)
	if err != nil {
		return CandidateRecord{}, err
	}
	if len(out) < 8 {
		return CandidateRecord{}, fmt.Errorf("%s returned %d values", method, len(out))
	}
	return candidateFromOutputs(out), nil
}

func (v *VotingContract) VotingOrganizer(ctx context.Context) (common.Address, error) {
	return v.callAddress(ctx, "votingOrganizer")
}

func (v *VotingContract) GetCandidatesLength(ctx context.Context) (*big.Int, error) {
	return v.callUint(ctx, "getCandidatesLength")
}

func (v *VotingContract) GetVotersLength(ctx context.Context) (*big.Int, error) {
	return v.callUint(ctx, "getVotersLength")
}

func (v *VotingContract) GetCandidateData(ctx context.Context, candidate common.Address) (CandidateRecord, error) {
	out, err := v.call(ctx, "getCandidateData", candidate)
	if err != nil {
		return CandidateRecord{}, err
	}
	return *abi.ConvertType(out[0], new(CandidateRecord)).(*CandidateRecord), nil
}

func (v *VotingContract) GetVoterData(ctx context.Context, voter common.Address) (VoterRecord, error) {
	out, err := v.call(ctx, "getVoterData", voter)
	if err != nil {
		return VoterRecord{}, err
	}
	return *abi.ConvertType(out[0], new(VoterRecord)).(*VoterRecord), nil
}

func (v *VotingContract) Voters(ctx context.Context, voter common.Address) (VoterRecord, error) {
	return v.callVoterFlat(ctx, "voters", voter)
}

func (v *VotingContract) Candidates(ctx context.Context, candidate common.Address) (CandidateRecord, error) {
	return v.callCandidateFlat(ctx, "candidates", candidate)
}

func (v *VotingContract) VotersToBeAllowed(ctx context.Context, voter common.Address) (VoterRecord, error) {
	return v.callVoterFlat(ctx, "votersToBeAllowed", voter)
}

func (v *VotingContract) VotersToBeAllowedList(ctx context.Context, index *big.Int) (common.Address, error) {
	return v.callAddress(ctx, "votersToBeAllowedList", index)
}

func (v *VotingContract) GetVotersToBeAllowedListLength(ctx context.Context) (*big.Int, error) {
	return v.callUint(ctx, "getVotersToBeAllowedListLength")
}

func (v *VotingContract) CandidatesToBeAllowed(ctx context.Context, candidate common.Address) (CandidateRecord, error) {
	return v.callCandidateFlat(ctx, "candidatesToBeAllowed", candidate)
}

func (v *VotingContract) CandidatesToBeAllowedList(ctx context.Context, index *big.Int) (common.Address, error) {
	return v.callAddress(ctx, "candidatesToBeAllowedList", index)
}

func (v *VotingContract) GetCandidatesToBeAllowedListLength(ctx context.Context) (*big.Int, error) {
	return v.callUint(ctx, "getCandidatesToBeAllowedListLength")
}

func (v *VotingContract) GroupID(ctx context.Context) (*big.Int, error) {
	return v.callUint(ctx, "groupId")
}

func (v *VotingContract) Groups(ctx context.Context, index *big.Int) (GroupRecord, error) {
	out, err := v.call(ctx, "groups", index)
	if err != nil {
		return GroupRecord{}, err
	}
	if len(out) < 9 {
		return GroupRecord{}, fmt.Errorf("groups returned %d values", len(out))
	}
	return groupFromOutputs(out), nil
}

func (v *VotingContract) ChangeOwner(ctx context.Context, newOwner common.Address) (*types.Transaction, error) {
	return v.transact(ctx, "changeOwner", newOwner)
}

func (v *VotingContract) CreateGroup(ctx context.Context, name, image, ipfs string, requiresRegisteredVoters bool, startTime, endTime *big.Int, description string) (*types.Transaction, error) {
	return v.transact(ctx, "createGroup", name, image, ipfs, requiresRegisteredVoters, startTime, endTime, description)
}

func (v *VotingContract) DeleteGroup(ctx context.Context, groupID *big.Int) (*types.Transaction, error) {
	return v.transact(ctx, "deleteGroup", groupID)
}

func (v *VotingContract) AddCandidateToGroup(ctx context.Context, groupID *big.Int, candidate common.Address) (*types.Transaction, error) {
	return v.transact(ctx, "addCandidateToGroup", groupID, candidate)
}

func (v *VotingContract) DeleteCandidateFromGroup(ctx context.Context, groupID *big.Int, candidate common.Address) (*types.Transaction, error) {
	return v.transact(ctx, "deleteCandidateFromGroup", groupID, candidate)
}

func (v *VotingContract) CreateCandidate(ctx context.Context, name string, candidate common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error) {
	return v.transact(ctx, "createCandidate", name, candidate, age, image, ipfs)
}

func (v *VotingContract) AddVoterByApproval(ctx context.Context, voter common.Address) (*types.Transaction, error) {
	return v.transact(ctx, "addVoterByApproval", voter)
}

func (v *VotingContract) AddCandidateByApproval(ctx context.Context, candidate common.Address) (*types.Transaction, error) {
	return v.transact(ctx, "addCandidateByApproval", candidate)
}

func (v *VotingContract) ApplyToBeVoter(ctx context.Context, name string, voter common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error) {
	return v.transact(ctx, "applyToBeVoter", name, voter, age, image, ipfs)
}

func (v *VotingContract) ApplyToBeCandidate(ctx context.Context, name string, candidate common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error) {
	return v.transact(ctx, "applyToBeCandidate", name, candidate, age, image, ipfs)
}

func (v *VotingContract) UpdateVoterImage(ctx context.Context, image, ipfs string) (*types.Transaction, error) {
	return v.transact(ctx, "updateVoterImage", image, ipfs)
}

func (v *VotingContract) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, v.backend, tx)
}
