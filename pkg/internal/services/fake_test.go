package services

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/chain"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type fakeVoting struct {
	mu sync.Mutex

	owner      common.Address
	voters     int64
	candidates int64
	counter    int64
	groups     map[int64]chain.GroupRecord

	voterList      []common.Address
	pendingVoters  map[common.Address]chain.VoterRecord
	candidateList  []common.Address
	pendingCands   map[common.Address]chain.CandidateRecord
	approvedVoters map[common.Address]chain.VoterRecord

	readErr     error
	sendErr     error
	failReceipt bool

	groupReads int
	sent       []string
	nonce      uint64
}

func newFakeVoting() *fakeVoting {
	return &fakeVoting{
		owner:          common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		groups:         map[int64]chain.GroupRecord{},
		pendingVoters:  map[common.Address]chain.VoterRecord{},
		pendingCands:   map[common.Address]chain.CandidateRecord{},
		approvedVoters: map[common.Address]chain.VoterRecord{},
	}
}

func (f *fakeVoting) read() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readErr
}

func (f *fakeVoting) send(method string) (*types.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, method)
	f.nonce++
	return types.NewTx(&types.LegacyTx{Nonce: f.nonce, GasPrice: big.NewInt(1), Gas: 21000}), nil
}

func (f *fakeVoting) sentMethods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func (f *fakeVoting) groupReadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.groupReads
}

func (f *fakeVoting) VotingOrganizer(ctx context.Context) (common.Address, error) {
	return f.owner, f.read()
}

func (f *fakeVoting) GetCandidatesLength(ctx context.Context) (*big.Int, error) {
	return big.NewInt(f.candidates), f.read()
}

func (f *fakeVoting) GetVotersLength(ctx context.Context) (*big.Int, error) {
	return big.NewInt(f.voters), f.read()
}

func (f *fakeVoting) GetCandidateData(ctx context.Context, candidate common.Address) (chain.CandidateRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pendingCands[candidate], f.readErr
}

func (f *fakeVoting) GetVoterData(ctx context.Context, voter common.Address) (chain.VoterRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pendingVoters[voter], f.readErr
}

func (f *fakeVoting) Voters(ctx context.Context, voter common.Address) (chain.VoterRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.approvedVoters[voter], f.readErr
}

func (f *fakeVoting) Candidates(ctx context.Context, candidate common.Address) (chain.CandidateRecord, error) {
	return chain.CandidateRecord{}, f.read()
}

func (f *fakeVoting) VotersToBeAllowed(ctx context.Context, voter common.Address) (chain.VoterRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pendingVoters[voter], f.readErr
}

func (f *fakeVoting) VotersToBeAllowedList(ctx context.Context, index *big.Int) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index.Int64() >= int64(len(f.voterList)) {
		return common.Address{}, errors.New("execution reverted")
	}
	return f.voterList[index.Int64()], f.readErr
}

func (f *fakeVoting) GetVotersToBeAllowedListLength(ctx context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return big.NewInt(int64(len(f.voterList))), f.readErr
}

func (f *fakeVoting) CandidatesToBeAllowed(ctx context.Context, candidate common.Address) (chain.CandidateRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pendingCands[candidate], f.readErr
}

func (f *fakeVoting) CandidatesToBeAllowedList(ctx context.Context, index *big.Int) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index.Int64() >= int64(len(f.candidateList)) {
		return common.Address{}, errors.New("execution reverted")
	}
	return f.candidateList[index.Int64()], f.readErr
}

func (f *fakeVoting) GetCandidatesToBeAllowedListLength(ctx context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return big.NewInt(int64(len(f.candidateList))), f.readErr
}

func (f *fakeVoting) GroupID(ctx context.Context) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return big.NewInt(f.counter), f.readErr
}

func (f *fakeVoting) Groups(ctx context.Context, index *big.Int) (chain.GroupRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupReads++
	rec, ok := f.groups[index.Int64()]
	if !ok {
		rec = chain.GroupRecord{Id: big.NewInt(0), StartTime: big.NewInt(0), EndTime: big.NewInt(0)}
	}
	return rec, f.readErr
}

func (f *fakeVoting) ChangeOwner(ctx context.Context, newOwner common.Address) (*types.Transaction, error) {
	return f.send("changeOwner")
}

func (f *fakeVoting) CreateGroup(ctx context.Context, name, image, ipfs string, requiresRegisteredVoters bool, startTime, endTime *big.Int, description string) (*types.Transaction, error) {
	return f.send("createGroup")
}

func (f *fakeVoting) DeleteGroup(ctx context.Context, groupID *big.Int) (*types.Transaction, error) {
	tx, err := f.send("deleteGroup")
	if err == nil {
		f.mu.Lock()
		rec := f.groups[groupID.Int64()]
		rec.Exists = false
		f.groups[groupID.Int64()] = rec
		f.mu.Unlock()
	}
	return tx, err
}

func (f *fakeVoting) AddCandidateToGroup(ctx context.Context, groupID *big.Int, candidate common.Address) (*types.Transaction, error) {
	return f.send("addCandidateToGroup")
}

func (f *fakeVoting) DeleteCandidateFromGroup(ctx context.Context, groupID *big.Int, candidate common.Address) (*types.Transaction, error) {
	return f.send("deleteCandidateFromGroup")
}

func (f *fakeVoting) CreateCandidate(ctx context.Context, name string, candidate common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error) {
	return f.send("createCandidate")
}

func (f *fakeVoting) AddVoterByApproval(ctx context.Context, voter common.Address) (*types.Transaction, error) {
	return f.send("addVoterByApproval")
}

func (f *fakeVoting) AddCandidateByApproval(ctx context.Context, candidate common.Address) (*types.Transaction, error) {
	return f.send("addCandidateByApproval")
}

func (f *fakeVoting) ApplyToBeVoter(ctx context.Context, name string, voter common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error) {
	return f.send("applyToBeVoter")
}

func (f *fakeVoting) ApplyToBeCandidate(ctx context.Context, name string, candidate common.Address, age *big.Int, image, ipfs string) (*types.Transaction, error) {
	return f.send("applyToBeCandidate")
}

func (f *fakeVoting) UpdateVoterImage(ctx context.Context, image, ipfs string) (*types.Transaction, error) {
	return f.send("updateVoterImage")
}

func (f *fakeVoting) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status := types.ReceiptStatusSuccessful
	if f.failReceipt {
		status = types.ReceiptStatusFailed
	}
	return &types.Receipt{Status: status, TxHash: tx.Hash(), BlockNumber: big.NewInt(1)}, nil
}

// memoryStore keeps values in a map. Invalidate drops everything regardless of tags.
type memoryStore struct {
	mu          sync.Mutex
	items       map[any]any
	invalidated int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[any]any{}}
}

func (s *memoryStore) Get(ctx context.Context, key any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.items[key]
	if !ok {
		return nil, errors.New("value not found in store")
	}
	return val, nil
}

func (s *memoryStore) GetWithTTL(ctx context.Context, key any) (any, time.Duration, error) {
	val, err := s.Get(ctx, key)
	return val, 0, err
}

func (s *memoryStore) Set(ctx context.Context, key any, value any, options ...store.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *memoryStore) Invalidate(ctx context.Context, options ...store.InvalidateOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated++
	s.items = map[any]any{}
	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	return s.Invalidate(ctx)
}

func (s *memoryStore) GetType() string {
	return "memory"
}

func (s *memoryStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
