package session

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/chain"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/services"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAccount = common.HexToAddress("0x1111111111111111111111111111111111111111")

type fakeVoting struct {
	chain.Voting
	owner common.Address
}

func (f *fakeVoting) VotingOrganizer(ctx context.Context) (common.Address, error) {
	return f.owner, nil
}

func (f *fakeVoting) Voters(ctx context.Context, voter common.Address) (chain.VoterRecord, error) {
	return chain.VoterRecord{Id: big.NewInt(1), Name: "Alice", VoterAddress: voter, Age: big.NewInt(30), Exists: true}, nil
}

type fakeConnector struct {
	mu sync.Mutex

	conn    *chain.Connection
	err     error
	balance string
	entered chan struct{}
	release chan struct{}
}

func (f *fakeConnector) ConnectWithRetry(ctx context.Context) (*chain.Connection, error) {
	return f.conn, f.err
}

func (f *fakeConnector) BalanceOf(ctx context.Context, account string, backend chain.Backend) (string, bool) {
	f.mu.Lock()
	entered, release, balance := f.entered, f.release, f.balance
	f.mu.Unlock()
	if release != nil {
		close(entered)
		<-release
	}
	return balance, true
}

func (f *fakeConnector) block() (chan struct{}, chan struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entered = make(chan struct{})
	f.release = make(chan struct{})
	return f.entered, f.release
}

func newConnected(t *testing.T) (*Store, *fakeConnector) {
	connector := &fakeConnector{
		conn: &chain.Connection{
			Account:  testAccount,
			Contract: &fakeVoting{owner: testAccount},
		},
		balance: "1.5",
	}
	store := NewStore(connector)
	require.NoError(t, store.Connect(context.Background()))
	return store, connector
}

func TestConnect(t *testing.T) {
	store, _ := newConnected(t)

	state := store.Snapshot()
	assert.True(t, state.Connected)
	assert.Equal(t, testAccount.Hex(), state.Account)
	assert.Equal(t, "1.5", state.Balance)
	assert.True(t, state.IsOrganizer)
	require.NotNil(t, state.Profile)
	assert.Equal(t, "Alice", state.Profile.Name)
	assert.EqualValues(t, 1, state.Generation)

	actions, err := store.Actions()
	require.NoError(t, err)
	assert.NotNil(t, actions)
}

func TestConnectWithoutWallet(t *testing.T) {
	store := NewStore(&fakeConnector{})
	assert.ErrorIs(t, store.Connect(context.Background()), ErrNoWallet)
	assert.False(t, store.Snapshot().Connected)

	failing := NewStore(&fakeConnector{err: chain.ErrNetworkAdded})
	assert.ErrorIs(t, failing.Connect(context.Background()), chain.ErrNetworkAdded)
}

func TestDisconnect(t *testing.T) {
	store, _ := newConnected(t)
	store.Disconnect()

	state := store.Snapshot()
	assert.False(t, state.Connected)
	assert.Empty(t, state.Account)
	assert.Empty(t, state.Balance)
	assert.Nil(t, state.Profile)

	_, err := store.Actions()
	var actionErr *services.ActionError
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, services.ErrNotConnected, actionErr.Code)

	err = store.Refresh(context.Background())
	require.True(t, errors.As(err, &actionErr))
	assert.Equal(t, services.ErrNotConnected, actionErr.Code)
}

func TestDisconnectDuringRefresh(t *testing.T) {
	store, connector := newConnected(t)
	connector.balance = "9.0"
	entered, release := connector.block()

	done := make(chan error, 1)
	go func() {
		done <- store.Refresh(context.Background())
	}()

	<-entered
	store.Disconnect()
	close(release)

	assert.ErrorIs(t, <-done, ErrStaleSession)
	state := store.Snapshot()
	assert.False(t, state.Connected)
	assert.Empty(t, state.Balance)
}

func TestToggleSidebar(t *testing.T) {
	store := NewStore(nil)
	assert.True(t, store.Snapshot().SidebarOpen)
	assert.False(t, store.ToggleSidebar())
	assert.True(t, store.ToggleSidebar())
}
