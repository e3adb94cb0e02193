package session

import (
	"context"
	"errors"
	"sync"

	"git.solsynth.dev/hypernet/votechain/pkg/internal/chain"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/models"
	"git.solsynth.dev/hypernet/votechain/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoWallet     = errors.New("No wallet found, configure one to continue!")
	ErrStaleSession = errors.New("session changed while refreshing")
)

// Connector produces connections and reads balances. chain.Gateway is the production one.
type Connector interface {
	ConnectWithRetry(ctx context.Context) (*chain.Connection, error)
	BalanceOf(ctx context.Context, account string, backend chain.Backend) (string, bool)
}

// State is a copy of the session for rendering.
type State struct {
	Connected   bool          `json:"connected"`
	Account     string        `json:"account"`
	Balance     string        `json:"balance"`
	Profile     *models.Voter `json:"profile"`
	IsOrganizer bool          `json:"is_organizer"`
	SidebarOpen bool          `json:"sidebar_open"`
	Generation  uint64        `json:"generation"`
}

var C *Store

// Store holds the single connection slot of the process.
type Store struct {
	mu sync.RWMutex

	connector Connector
	opts      []services.Option

	conn       *chain.Connection
	actions    *services.Actions
	balance    string
	profile    *models.Voter
	organizer  bool
	sidebar    bool
	generation uint64
}

func NewStore(connector Connector, opts ...services.Option) *Store {
	return &Store{
		connector: connector,
		opts:      opts,
		sidebar:   true,
	}
}

// Connect replaces the current connection and loads balance and profile for it.
func (v *Store) Connect(ctx context.Context) error {
	if v.connector == nil {
		return ErrNoWallet
	}
	conn, err := v.connector.ConnectWithRetry(ctx)
	if err != nil {
		return err
	} else if conn == nil {
		return ErrNoWallet
	}

	v.mu.Lock()
	v.generation++
	v.conn = conn
	v.actions = services.NewActions(conn.Contract, v.opts...)
	v.balance = ""
	v.profile = nil
	v.organizer = false
	v.mu.Unlock()

	if err := v.Refresh(ctx); err != nil && !errors.Is(err, ErrStaleSession) {
		log.Warn().Err(err).Str("account", conn.Account.Hex()).Msg("An error occurred when loading session after connect...")
	}
	return nil
}

func (v *Store) Disconnect() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	v.conn = nil
	v.actions = nil
	v.balance = ""
	v.profile = nil
	v.organizer = false
}

// Refresh reloads balance, profile and organizer flag. Results are dropped with
// ErrStaleSession when the connection changed while the reads were running.
func (v *Store) Refresh(ctx context.Context) error {
	v.mu.RLock()
	generation := v.generation
	conn := v.conn
	actions := v.actions
	v.mu.RUnlock()

	if conn == nil || actions == nil {
		return services.NotConnectedError()
	}
	account := conn.Account.Hex()

	balance, ok := v.connector.BalanceOf(ctx, account, conn.Backend)
	if !ok {
		balance = ""
	}

	var firstErr error
	var profile *models.Voter
	if voter, err := actions.GetProfile(ctx, account); err != nil {
		firstErr = err
	} else {
		profile = &voter
	}
	organizer, err := actions.IsOrganizer(ctx, account)
	if err != nil && firstErr == nil {
		firstErr = err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if generation != v.generation {
		log.Debug().Str("account", account).Msg("Session changed during refresh, discarding results...")
		return ErrStaleSession
	}
	if ok {
		v.balance = balance
	}
	if profile != nil {
		v.profile = profile
	}
	if err == nil {
		v.organizer = organizer
	}
	return firstErr
}

// Actions returns the action layer bound to the current connection.
func (v *Store) Actions() (*services.Actions, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.actions == nil {
		return nil, services.NotConnectedError()
	}
	return v.actions, nil
}

func (v *Store) Snapshot() State {
	v.mu.RLock()
	defer v.mu.RUnlock()

	state := State{
		Connected:   v.conn != nil,
		Balance:     v.balance,
		IsOrganizer: v.organizer,
		SidebarOpen: v.sidebar,
		Generation:  v.generation,
	}
	if v.conn != nil {
		state.Account = v.conn.Account.Hex()
	}
	if v.profile != nil {
		profile := *v.profile
		state.Profile = &profile
	}
	return state
}

func (v *Store) ToggleSidebar() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sidebar = !v.sidebar
	return v.sidebar
}
