// Package memory is an in-process implementation of the persistence contracts.
// It backs the "memory" storage driver used for local development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"

	"github.com/google/uuid"
)

type socialKey struct {
	provider   entity.ProviderType
	providerID string
}

// state is one consistent version of every table.
type state struct {
	users       map[uuid.UUID]entity.User
	emails      map[string]uuid.UUID
	socials     map[uuid.UUID]entity.SocialAccount
	socialKeys  map[socialKey]uuid.UUID
	resets      map[uuid.UUID]entity.PasswordResetToken
	resetHashes map[string]uuid.UUID
	twoFactor   map[uuid.UUID]entity.TwoFactorSecret
}

func newState() *state {
	return &state{
		users:       make(map[uuid.UUID]entity.User),
		emails:      make(map[string]uuid.UUID),
		socials:     make(map[uuid.UUID]entity.SocialAccount),
		socialKeys:  make(map[socialKey]uuid.UUID),
		resets:      make(map[uuid.UUID]entity.PasswordResetToken),
		resetHashes: make(map[string]uuid.UUID),
		twoFactor:   make(map[uuid.UUID]entity.TwoFactorSecret),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.emails {
		c.emails[k] = v
	}
	for k, v := range s.socials {
		c.socials[k] = v
	}
	for k, v := range s.socialKeys {
		c.socialKeys[k] = v
	}
	for k, v := range s.resets {
		c.resets[k] = copyResetToken(v)
	}
	for k, v := range s.resetHashes {
		c.resetHashes[k] = v
	}
	for k, v := range s.twoFactor {
		c.twoFactor[k] = copyTwoFactor(v)
	}

	return c
}

// Store serializes units of work with a mutex. Each unit runs against a
// private copy of the state that replaces the shared one only on commit,
// so a failed or abandoned unit leaves nothing behind.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		state: newState(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// NewTransactionManager exposes the store through the domain contract.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return store
}

// Execute implements repository.TransactionManager.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(&factory{state: snapshot, now: s.now}); err != nil {
		return err
	}

	// A caller that gave up mid-unit gets a rollback, never a partial commit.
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = snapshot

	return nil
}

type factory struct {
	state *state
	now   func() time.Time
}

func (f *factory) UserRepo() repository.UserRepository {
	return &userRepository{state: f.state, now: f.now}
}

func (f *factory) SocialAccountRepo() repository.SocialAccountRepository {
	return &socialAccountRepository{state: f.state, now: f.now}
}

func (f *factory) PasswordResetRepo() repository.PasswordResetRepository {
	return &passwordResetRepository{state: f.state, now: f.now}
}

func (f *factory) TwoFactorRepo() repository.TwoFactorRepository {
	return &twoFactorRepository{state: f.state, now: f.now}
}

func newID() (uuid.UUID, error) {
	return uuid.NewV7()
}

func copyResetToken(t entity.PasswordResetToken) entity.PasswordResetToken {
	if t.UsedAt != nil {
		usedAt := *t.UsedAt
		t.UsedAt = &usedAt
	}

	return t
}

func copyTwoFactor(s entity.TwoFactorSecret) entity.TwoFactorSecret {
	s.SecretEncrypted = append([]byte(nil), s.SecretEncrypted...)

	return s
}
