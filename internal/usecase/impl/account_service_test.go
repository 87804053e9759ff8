package impl

import (
	"context"
	"errors"
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	mockRepo "gatekeeper/internal/mocks/repository"
	"gatekeeper/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountService(kit *testKit, txManager repository.TransactionManager) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		TxManager: txManager,
		Hasher:    kit.hasher,
		Policy:    kit.policy,
		Logger:    kit.logger,
	})
}

func TestAccountService_Register(t *testing.T) {
	kit := newTestKit(t)
	srv := newAccountService(kit, kit.txManager())
	ctx := context.Background()

	out, err := srv.Register(ctx, usecase.RegisterInput{Email: " New@Example.com ", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, kit.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		user, err := repos.UserRepo().FindByEmail(ctx, "new@example.com")
		if err != nil {
			return err
		}
		assert.Equal(t, out.UserID, user.ID)
		assert.NotEqual(t, testPassword, user.PasswordHash)
		assert.True(t, kit.hasher.Check(testPassword, user.PasswordHash))
		return nil
	}))
}

func TestAccountService_Register_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     *domainerrors.BaseError
	}{
		{name: "duplicate email", email: "TAKEN@example.com", password: testPassword, want: domainerrors.ErrDuplicateEmail},
		{name: "malformed email", email: "taken.example.com", password: testPassword, want: domainerrors.ErrValidationFailed},
		{name: "weak password", email: "fresh@example.com", password: "short", want: domainerrors.ErrPasswordPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kit := newTestKit(t)
			kit.createUser(t, "taken@example.com", testPassword)
			srv := newAccountService(kit, kit.txManager())

			_, err := srv.Register(context.Background(), usecase.RegisterInput{Email: tt.email, Password: tt.password})

			assertAppError(t, err, tt.want)
		})
	}
}

func TestAccountService_Register_TransactionError(t *testing.T) {
	kit := newTestKit(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := newAccountService(kit, txManager)
	boom := errors.New("connection reset")

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(boom)

	_, err := srv.Register(context.Background(), usecase.RegisterInput{Email: "new@example.com", Password: testPassword})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
