package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookjournal/internal/journal/app"
	"bookjournal/internal/journal/domain/entities"
	"bookjournal/internal/journal/domain/services"
)

const (
	testEmail    = "reader@example.com"
	testPassword = "Passw0rd!"
	testHash     = "$2a$10$abcdefghijklmnopqrstuv"
	testToken    = "jwt-token"
)

func TestRegister(t *testing.T) {
	stored := &entities.User{ID: 1, Email: testEmail, Password: testHash, Nickname: "reader"}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(users *mockUserRepository, pass *mockPasswordService, tokens *mockTokenService)
		wantErr    error
	}{
		{
			name:     "success",
			password: testPassword,
			setupMocks: func(users *mockUserRepository, pass *mockPasswordService, tokens *mockTokenService) {
				users.On("ExistsByEmail", mock.Anything, testEmail).Return(false, nil).Once()
				pass.On("Hash", mock.Anything, testPassword).Return(testHash, nil).Once()
				users.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Email == testEmail && u.Password == testHash && u.Nickname == "reader"
				})).Return(stored, nil).Once()
				tokens.On("GenerateAccessToken", mock.Anything, int64(1), testEmail).Return(testToken, time.Now(), nil).Once()
			},
		},
		{
			name:     "duplicate email",
			password: testPassword,
			setupMocks: func(users *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				users.On("ExistsByEmail", mock.Anything, testEmail).Return(true, nil).Once()
			},
			wantErr: entities.ErrEmailAlreadyExists,
		},
		{
			name:       "weak password is rejected before lookup and hashing",
			password:   "password",
			setupMocks: func(*mockUserRepository, *mockPasswordService, *mockTokenService) {},
			wantErr:    entities.ErrPasswordNoUppercase,
		},
		{
			name:     "padded email is checked after trimming",
			email:    "  " + testEmail + " ",
			password: testPassword,
			setupMocks: func(users *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				users.On("ExistsByEmail", mock.Anything, testEmail).Return(true, nil).Once()
			},
			wantErr: entities.ErrEmailAlreadyExists,
		},
		{
			name:     "unhashable password is an argument error",
			password: testPassword,
			setupMocks: func(users *mockUserRepository, pass *mockPasswordService, _ *mockTokenService) {
				users.On("ExistsByEmail", mock.Anything, testEmail).Return(false, nil).Once()
				pass.On("Hash", mock.Anything, testPassword).Return("", services.ErrInvalidPassword).Once()
			},
			wantErr: entities.ErrPasswordUnusable,
		},
		{
			name:     "token generation fails",
			password: testPassword,
			setupMocks: func(users *mockUserRepository, pass *mockPasswordService, tokens *mockTokenService) {
				users.On("ExistsByEmail", mock.Anything, testEmail).Return(false, nil).Once()
				pass.On("Hash", mock.Anything, testPassword).Return(testHash, nil).Once()
				users.On("Create", mock.Anything, mock.Anything).Return(stored, nil).Once()
				tokens.On("GenerateAccessToken", mock.Anything, int64(1), testEmail).
					Return("", time.Time{}, services.ErrGeneratingJWTToken).Once()
			},
			wantErr: services.ErrTokenGenerationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepository)
			pass := new(mockPasswordService)
			tokens := new(mockTokenService)
			tt.setupMocks(users, pass, tokens)

			uc := app.NewAuthUseCase(&fakeTx{}, users, pass, tokens)
			email := tt.email
			if email == "" {
				email = testEmail
			}
			res, err := uc.Register(context.Background(), email, tt.password, "reader")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testToken, res.Token)
				assert.Equal(t, "Bearer", res.TokenType)
				assert.Equal(t, int64(1), res.User.ID)
			}
			users.AssertExpectations(t)
			pass.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}

func TestLogin(t *testing.T) {
	stored := &entities.User{ID: 1, Email: testEmail, Password: testHash, Nickname: "reader"}

	tests := []struct {
		name       string
		setupMocks func(users *mockUserRepository, pass *mockPasswordService, tokens *mockTokenService)
		wantErr    error
	}{
		{
			name: "success",
			setupMocks: func(users *mockUserRepository, pass *mockPasswordService, tokens *mockTokenService) {
				users.On("FindByEmail", mock.Anything, testEmail).Return(stored, nil).Once()
				pass.On("Verify", mock.Anything, testPassword, testHash).Return(true, nil).Once()
				tokens.On("GenerateAccessToken", mock.Anything, int64(1), testEmail).Return(testToken, time.Now(), nil).Once()
			},
		},
		{
			name: "unknown email",
			setupMocks: func(users *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				users.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setupMocks: func(users *mockUserRepository, pass *mockPasswordService, _ *mockTokenService) {
				users.On("FindByEmail", mock.Anything, testEmail).Return(stored, nil).Once()
				pass.On("Verify", mock.Anything, testPassword, testHash).Return(false, nil).Once()
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name: "repository failure is not an authentication error",
			setupMocks: func(users *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				users.On("FindByEmail", mock.Anything, testEmail).Return(nil, errDatabase).Once()
			},
			wantErr: errDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mockUserRepository)
			pass := new(mockPasswordService)
			tokens := new(mockTokenService)
			tt.setupMocks(users, pass, tokens)
			tx := &fakeTx{}

			res, err := app.NewAuthUseCase(tx, users, pass, tokens).Login(context.Background(), testEmail, testPassword)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testToken, res.Token)
				assert.Equal(t, services.TokenTypeBearer, res.TokenType)
			}
			assert.Equal(t, 1, tx.readOnly)
			users.AssertExpectations(t)
			pass.AssertExpectations(t)
		})
	}

	t.Run("same message for unknown email and wrong password", func(t *testing.T) {
		users := new(mockUserRepository)
		pass := new(mockPasswordService)
		users.On("FindByEmail", mock.Anything, "a@b.io").Return(nil, entities.ErrUserNotFound).Once()
		users.On("FindByEmail", mock.Anything, testEmail).Return(stored, nil).Once()
		pass.On("Verify", mock.Anything, "bad", testHash).Return(false, nil).Once()
		uc := app.NewAuthUseCase(&fakeTx{}, users, pass, new(mockTokenService))

		_, errUnknown := uc.Login(context.Background(), "a@b.io", "bad")
		_, errWrong := uc.Login(context.Background(), testEmail, "bad")

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		assert.ErrorIs(t, errUnknown, entities.ErrAuthentication)
	})
}
