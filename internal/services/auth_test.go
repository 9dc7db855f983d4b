package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/models"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-calorie-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func ptr(v float64) *float64 { return &v }

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		jwt := services.NewMockJWTGenerator(ctrl)
		svc := services.NewAuthService(reader, writer, jwt)

		reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "Alice", u.Name)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass123")))
			u.ID = 42
			return nil
		})
		jwt.EXPECT().Generate(gomock.Any(), int64(42)).Return("token", nil)

		user, token, err := svc.Register(ctx, " Alice ", " alice@example.com ", "pass123", ptr(1500), ptr(2000))
		require.NoError(t, err)
		assert.Equal(t, "token", token)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, 1500.0, *user.MinKcal)
		assert.Equal(t, 2000.0, *user.MaxKcal)
	})

	validation := []struct {
		name     string
		userName string
		email    string
		password string
		min, max *float64
	}{
		{"missing name", "", "a@example.com", "pw", nil, nil},
		{"blank name", "   ", "a@example.com", "pw", nil, nil},
		{"missing email", "A", "", "pw", nil, nil},
		{"missing password", "A", "a@example.com", "", nil, nil},
		{"non-positive min", "A", "a@example.com", "pw", ptr(0), nil},
		{"negative max", "A", "a@example.com", "pw", nil, ptr(-5)},
		{"min equal to max", "A", "a@example.com", "pw", ptr(2000), ptr(2000)},
		{"min above max", "A", "a@example.com", "pw", ptr(2500), ptr(2000)},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

			_, _, err := svc.Register(ctx, tt.userName, tt.email, tt.password, tt.min, tt.max)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}

	t.Run("user already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(reader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

		reader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(&models.User{ID: 1}, nil)

		_, _, err := svc.Register(ctx, "Bob", "bob@example.com", "pw", nil, nil)
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("duplicate on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		svc := services.NewAuthService(reader, writer, services.NewMockJWTGenerator(ctrl))

		reader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate)

		_, _, err := svc.Register(ctx, "Bob", "bob@example.com", "pw", nil, nil)
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("reader error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(reader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

		dbErr := errors.New("db error")
		reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		_, _, err := svc.Register(ctx, "Eve", "eve@example.com", "pw", nil, nil)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("writer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		svc := services.NewAuthService(reader, writer, services.NewMockJWTGenerator(ctrl))

		saveErr := errors.New("save error")
		reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saveErr)

		_, _, err := svc.Register(ctx, "Carol", "carol@example.com", "pw", nil, nil)
		assert.ErrorIs(t, err, saveErr)
	})

	t.Run("token error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		jwt := services.NewMockJWTGenerator(ctrl)
		svc := services.NewAuthService(reader, writer, jwt)

		jwtErr := errors.New("jwt error")
		reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		jwt.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", jwtErr)

		_, _, err := svc.Register(ctx, "Dan", "dan@example.com", "pw", nil, nil)
		assert.ErrorIs(t, err, jwtErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: 7, Name: "Alice", Email: "alice@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.User
		readerErr error
		jwtCalled bool
		wantErr   error
	}{
		{name: "successful login", email: "alice@example.com", password: "pass123", user: stored, jwtCalled: true},
		{name: "unknown email", email: "nobody@example.com", password: "pass123", wantErr: services.ErrInvalidCredentials},
		{name: "wrong password", email: "alice@example.com", password: "wrong", user: stored, wantErr: services.ErrInvalidCredentials},
		{name: "reader error", email: "alice@example.com", password: "pass123", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := services.NewMockUserReader(ctrl)
			jwt := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(reader, services.NewMockUserWriter(ctrl), jwt)

			reader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)
			if tt.jwtCalled {
				jwt.EXPECT().Generate(gomock.Any(), stored.ID).Return("token", nil)
			}

			user, token, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", token)
			assert.Equal(t, stored.ID, user.ID)
		})
	}

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(reader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

		reader.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
		reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)

		_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "pass123")
		_, _, errWrong := svc.Login(ctx, "alice@example.com", "wrong")
		assert.Equal(t, errUnknown, errWrong)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

		_, _, err := svc.Login(ctx, "", "pw")
		assert.ErrorIs(t, err, services.ErrValidation)
		_, _, err = svc.Login(ctx, "a@example.com", "")
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}
