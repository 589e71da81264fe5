package service

import (
	"errors"
	"testing"
	"time"

	"notable-server/internal/domain"
	"notable-server/internal/repository"
	"notable-server/pkg/hash"
	"notable-server/pkg/jwt"
)

type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users: make(map[string]*domain.User),
	}
}

func (m *mockUserRepo) Create(user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(id string) (*domain.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) EmailExists(email string) (bool, error) {
	_, err := m.FindByEmail(email)
	return err == nil, nil
}

func TestAuthService_Register(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "test-secret", 15*time.Minute, 7*24*time.Hour)

	tests := []struct {
		name    string
		req     *domain.RegisterRequest
		wantErr error
		setup   func()
	}{
		{
			name: "successful registration",
			req: &domain.RegisterRequest{
				Name:     "New User",
				Email:    "new@example.com",
				Password: "Password123!",
			},
			setup: func() {},
		},
		{
			name: "duplicate email",
			req: &domain.RegisterRequest{
				Name:     "Another User",
				Email:    "existing@example.com",
				Password: "Password123!",
			},
			wantErr: ErrEmailTaken,
			setup: func() {
				hashedPw, _ := hash.Hash("ExistingPass123!")
				repo.Create(&domain.User{
					ID:       "existing-id",
					Name:     "Existing User",
					Email:    "existing@example.com",
					Password: hashedPw,
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.users = make(map[string]*domain.User)
			tt.setup()

			err := service.Register(tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Register() unexpected error = %v", err)
				return
			}

			exists, _ := repo.EmailExists(tt.req.Email)
			if !exists {
				t.Error("Register() user not created in repository")
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "test-secret", 15*time.Minute, 7*24*time.Hour)

	password := "PlainPassword123!"
	if err := service.Register(&domain.RegisterRequest{
		Name:     "Hash Check",
		Email:    "hash@example.com",
		Password: password,
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := repo.FindByEmail("hash@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}

	if user.Password == password {
		t.Error("Register() stored password in plaintext")
	}
	if err := hash.Compare(user.Password, password); err != nil {
		t.Errorf("Register() stored hash does not match password: %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "test-secret-key", 15*time.Minute, 7*24*time.Hour)

	password := "UserPassword123!"
	hashedPassword, _ := hash.Hash(password)

	repo.Create(&domain.User{
		ID:       "test-user-id",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: hashedPassword,
	})

	tests := []struct {
		name    string
		req     *domain.LoginRequest
		wantErr bool
	}{
		{
			name: "successful login",
			req: &domain.LoginRequest{
				Email:    "test@example.com",
				Password: password,
			},
		},
		{
			name: "wrong password",
			req: &domain.LoginRequest{
				Email:    "test@example.com",
				Password: "WrongPassword",
			},
			wantErr: true,
		},
		{
			name: "non-existent email",
			req: &domain.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: password,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Login(tt.req)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
				}
				return
			}

			if err != nil {
				t.Errorf("Login() unexpected error = %v", err)
				return
			}

			if resp.AccessToken == "" {
				t.Error("Login() returned empty access token")
			}
			if resp.RefreshToken == "" {
				t.Error("Login() returned empty refresh token")
			}
			if resp.User == nil {
				t.Fatal("Login() returned nil user")
			}
			if resp.User.Password != "" {
				t.Error("Login() returned user with password set")
			}
			if resp.ExpiresIn != int64(15*time.Minute.Seconds()) {
				t.Errorf("Login() expiresIn = %v, want %v", resp.ExpiresIn, 15*60)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	repo := newMockUserRepo()
	secret := "refresh-test-secret-key"
	service := NewAuthService(repo, secret, 15*time.Minute, 7*24*time.Hour)

	validToken, _ := jwt.GenerateRefreshToken("refresh-user-id", 7*24*time.Hour, secret)
	expiredToken, _ := jwt.GenerateRefreshToken("refresh-user-id", -1*time.Hour, secret)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{
			name:  "valid refresh token",
			token: validToken,
		},
		{
			name:    "expired refresh token",
			token:   expiredToken,
			wantErr: true,
		},
		{
			name:    "invalid refresh token",
			token:   "invalid.token.here",
			wantErr: true,
		},
		{
			name:    "empty refresh token",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.RefreshToken(&domain.RefreshTokenRequest{RefreshToken: tt.token})

			if tt.wantErr {
				if err == nil {
					t.Error("RefreshToken() expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("RefreshToken() unexpected error = %v", err)
				return
			}

			if resp.AccessToken == "" {
				t.Error("RefreshToken() returned empty access token")
			}
			if resp.ExpiresIn != int64(15*time.Minute.Seconds()) {
				t.Errorf("RefreshToken() expiresIn = %v, want %v", resp.ExpiresIn, 15*60)
			}
		})
	}
}
