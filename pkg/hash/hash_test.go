package hash

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "typical password",
			password: "NotableUser2024!",
		},
		{
			name:     "minimum length password",
			password: "8chars!!",
		},
		{
			name:     "below minimum length",
			password: "short",
			wantErr:  true,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := Hash(tt.password)

			if tt.wantErr {
				if err == nil {
					t.Error("Hash() expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Hash() unexpected error = %v", err)
				return
			}

			if hashed == "" || hashed == tt.password {
				t.Error("Hash() did not produce a hash")
			}

			if !strings.HasPrefix(hashed, "$2a$12$") {
				t.Errorf("Hash() unexpected bcrypt format: %s", hashed[:10])
			}

			if err := Compare(hashed, tt.password); err != nil {
				t.Errorf("Compare() rejected its own hash: %v", err)
			}
		})
	}
}

func TestHashSalted(t *testing.T) {
	password := "SamePassword123!"

	hash1, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	hash2, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("Hash() should salt, same input produced identical hashes")
	}
}

func TestCompare(t *testing.T) {
	password := "MySecurePassword123!"
	hashed, err := Hash(password)
	if err != nil {
		t.Fatalf("failed to generate hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "correct password",
			password: password,
		},
		{
			name:     "incorrect password",
			password: "WrongPassword",
			wantErr:  true,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "case sensitive",
			password: strings.ToUpper(password),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(hashed, tt.password)

			if tt.wantErr && err == nil {
				t.Error("Compare() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Compare() unexpected error = %v", err)
			}
		})
	}
}
