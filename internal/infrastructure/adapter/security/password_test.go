package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/studrev/internal/domain/port/core"
)

var (
	_ core.PasswordHasher = PlaintextHasher{}
	_ core.PasswordHasher = (*BcryptHasher)(nil)
)

func TestPlaintextHasher(t *testing.T) {
	hasher := PlaintextHasher{}

	stored, err := hasher.Hash("x")
	require.NoError(t, err)
	assert.Equal(t, "x", stored)

	assert.True(t, hasher.Matches(stored, "x"))
	assert.False(t, hasher.Matches(stored, "y"))
	assert.False(t, hasher.Matches(stored, ""))
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	stored, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored)
	assert.True(t, strings.HasPrefix(stored, "$2a$"))

	assert.True(t, hasher.Matches(stored, "s3cret"))
	assert.False(t, hasher.Matches(stored, "s3cret!"))
	assert.False(t, hasher.Matches("not-a-digest", "s3cret"))
}

func TestNewPasswordHasher(t *testing.T) {
	testCases := []struct {
		scheme      string
		cost        int
		expectError bool
		expectType  any
	}{
		{scheme: "", expectType: PlaintextHasher{}},
		{scheme: "plaintext", expectType: PlaintextHasher{}},
		{scheme: " BCRYPT ", expectType: &BcryptHasher{}},
		{scheme: "bcrypt", cost: 99, expectError: true},
		{scheme: "md5", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.scheme, func(t *testing.T) {
			hasher, err := NewPasswordHasher(tc.scheme, tc.cost)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.expectType, hasher)
		})
	}
}
