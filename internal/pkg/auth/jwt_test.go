package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "eduadmin.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)

	access, refresh, expiresIn, err := svc.GenerateTokenPair("STU0001", "stu@example.com", "student")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "STU0001", claims.UserID)
	assert.Equal(t, "stu@example.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "eduadmin.test", claims.Issuer)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)

	_, refresh, _, err := svc.GenerateTokenPair("CNS0001", "c@example.com", "counsellor")
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "CNS0001", claims.UserID)
	assert.Equal(t, "counsellor", claims.Role)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	svc := testService(time.Hour)

	access, refresh, _, err := svc.GenerateTokenPair("STU0001", "stu@example.com", "student")
	require.NoError(t, err)

	// A refresh token is not an access token and the reverse.
	_, err = svc.ValidateToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenOutlivesAccessToken(t *testing.T) {
	svc := testService(-time.Minute)

	access, refresh, _, err := svc.GenerateTokenPair("ADM0001", "a@example.com", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)

	_, err = svc.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)

	access, _, _, err := svc.GenerateTokenPair("TCH0001", "t@example.com", "teacher")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	access, _, _, err := testService(time.Hour).GenerateTokenPair("ADM0001", "a@example.com", "admin")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
