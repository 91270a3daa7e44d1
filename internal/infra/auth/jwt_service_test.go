package auth

import (
	"testing"
	"time"

	"examhub/config"
	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSessionSecret   = "session-secret-0123456789abcdefghijklmnop"
	testLifecycleSecret = "lifecycle-secret-0123456789abcdefghijklmnop"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Session: testSessionSecret, Lifecycle: testLifecycleSecret},
		Auth:      &config.AuthConfig{SessionTTL: time.Hour, LifecycleTokenTTL: time.Hour},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:    uuid.New(),
		Kind:  entity.AccountKindWorker,
		Email: "ana@example.com",
		Name:  "Ana",
		Phone: "11999990000",
		TaxID: "12345678901",
	}
}

func TestNewJWTService_RejectsWeakSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{SecretKey: config.SecretKey{Session: "short", Lifecycle: testLifecycleSecret}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{SecretKey: config.SecretKey{Session: testSessionSecret, Lifecycle: testSessionSecret}})
	assert.Error(t, err)
}

func TestLifecycleToken_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	account := testAccount()

	token, err := svc.IssueLifecycleToken(account, service.PurposeActivation)
	require.NoError(t, err)

	claims, err := svc.VerifyLifecycleToken(token, service.PurposeActivation)
	require.NoError(t, err)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.Kind, claims.Kind)
	assert.Equal(t, account.TaxID, claims.TaxID)
	assert.Equal(t, service.PurposeActivation, claims.Purpose)
	assert.NotEmpty(t, claims.TokenID)
}

func TestLifecycleToken_TokensAreUnique(t *testing.T) {
	svc := newTestJWTService(t)
	account := testAccount()

	first, err := svc.IssueLifecycleToken(account, service.PurposeReset)
	require.NoError(t, err)
	second, err := svc.IssueLifecycleToken(account, service.PurposeReset)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLifecycleToken_PurposeMismatch(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.IssueLifecycleToken(testAccount(), service.PurposeActivation)
	require.NoError(t, err)

	_, err = svc.VerifyLifecycleToken(token, service.PurposeReset)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestLifecycleToken_Expired(t *testing.T) {
	svc := newTestJWTService(t)
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueLifecycleToken(testAccount(), service.PurposeActivation)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.VerifyLifecycleToken(token, service.PurposeActivation)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestLifecycleToken_MissingExpirationRejected(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &lifecycleClaims{
		Email:   "ana@example.com",
		Kind:    "worker",
		Purpose: string(service.PurposeActivation),
		Type:    tokenTypeLifecycle,
	}).SignedString([]byte(testLifecycleSecret))
	require.NoError(t, err)

	_, err = svc.VerifyLifecycleToken(token, service.PurposeActivation)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestLifecycleToken_TamperedAndGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.IssueLifecycleToken(testAccount(), service.PurposeActivation)
	require.NoError(t, err)

	_, err = svc.VerifyLifecycleToken(token+"x", service.PurposeActivation)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.VerifyLifecycleToken("not-a-token", service.PurposeActivation)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	account := testAccount()
	account.Role = entity.RoleEditor

	token, expiresAt, err := svc.IssueSessionToken(account)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, entity.AccountKindWorker, claims.Kind)
	assert.Equal(t, entity.RoleEditor, claims.Role)
}

func TestTokens_AreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService(t)
	account := testAccount()

	lifecycle, err := svc.IssueLifecycleToken(account, service.PurposeActivation)
	require.NoError(t, err)
	session, _, err := svc.IssueSessionToken(account)
	require.NoError(t, err)

	_, err = svc.VerifySessionToken(lifecycle)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.VerifyLifecycleToken(session, service.PurposeActivation)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestSessionToken_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &sessionClaims{
		Kind: "worker",
		Type: tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSessionSecret))
	require.NoError(t, err)

	_, err = svc.VerifySessionToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
