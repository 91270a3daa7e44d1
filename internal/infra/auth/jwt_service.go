package auth

import (
	"time"

	"examhub/config"
	"examhub/internal/domain/entity"
	"examhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// MinSecretLength is the shortest HMAC secret accepted for either token kind.
	MinSecretLength = 32

	tokenTypeLifecycle = "lifecycle"
	tokenTypeSession   = "session"
)

// lifecycleClaims is the wire format of activation and reset tokens.
type lifecycleClaims struct {
	Email   string `json:"email"`
	Kind    string `json:"kind"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
	Purpose string `json:"purpose"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

// Validate rejects tokens that are signed correctly but are not lifecycle tokens.
func (c *lifecycleClaims) Validate() error {
	if c.Type != tokenTypeLifecycle {
		return errors.New("not a lifecycle token")
	}
	if c.Email == "" {
		return errors.New("missing email claim")
	}
	if c.Purpose == "" {
		return errors.New("missing purpose claim")
	}

	return nil
}

// sessionClaims is the wire format of session tokens.
type sessionClaims struct {
	Kind string `json:"kind"`
	Role string `json:"role,omitempty"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Validate rejects tokens that are signed correctly but are not session tokens.
func (c *sessionClaims) Validate() error {
	if c.Type != tokenTypeSession {
		return errors.New("not a session token")
	}
	if c.Subject == "" {
		return errors.New("missing subject claim")
	}

	return nil
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	sessionSecret   []byte
	lifecycleSecret []byte
	sessionTTL      time.Duration
	lifecycleTTL    time.Duration
	now             func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if len(cfg.SecretKey.Session) < MinSecretLength || len(cfg.SecretKey.Lifecycle) < MinSecretLength {
		return nil, errors.Errorf("jwt secrets must be at least %d bytes", MinSecretLength)
	}
	if cfg.SecretKey.Session == cfg.SecretKey.Lifecycle {
		return nil, errors.New("session and lifecycle secrets must differ")
	}

	sessionTTL, lifecycleTTL := time.Hour, time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.SessionTTL > 0 {
			sessionTTL = cfg.Auth.SessionTTL
		}
		if cfg.Auth.LifecycleTokenTTL > 0 {
			lifecycleTTL = cfg.Auth.LifecycleTokenTTL
		}
	}

	return &jwtService{
		sessionSecret:   []byte(cfg.SecretKey.Session),
		lifecycleSecret: []byte(cfg.SecretKey.Lifecycle),
		sessionTTL:      sessionTTL,
		lifecycleTTL:    lifecycleTTL,
		now:             time.Now,
	}, nil
}

// IssueLifecycleToken signs the account's email and profile fields.
func (s *jwtService) IssueLifecycleToken(account *entity.Account, purpose service.LifecyclePurpose) (string, error) {
	now := s.now()
	claims := &lifecycleClaims{
		Email:   account.Email,
		Kind:    account.Kind.String(),
		Name:    account.Name,
		Phone:   account.Phone,
		TaxID:   account.TaxID,
		Purpose: string(purpose),
		Type:    tokenTypeLifecycle,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifecycleTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.lifecycleSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign lifecycle token")
	}

	return signed, nil
}

// VerifyLifecycleToken checks signature, expiry and purpose of a lifecycle token.
func (s *jwtService) VerifyLifecycleToken(token string, purpose service.LifecyclePurpose) (*service.LifecycleClaims, error) {
	claims := &lifecycleClaims{}
	if err := s.parse(token, claims, s.lifecycleSecret); err != nil {
		return nil, err
	}

	if claims.Purpose != string(purpose) {
		return nil, errors.Wrapf(service.ErrInvalidToken, "purpose %q does not match %q", claims.Purpose, purpose)
	}

	return &service.LifecycleClaims{
		TokenID:   claims.ID,
		Email:     claims.Email,
		Kind:      entity.AccountKind(claims.Kind),
		Name:      claims.Name,
		Phone:     claims.Phone,
		TaxID:     claims.TaxID,
		Purpose:   service.LifecyclePurpose(claims.Purpose),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IssueSessionToken signs a session token carrying the account id and, for workers, the role.
func (s *jwtService) IssueSessionToken(account *entity.Account) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.sessionTTL)
	claims := &sessionClaims{
		Kind: account.Kind.String(),
		Role: account.SessionRole().String(),
		Type: tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return signed, expiresAt, nil
}

// VerifySessionToken checks a bearer session token.
func (s *jwtService) VerifySessionToken(token string) (*service.SessionClaims, error) {
	claims := &sessionClaims{}
	if err := s.parse(token, claims, s.sessionSecret); err != nil {
		return nil, err
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "subject is not a valid id")
	}

	return &service.SessionClaims{
		AccountID: accountID,
		Kind:      entity.AccountKind(claims.Kind),
		Role:      entity.Role(claims.Role),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *jwtService) parse(token string, claims jwt.Claims, secret []byte) error {
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err == nil {
		return nil
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	}

	return errors.Wrap(service.ErrInvalidToken, err.Error())
}
