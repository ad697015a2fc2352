package jwt

import (
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claim names carried by access tokens.
const (
	ClaimUserID     = "user_id"
	ClaimName       = "name"
	ClaimRole       = "role"
	ClaimEmployeeID = "employee_id"
	ClaimType       = "type"

	TokenTypeAccess = "access"
)

var ErrInvalidClaims = errors.New("invalid token claims")

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string, expiresAt time.Time)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenTTL time.Duration
	tokenAuth      *jwtauth.JWTAuth
	clock          clock.Clock

	// token -> expiry; expired entries are dropped on the next revoke
	revokedTokens map[string]time.Time
	mu            sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration, clk clock.Clock) Service {
	return &JWTService{
		accessTokenTTL: accessTokenTTL,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		clock:          clk,
		revokedTokens:  make(map[string]time.Time),
	}
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expiresAt = j.clock.Now().Add(j.accessTokenTTL).Unix()

	claims := map[string]interface{}{
		ClaimUserID:     u.ID,
		ClaimName:       u.Name,
		ClaimRole:       string(u.Role),
		ClaimEmployeeID: returnValueOrNil(u.EmployeeID),
		ClaimType:       TokenTypeAccess,
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string, expiresAt time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.clock.Now()
	for t, exp := range j.revokedTokens {
		if exp.Before(now) {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// SessionFromClaims rebuilds the caller's role context from verified access token claims.
func SessionFromClaims(claims map[string]interface{}) (user.Session, error) {
	if tokenType, _ := claims[ClaimType].(string); tokenType != TokenTypeAccess {
		return user.Session{}, ErrInvalidClaims
	}

	userID, _ := claims[ClaimUserID].(string)
	role, _ := claims[ClaimRole].(string)
	if userID == "" || !user.Role(role).IsValid() {
		return user.Session{}, ErrInvalidClaims
	}

	name, _ := claims[ClaimName].(string)
	employeeID, _ := claims[ClaimEmployeeID].(string)

	return user.Session{
		UserID:      userID,
		Role:        user.Role(role),
		EmployeeID:  employeeID,
		DisplayName: name,
	}, nil
}
