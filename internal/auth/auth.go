package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RoleOwner is the single account role: every signed-up user owns and
// manages their own sites.
const RoleOwner = "OWNER"

const (
	accessTokenTTL  = 12 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// ctxKey represents the type of value for the context key.
type ctxKey int

// Key is used to store/retrieve Claims from a context.Context.
const Key ctxKey = 1

type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
}

// Authorized reports whether the claims carry one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// GetClaims returns the claims stored in the context by the auth
// middleware.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, errors.New("claims missing from context")
	}
	return claims, nil
}

// Auth signs and verifies tokens. Refresh tokens are whitelisted in
// redis so they are revocable and single-use.
type Auth struct {
	key   []byte
	redis *redis.Client
}

func New(jwtKey string, redisDB *redis.Client) *Auth {
	return &Auth{key: []byte(jwtKey), redis: redisDB}
}

// GenTokens issues a fresh access/refresh token pair for the user.
func (a *Auth) GenTokens(ctx context.Context, userID int, role string) (string, string, error) {
	now := time.Now()

	accessClaims := Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
		UserId: userID,
		Role:   role,
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(a.key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshClaims := Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenTTL).Unix(),
		},
		UserId: userID,
		Role:   role,
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(a.key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	if err = a.redis.Set(ctx, refreshKey(userID, refreshToken), 1, refreshTokenTTL).Err(); err != nil {
		return "", "", errors.Wrap(err, "storing refresh token")
	}

	return accessToken, refreshToken, nil
}

// ValidateToken parses and verifies an access token.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

// ValidateRefreshToken verifies a refresh token against the redis
// whitelist and consumes it.
func (a *Auth) ValidateRefreshToken(ctx context.Context, tokenStr string) (Claims, error) {
	claims, err := a.ValidateToken(tokenStr)
	if err != nil {
		return Claims{}, err
	}

	key := refreshKey(claims.UserId, tokenStr)

	n, err := a.redis.Exists(ctx, key).Result()
	if err != nil {
		return Claims{}, errors.Wrap(err, "checking refresh token")
	}
	if n == 0 {
		return Claims{}, errors.New("refresh token revoked or already used")
	}

	if err = a.redis.Del(ctx, key).Err(); err != nil {
		return Claims{}, errors.Wrap(err, "consuming refresh token")
	}

	return claims, nil
}

func refreshKey(userID int, token string) string {
	return fmt.Sprintf("refresh_token:%d:%s", userID, token)
}
