// Package token issues and verifies the signed access/refresh token pair.
// Validity is purely signature + expiry; there is no server-side session or
// revocation list.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"agrisync/entities"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrInvalid = errors.New("token is invalid or expired")

// Claims are the facts embedded in every issued token. Receivers trust them
// without a database lookup.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Pair issues an access and a refresh token for the user, both carrying the
// same identity claims.
func (i *Issuer) Pair(u *entities.User) (access, refresh string, err error) {
	access, err = i.sign(u.ID, u.Username, string(u.Role), TypeAccess, i.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = i.sign(u.ID, u.Username, string(u.Role), TypeRefresh, i.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// AccessFromClaims issues a fresh access token for an already-verified set of
// refresh claims.
func (i *Issuer) AccessFromClaims(c *Claims) (string, error) {
	return i.sign(c.UserID, c.Username, c.Role, TypeAccess, i.accessTTL)
}

func (i *Issuer) sign(id uint, username, role, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    id,
		Username:  username,
		Role:      role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies signature and expiry and checks the token is of the wanted
// type (an access token is not accepted where a refresh token is required,
// and vice versa).
func (i *Issuer) Parse(raw, wantType string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalid
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalid
	}
	return &claims, nil
}
