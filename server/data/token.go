/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/server/db"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
)

const (
	PurposeAccess  = "access"
	PurposeRefresh = "refresh"
)

// CustomClaims includes jwt.RegisteredClaims and adds custom fields
type CustomClaims struct {
	jwt.RegisteredClaims
	Role    string `json:"role"`
	Purpose string `json:"purpose"`
}

// AuthInfo identifies the caller of an authenticated request
type AuthInfo struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the caller holds the admin role
func (a *AuthInfo) IsAdmin() bool {
	return a != nil && a.Role == schema.RoleAdmin
}

// createToken signs a token for the subject. The lifetime depends on the purpose.
func (d *Data) createToken(subject, role, purpose string) (string, *CustomClaims, error) {
	var lifeTime time.Duration

	// Get the appropriate lifetime
	switch purpose {
	case PurposeAccess:
		lifeTime = d.conf.SC.Get(global.ConfigAccessLife).Seconds()
	case PurposeRefresh:
		lifeTime = d.conf.SC.Get(global.ConfigRefreshLife).Seconds()
	default:
		return "", nil, errors.New("invalid token purpose")
	}

	// Define the JWT claims
	// Set NotBefore 5 minutes in the past to allow for clock skew
	now := d.clock.Now()
	claims := &CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifeTime)),
			Issuer:    global.Name,
			ID:        db.NewID(db.PrefixToken),
		},
		Role:    role,
		Purpose: purpose,
	}

	// Sign the token with the secret key
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.jwtKey)
	if err != nil {
		return "", nil, err
	}
	return tokenString, claims, nil
}

// ValidateToken validates the supplied token, including its purpose, and returns the claims
func (d *Data) ValidateToken(tokenString string, purpose string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return d.jwtKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(global.Name),
		jwt.WithTimeFunc(d.clock.Now))
	if err != nil {
		return nil, err
	}

	// Validate the token and extract the claims
	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid && claims.Purpose == purpose {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Authenticate checks an access token and returns the caller. The user
// must still exist and be active.
func (d *Data) Authenticate(accessToken string) (*AuthInfo, error) {
	claims, err := d.ValidateToken(accessToken, PurposeAccess)
	if err != nil {
		return nil, err
	}

	u, err := d.database.GetUser(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("subject not found in database: %s", claims.Subject)
	}
	if !u.IsActive {
		return nil, fmt.Errorf("subject disabled in database: %s", claims.Subject)
	}
	return &AuthInfo{UserID: u.ID, Role: u.Role}, nil
}

// issueTokens creates an access/refresh pair and records the refresh token
func (d *Data) issueTokens(u *db.UserRecord) (schema.AuthTokens, *db.RefreshRecord, error) {
	access, _, err := d.createToken(u.ID, u.Role, PurposeAccess)
	if err != nil {
		return schema.AuthTokens{}, nil, err
	}
	refresh, claims, err := d.createToken(u.ID, u.Role, PurposeRefresh)
	if err != nil {
		return schema.AuthTokens{}, nil, err
	}
	rec := &db.RefreshRecord{
		ID:        claims.ID,
		UserID:    u.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	return schema.AuthTokens{AccessToken: access, RefreshToken: refresh}, rec, nil
}

// startSession issues tokens and stores the refresh record
func (d *Data) startSession(u *db.UserRecord) (schema.AuthTokens, error) {
	tokens, rec, err := d.issueTokens(u)
	if err != nil {
		return schema.AuthTokens{}, err
	}
	if err = d.database.StoreRefresh(*rec); err != nil {
		return schema.AuthTokens{}, err
	}
	return tokens, nil
}

// RefreshTokens rotates a refresh token. Each refresh token can be used
// once; presenting a used one revokes every session of the user.
func (d *Data) RefreshTokens(refreshToken string) (schema.AuthData, error) {
	claims, err := d.ValidateToken(refreshToken, PurposeRefresh)
	if err != nil {
		return schema.AuthData{}, ErrUnauthorized
	}

	// Check that the user exists and is marked active
	u, err := d.database.GetUser(claims.Subject)
	if err != nil || !u.IsActive {
		return schema.AuthData{}, ErrUnauthorized
	}

	tokens, rec, err := d.issueTokens(u)
	if err != nil {
		return schema.AuthData{}, err
	}

	err = d.database.RotateRefresh(claims.ID, *rec, d.clock.Now())
	switch {
	case errors.Is(err, db.ErrTokenReuse):
		d.logger.Warningf(2831, "refresh token reuse detected for %s, all sessions revoked", u.ID)
		return schema.AuthData{}, ErrUnauthorized
	case errors.Is(err, db.ErrTokenUnknown), errors.Is(err, db.ErrTokenExpired):
		return schema.AuthData{}, ErrUnauthorized
	case err != nil:
		return schema.AuthData{}, err
	}

	return schema.AuthData{User: u.User(), Tokens: &tokens}, nil
}
