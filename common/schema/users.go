//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

import "time"

// User is the account record returned by /api/auth
type User struct {
	ID            string     `json:"id" example:"U-6f9dcb2e-2e1b-4c3a-8a67-5b3e0d740df6"`
	Email         string     `json:"email" example:"alice@example.com"`
	FirstName     string     `json:"firstName" example:"Alice"`
	LastName      string     `json:"lastName" example:"Smith"`
	Role          string     `json:"role" example:"user"`
	EmailVerified bool       `json:"emailVerified" example:"true"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}

// FullName returns "First Last" with surrounding space removed
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// AuthTokens is the access/refresh pair issued at login and refresh
type AuthTokens struct {
	AccessToken  string `json:"accessToken" example:"jwt"`
	RefreshToken string `json:"refreshToken" example:"jwt"`
}

type AuthData struct {
	User                 User        `json:"user"`
	Tokens               *AuthTokens `json:"tokens,omitempty"`
	RequiresVerification bool        `json:"requiresVerification,omitempty"`
}

// AuthResponse is returned by register, login, verify-email and refresh
type AuthResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Login successful"`
	Data    AuthData `json:"data"`
}

// RefreshResponse carries the new pair at the top level as well as under
// data.tokens
type RefreshResponse struct {
	Success bool `json:"success" example:"true"`
	AuthTokens
	Message string   `json:"message" example:"Token refreshed successfully"`
	Data    AuthData `json:"data"`
}

type UserResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
	Data    struct {
		User User `json:"user"`
	} `json:"data"`
}

type RegisterForm struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailForm struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ResendVerificationForm struct {
	Email string `json:"email"`
}

type ForgotPasswordForm struct {
	Email string `json:"email"`
}

type ResetPasswordForm struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type ChangePasswordForm struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// RefreshForm is the body of POST /api/auth/refresh
type RefreshForm struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateProfileForm changes any subset of the profile fields
type UpdateProfileForm struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}
