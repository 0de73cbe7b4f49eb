/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

type AuthService struct {
	r       interfaces.Requester
	session Session
}

// Register creates an account. The server normally answers with
// requiresVerification and no tokens, in which case no session is started.
func (s *AuthService) Register(ctx context.Context, form schema.RegisterForm) (*schema.AuthResponse, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, schema.EndpointRegister, form)
}

func (s *AuthService) Login(ctx context.Context, form schema.LoginForm) (*schema.AuthResponse, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, schema.EndpointLogin, form)
}

func (s *AuthService) VerifyEmail(ctx context.Context, form schema.VerifyEmailForm) (*schema.AuthResponse, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, schema.EndpointVerifyEmail, form)
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) (*schema.MessageResponse, error) {
	form := schema.ResendVerificationForm{Email: email}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var resp schema.MessageResponse
	if err := s.r.Post(ctx, schema.EndpointResendVerification, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh exchanges a refresh token explicitly. The API client already does
// this transparently on a 401, so this is only needed by tooling.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*schema.AuthResponse, error) {
	form := schema.RefreshForm{RefreshToken: refreshToken}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var resp schema.AuthResponse
	if err := s.r.Post(ctx, schema.EndpointRefresh, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser returns the signed-in user, cached for UserTTL
func (s *AuthService) CurrentUser(ctx context.Context) (*schema.User, error) {
	var resp schema.UserResponse
	if err := s.r.GetCached(ctx, schema.EndpointMe, nil, UserTTL, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.User, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, form schema.UpdateProfileForm) (*schema.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var resp schema.UserResponse
	if err := s.r.Put(ctx, schema.EndpointProfile, form, &resp); err != nil {
		return nil, err
	}
	if s.session != nil {
		if err := s.session.UpdateUser(resp.Data.User); err != nil {
			return nil, fmt.Errorf("error saving profile: %w", err)
		}
	}
	return &resp.Data.User, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, form schema.ChangePasswordForm) (*schema.MessageResponse, error) {
	return s.message(ctx, schema.EndpointChangePassword, &form, true)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*schema.MessageResponse, error) {
	return s.message(ctx, schema.EndpointForgotPassword, &schema.ForgotPasswordForm{Email: email}, false)
}

func (s *AuthService) ResetPassword(ctx context.Context, form schema.ResetPasswordForm) (*schema.MessageResponse, error) {
	return s.message(ctx, schema.EndpointResetPassword, &form, false)
}

// Logout is client side only: the session and any cached responses are dropped
func (s *AuthService) Logout() error {
	clearCache(s.r)
	if s.session == nil {
		return nil
	}
	return s.session.Logout()
}

type validator interface {
	Validate() error
}

func (s *AuthService) message(ctx context.Context, endpoint string, form validator, put bool) (*schema.MessageResponse, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var resp schema.MessageResponse
	var err error
	if put {
		err = s.r.Put(ctx, endpoint, form, &resp)
	} else {
		err = s.r.Post(ctx, endpoint, form, &resp)
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// authenticate posts form and starts a session when tokens come back
func (s *AuthService) authenticate(ctx context.Context, endpoint string, form any) (*schema.AuthResponse, error) {
	var resp schema.AuthResponse
	if err := s.r.Post(ctx, endpoint, form, &resp); err != nil {
		return nil, err
	}

	tokens := resp.Data.Tokens
	if tokens == nil || s.session == nil {
		return &resp, nil
	}
	if tokens.AccessToken == "" {
		return nil, errors.New("server returned an empty access token")
	}
	if err := s.session.Login(resp.Data.User, *tokens); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}
	return &resp, nil
}
