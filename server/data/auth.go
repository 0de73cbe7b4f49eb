/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/server/codes"
	"github.com/UnifyEM/deadlink-watchdog/server/db"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
	"github.com/UnifyEM/deadlink-watchdog/server/mailer"
)

var errNotVerified = newError(http.StatusForbidden, "Please verify your email before logging in")

// Register creates an unverified account and mails a verification code
func (d *Data) Register(ctx context.Context, form schema.RegisterForm) (schema.AuthData, error) {
	if err := form.Validate(); err != nil {
		return schema.AuthData{}, err
	}

	u := &db.UserRecord{
		Email:     strings.TrimSpace(form.Email),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Role:      schema.RoleUser,
		IsActive:  true,
		CreatedAt: d.clock.Now(),
	}
	if err := u.SetPassword(form.Password); err != nil {
		return schema.AuthData{}, err
	}
	if err := d.database.CreateUser(u); err != nil {
		if errors.Is(err, db.ErrExists) {
			return schema.AuthData{}, newError(http.StatusConflict, "User already exists with this email")
		}
		return schema.AuthData{}, err
	}

	d.logger.Info(2210, "user registered", fields.NewFields(
		fields.NewField("id", u.ID),
		fields.NewField("email", u.Email)))

	if err := d.sendVerification(ctx, u); err != nil {
		return schema.AuthData{}, err
	}
	return schema.AuthData{User: u.User(), RequiresVerification: true}, nil
}

func (d *Data) sendVerification(ctx context.Context, u *db.UserRecord) error {
	code, err := codes.NewCode()
	if err != nil {
		return err
	}
	ttl := d.conf.SC.Get(global.ConfigCodeTTL).Seconds()
	if err = d.codes.Save(ctx, codes.PurposeVerify, u.Email, code, ttl); err != nil {
		return err
	}
	if err = d.mailer.Send(ctx, mailer.VerificationMessage(u.Email, code, ttl)); err != nil {
		d.logger.Errorf(2401, "unable to send verification email to %s: %s", u.Email, err.Error())
		return newError(http.StatusBadGateway, "Unable to send verification email")
	}
	return nil
}

// Login checks the credentials. Unverified accounts are refused.
func (d *Data) Login(_ context.Context, form schema.LoginForm) (schema.AuthData, error) {
	if err := form.Validate(); err != nil {
		return schema.AuthData{}, err
	}

	u, err := d.database.CheckAuth(form.Email, form.Password)
	switch {
	case errors.Is(err, db.ErrBadCredentials):
		return schema.AuthData{}, newError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, db.ErrAccountDisabled):
		return schema.AuthData{}, newError(http.StatusForbidden, "Account is suspended")
	case err != nil:
		return schema.AuthData{}, err
	}

	if !u.EmailVerified {
		return schema.AuthData{User: u.User(), RequiresVerification: true}, errNotVerified
	}

	tokens, err := d.startSession(u)
	if err != nil {
		return schema.AuthData{}, err
	}
	return schema.AuthData{User: u.User(), Tokens: &tokens}, nil
}

// VerifyEmail consumes the code, marks the address verified and signs the user in
func (d *Data) VerifyEmail(ctx context.Context, form schema.VerifyEmailForm) (schema.AuthData, error) {
	if err := form.Validate(); err != nil {
		return schema.AuthData{}, err
	}

	u, err := d.database.GetUserByEmail(form.Email)
	if err != nil {
		return schema.AuthData{}, badRequest("Invalid or expired verification code")
	}
	if u.EmailVerified {
		return schema.AuthData{}, badRequest("Email is already verified")
	}

	err = d.codes.Consume(ctx, codes.PurposeVerify, u.Email, form.Code)
	switch {
	case errors.Is(err, codes.ErrAttempts):
		return schema.AuthData{}, badRequest("Too many attempts, please request a new code")
	case errors.Is(err, codes.ErrMismatch), errors.Is(err, codes.ErrNotFound):
		return schema.AuthData{}, badRequest("Invalid or expired verification code")
	case err != nil:
		return schema.AuthData{}, err
	}

	u, err = d.database.UpdateUser(u.ID, func(rec *db.UserRecord) error {
		rec.EmailVerified = true
		now := d.clock.Now()
		rec.LastLoginAt = &now
		return nil
	})
	if err != nil {
		return schema.AuthData{}, err
	}

	tokens, err := d.startSession(u)
	if err != nil {
		return schema.AuthData{}, err
	}
	return schema.AuthData{User: u.User(), Tokens: &tokens}, nil
}

// ResendVerification mails a new code. Unknown addresses are not reported.
func (d *Data) ResendVerification(ctx context.Context, email string) error {
	form := schema.ResendVerificationForm{Email: email}
	if err := form.Validate(); err != nil {
		return err
	}
	u, err := d.database.GetUserByEmail(email)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if u.EmailVerified {
		return badRequest("Email is already verified")
	}
	return d.sendVerification(ctx, u)
}

func (d *Data) Me(userID string) (schema.User, error) {
	u, err := d.database.GetUser(userID)
	if err != nil {
		return schema.User{}, notFound("User")
	}
	return u.User(), nil
}

func (d *Data) UpdateProfile(userID string, form schema.UpdateProfileForm) (schema.User, error) {
	if err := form.Validate(); err != nil {
		return schema.User{}, err
	}
	u, err := d.database.UpdateUser(userID, func(rec *db.UserRecord) error {
		if form.FirstName != "" {
			rec.FirstName = form.FirstName
		}
		if form.LastName != "" {
			rec.LastName = form.LastName
		}
		if form.Email != "" {
			rec.Email = strings.TrimSpace(form.Email)
		}
		return nil
	})
	switch {
	case errors.Is(err, db.ErrExists):
		return schema.User{}, newError(http.StatusConflict, "Email is already in use")
	case errors.Is(err, db.ErrNotFound):
		return schema.User{}, notFound("User")
	case err != nil:
		return schema.User{}, err
	}
	return u.User(), nil
}

// ChangePassword replaces the password and ends every other session
func (d *Data) ChangePassword(userID string, form schema.ChangePasswordForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	_, err := d.database.UpdateUser(userID, func(rec *db.UserRecord) error {
		if !rec.CheckPassword(form.CurrentPassword) {
			return badRequest("Current password is incorrect")
		}
		return rec.SetPassword(form.NewPassword)
	})
	if err != nil {
		return err
	}
	return d.database.RevokeUserTokens(userID)
}

// ForgotPassword mails a reset token. The response is the same whether
// or not the address is registered.
func (d *Data) ForgotPassword(ctx context.Context, email string) error {
	form := schema.ForgotPasswordForm{Email: email}
	if err := form.Validate(); err != nil {
		return err
	}

	u, err := d.database.GetUserByEmail(email)
	if errors.Is(err, db.ErrNotFound) {
		d.logger.Debugf(2211, "password reset requested for unknown address %s", email)
		return nil
	}
	if err != nil {
		return err
	}

	token, err := global.GenerateToken()
	if err != nil {
		return err
	}
	ttl := d.conf.SC.Get(global.ConfigResetTTL).Seconds()
	if err = d.codes.Save(ctx, codes.PurposeReset, token, u.ID, ttl); err != nil {
		return err
	}
	if err = d.mailer.Send(ctx, mailer.ResetMessage(u.Email, token, ttl)); err != nil {
		d.logger.Errorf(2402, "unable to send reset email to %s: %s", u.Email, err.Error())
		return newError(http.StatusBadGateway, "Unable to send reset email")
	}
	return nil
}

// ResetPassword consumes the reset token and sets the new password
func (d *Data) ResetPassword(ctx context.Context, form schema.ResetPasswordForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	userID, err := d.codes.Take(ctx, codes.PurposeReset, form.Token)
	if errors.Is(err, codes.ErrNotFound) {
		return badRequest("Invalid or expired reset token")
	}
	if err != nil {
		return err
	}

	_, err = d.database.UpdateUser(userID, func(rec *db.UserRecord) error {
		return rec.SetPassword(form.NewPassword)
	})
	if errors.Is(err, db.ErrNotFound) {
		return badRequest("Invalid or expired reset token")
	}
	if err != nil {
		return err
	}
	return d.database.RevokeUserTokens(userID)
}

// SetAdmin creates or resets an administrator account
func (d *Data) SetAdmin(email, password string) error {
	if !schema.ValidEmail(email) {
		return badRequest("Please provide a valid email")
	}
	if len(password) < schema.MinPasswordLen {
		return badRequest("Password is too short")
	}
	_, err := d.database.SetAuth(email, password, schema.RoleAdmin)
	return err
}
