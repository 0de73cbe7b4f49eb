/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"errors"
	"fmt"
	"maps"
	"net/mail"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError maps a field name to a message describing what is wrong with it
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Errors))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Errors[k]))
	}
	return strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// validator collects the first failure per field
type validator map[string]string

func (v validator) add(field, msg string) {
	if _, ok := v[field]; !ok {
		v[field] = msg
	}
}

func (v validator) check(ok bool, field, msg string) {
	if !ok {
		v.add(field, msg)
	}
}

func (v validator) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Errors: v}
}

// ValidEmail reports whether s is a bare email address
func ValidEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}

// ValidCode reports whether s is a six digit verification code
func ValidCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(CodeDigits, c) {
			return false
		}
	}
	return true
}

// ValidWebURL reports whether s is an absolute http or https URL
func ValidWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ParsePeriod converts an analytics period such as "7d" to days
func ParsePeriod(p string) (int, error) {
	if p == "" {
		p = DefaultPeriod
	}
	days, err := strconv.Atoi(strings.TrimSuffix(p, "d"))
	if err != nil || !strings.HasSuffix(p, "d") || days < 1 || days > 365 {
		return 0, fmt.Errorf("invalid period %q", p)
	}
	return days, nil
}

func (v validator) email(field, value string) {
	v.check(ValidEmail(value), field, "Please provide a valid email")
}

func (v validator) password(field, value string) {
	v.check(len(value) >= MinPasswordLen, field,
		fmt.Sprintf("Password must be at least %d characters long", MinPasswordLen))
}

func (v validator) name(field, label, value string) {
	n := len([]rune(strings.TrimSpace(value)))
	v.check(n >= MinNameLen, field, fmt.Sprintf("%s must be at least %d characters", label, MinNameLen))
	v.check(n <= MaxNameLen, field, fmt.Sprintf("%s must be less than %d characters", label, MaxNameLen))
}

func (v validator) oneOf(field, value string, allowed []string) {
	v.check(slices.Contains(allowed, value), field,
		fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
}

// Validate trims the names and checks every field
func (f *RegisterForm) Validate() error {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	v := validator{}
	v.email("email", f.Email)
	v.password("password", f.Password)
	v.name("firstName", "First name", f.FirstName)
	v.name("lastName", "Last name", f.LastName)
	return v.err()
}

func (f *LoginForm) Validate() error {
	v := validator{}
	v.email("email", f.Email)
	v.check(f.Password != "", "password", "Password is required")
	return v.err()
}

func (f *VerifyEmailForm) Validate() error {
	v := validator{}
	v.email("email", f.Email)
	v.check(len(f.Code) == CodeLength, "code", "Verification code must be 6 digits")
	v.check(ValidCode(f.Code), "code", "Verification code must contain only numbers")
	return v.err()
}

func (f *ResendVerificationForm) Validate() error {
	v := validator{}
	v.email("email", f.Email)
	return v.err()
}

func (f *ForgotPasswordForm) Validate() error {
	v := validator{}
	v.email("email", f.Email)
	return v.err()
}

func (f *ResetPasswordForm) Validate() error {
	v := validator{}
	v.check(f.Token != "", "token", "Reset token is required")
	v.password("newPassword", f.NewPassword)
	return v.err()
}

func (f *ChangePasswordForm) Validate() error {
	v := validator{}
	v.check(f.CurrentPassword != "", "currentPassword", "Current password is required")
	v.password("newPassword", f.NewPassword)
	return v.err()
}

// Validate checks only the fields that are set
func (f *UpdateProfileForm) Validate() error {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	v := validator{}
	if f.FirstName != "" {
		v.name("firstName", "First name", f.FirstName)
	}
	if f.LastName != "" {
		v.name("lastName", "Last name", f.LastName)
	}
	if f.Email != "" {
		v.email("email", f.Email)
	}
	if f.FirstName == "" && f.LastName == "" && f.Email == "" {
		v.add("profile", "Nothing to update")
	}
	return v.err()
}

func (f *WebsiteForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.URL = strings.TrimSpace(f.URL)
	v := validator{}
	v.check(f.Name != "", "name", "Name is required")
	v.check(len(f.Name) <= MaxWebsiteName, "name",
		fmt.Sprintf("Name must be less than %d characters", MaxWebsiteName))
	v.check(ValidWebURL(f.URL), "url", "Please provide a valid http or https URL")
	if f.CrawlFrequency != "" {
		v.oneOf("crawlFrequency", f.CrawlFrequency, FrequenciesAll)
	}
	if f.NotificationEmail != "" {
		v.email("notificationEmail", f.NotificationEmail)
	}
	if f.WebhookURL != "" {
		v.check(ValidWebURL(f.WebhookURL), "webhookUrl", "Please provide a valid http or https URL")
	}
	return v.err()
}

func (f *UserStatusForm) Validate() error {
	v := validator{}
	v.oneOf("status", f.Status, UserStatusAll)
	return v.err()
}

func (f *UserRoleForm) Validate() error {
	v := validator{}
	v.oneOf("role", f.Role, RolesAll)
	return v.err()
}

func (f *ModerateForm) Validate() error {
	v := validator{}
	v.oneOf("action", f.Action, ModerateAll)
	return v.err()
}

func (f *RefreshForm) Validate() error {
	v := validator{}
	v.check(f.RefreshToken != "", "refreshToken", "Refresh token is required")
	return v.err()
}
