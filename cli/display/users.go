/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"

	"golang.org/x/oauth2"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

func User(w io.Writer, u *schema.User) error {
	return Output(w, u, func(w io.Writer) {
		keyValue(w, [][]string{
			{"ID", u.ID},
			{"Name", u.FullName()},
			{"Email", u.Email},
			{"Role", label(u.Role)},
			{"Verified", yesNo(u.EmailVerified)},
			{"Last login", whenPtr(u.LastLoginAt)},
		})
	})
}

// Auth prints the outcome of register, login and verify
func Auth(w io.Writer, resp *schema.AuthResponse) error {
	return Output(w, resp, func(w io.Writer) {
		if resp.Message != "" {
			_, _ = fmt.Fprintln(w, resp.Message)
		}
		switch {
		case resp.Data.RequiresVerification:
			_, _ = fmt.Fprintf(w, "A verification code was sent to %s. Run 'dlw auth verify %s <code>'.\n",
				resp.Data.User.Email, resp.Data.User.Email)
		case resp.Data.Tokens != nil:
			_, _ = fmt.Fprintf(w, "Logged in as %s (%s)\n", resp.Data.User.FullName(), resp.Data.User.Email)
		}
	})
}

// Status describes the saved session
func Status(w io.Writer, server string, u *schema.User) error {
	type status struct {
		Server   string       `json:"server"`
		LoggedIn bool         `json:"loggedIn"`
		User     *schema.User `json:"user,omitempty"`
	}
	s := status{Server: server, LoggedIn: u != nil, User: u}
	return Output(w, s, func(w io.Writer) {
		rows := [][]string{{"Server", server}, {"Logged in", yesNo(u != nil)}}
		if u != nil {
			rows = append(rows, []string{"User", fmt.Sprintf("%s <%s>", u.FullName(), u.Email)}, []string{"Role", label(u.Role)})
		}
		keyValue(w, rows)
	})
}

func AdminUsers(w io.Writer, resp *schema.UsersResponse) error {
	return Output(w, resp, func(w io.Writer) {
		table := newTable(w, "ID", "Email", "Name", "Role", "Active", "Created")
		for _, u := range resp.Data.Users {
			table.Append([]string{u.ID, u.Email, u.FirstName + " " + u.LastName, label(u.Role), yesNo(u.IsActive), when(u.CreatedAt)})
		}
		table.Render()
		pagination(w, resp.Data.Pagination)
	})
}

// Token prints the bearer token of ts for use with other HTTP tools
func Token(w io.Writer, ts oauth2.TokenSource) error {
	tok, err := ts.Token()
	if err != nil {
		return err
	}
	out := struct {
		TokenType   string `json:"tokenType"`
		AccessToken string `json:"accessToken"`
	}{tok.Type(), tok.AccessToken}
	return Output(w, out, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, tok.AccessToken)
	})
}
