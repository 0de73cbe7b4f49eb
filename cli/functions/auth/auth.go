/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/deadlink-watchdog/cli/display"
	"github.com/UnifyEM/deadlink-watchdog/cli/global"
	"github.com/UnifyEM/deadlink-watchdog/cli/login"
	"github.com/UnifyEM/deadlink-watchdog/cli/util"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// Register returns the auth command with subcommands
func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "account and session commands",
		Long:  "register, log in, verify email and manage the current session",
	}

	cmd.AddCommand(registerCmd())
	cmd.AddCommand(loginCmd())
	cmd.AddCommand(verifyCmd())
	cmd.AddCommand(resendCmd())
	cmd.AddCommand(logoutCmd())
	cmd.AddCommand(whoamiCmd())
	cmd.AddCommand(profileCmd())
	cmd.AddCommand(passwordCmd())
	cmd.AddCommand(forgotCmd())
	cmd.AddCommand(resetCmd())
	cmd.AddCommand(statusCmd())
	cmd.AddCommand(tokenCmd())
	return cmd
}

func registerCmd() *cobra.Command {
	var form schema.RegisterForm

	cmd := &cobra.Command{
		Use:   "register",
		Short: "create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if form.Password, err = password("Password", form.Password); err != nil {
				return err
			}
			return login.With(cmd.Context(), false, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Auth.Register(ctx, form)
				if err != nil {
					return err
				}
				return display.Auth(cmd.OutOrStdout(), resp)
			})
		},
	}

	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "email address (required)")
	cmd.Flags().StringVarP(&form.FirstName, "first", "f", "", "first name (required)")
	cmd.Flags().StringVarP(&form.LastName, "last", "l", "", "last name (required)")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	return cmd
}

func loginCmd() *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "log in and save the session",
		Long:  "log in and save the session. Without arguments DLW_USER and DLW_PASS are used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), false, func(ctx context.Context, c *login.Conn) error {
				form := schema.LoginForm{Email: os.Getenv(global.EnvUser), Password: os.Getenv(global.EnvPass)}
				if len(args) == 1 {
					form.Email = args[0]
					form.Password = pass
				}
				if form.Email == "" {
					return errors.New("an email address or DLW_USER is required")
				}

				var err error
				if form.Password, err = password("Password", form.Password); err != nil {
					return err
				}

				resp, err := c.Auth.Login(ctx, form)
				if err != nil {
					return err
				}
				return display.Auth(cmd.OutOrStdout(), resp)
			})
		},
	}

	cmd.Flags().StringVarP(&pass, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <email> <code>",
		Short: "verify an email address with the emailed code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), false, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Auth.VerifyEmail(ctx, schema.VerifyEmailForm{Email: args[0], Code: args[1]})
				if err != nil {
					return err
				}
				return display.Auth(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func resendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resend <email>",
		Short: "send a new verification code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), false, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Auth.ResendVerification(ctx, args[0])
				if err != nil {
					return err
				}
				return display.Message(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), false, func(ctx context.Context, c *login.Conn) error {
				if err := c.Auth.Logout(); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				u, err := c.Auth.CurrentUser(ctx)
				if err != nil {
					return err
				}
				return display.User(cmd.OutOrStdout(), u)
			})
		},
	}
}

func profileCmd() *cobra.Command {
	var form schema.UpdateProfileForm

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "update your name or email address",
		RunE: func(cmd *cobra.Command, args []string) error {
			if form == (schema.UpdateProfileForm{}) {
				return errors.New("nothing to update, use --first, --last or --email")
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				u, err := c.Auth.UpdateProfile(ctx, form)
				if err != nil {
					return err
				}
				return display.User(cmd.OutOrStdout(), u)
			})
		},
	}

	cmd.Flags().StringVarP(&form.FirstName, "first", "f", "", "first name")
	cmd.Flags().StringVarP(&form.LastName, "last", "l", "", "last name")
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "email address")
	return cmd
}

func passwordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "change your password",
		RunE: func(cmd *cobra.Command, args []string) error {
			var form schema.ChangePasswordForm
			var err error
			if form.CurrentPassword, err = util.Password("Current password"); err != nil {
				return err
			}
			if form.NewPassword, err = newPassword(); err != nil {
				return err
			}
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Auth.ChangePassword(ctx, form)
				if err != nil {
					return err
				}
				return display.Message(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func forgotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forgot <email>",
		Short: "email a password reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), false, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Auth.ForgotPassword(ctx, args[0])
				if err != nil {
					return err
				}
				return display.Message(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <token>",
		Short: "set a new password with a reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := newPassword()
			if err != nil {
				return err
			}
			return login.With(cmd.Context(), false, func(ctx context.Context, c *login.Conn) error {
				resp, err := c.Auth.ResetPassword(ctx, schema.ResetPasswordForm{Token: args[0], NewPassword: pw})
				if err != nil {
					return err
				}
				return display.Message(cmd.OutOrStdout(), resp)
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show the server and saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), false, func(ctx context.Context, c *login.Conn) error {
				var u *schema.User
				if c.Session.IsAuthenticated() {
					u = c.Session.User()
				}
				return display.Status(cmd.OutOrStdout(), c.Server, u)
			})
		},
	}
}

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "print the current access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return login.With(cmd.Context(), true, func(ctx context.Context, c *login.Conn) error {
				return display.Token(cmd.OutOrStdout(), c.Session)
			})
		},
	}
}

// password returns given, or prompts for it when empty
func password(label, given string) (string, error) {
	if given != "" {
		return given, nil
	}
	return util.Password(label)
}

func newPassword() (string, error) {
	pw, err := util.Password("New password")
	if err != nil {
		return "", err
	}
	again, err := util.Password("Repeat new password")
	if err != nil {
		return "", err
	}
	if pw != again {
		return "", errors.New("passwords do not match")
	}
	return pw, nil
}
