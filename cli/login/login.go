/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/UnifyEM/deadlink-watchdog/cli/credentials"
	"github.com/UnifyEM/deadlink-watchdog/cli/global"
	"github.com/UnifyEM/deadlink-watchdog/common/api"
	"github.com/UnifyEM/deadlink-watchdog/common/apiclient"
	"github.com/UnifyEM/deadlink-watchdog/common/cache"
	"github.com/UnifyEM/deadlink-watchdog/common/fields"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/null"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/session"
	"github.com/UnifyEM/deadlink-watchdog/common/ulogger"
)

// ErrNotLoggedIn is returned when a command needs a session and none exists
var ErrNotLoggedIn = errors.New("not logged in, run 'dlw auth login' or set DLW_USER and DLW_PASS")

// Conn is everything a command needs to talk to the server
type Conn struct {
	*api.API
	Client  *apiclient.Client
	Session *session.Session
	Config  *global.ClientConfig
	Logger  interfaces.Logger
	Server  string
	creds   *credentials.Credentials
}

// Connect loads the configuration, the environment and the saved session.
// It does not require the user to be logged in.
func Connect() (*Conn, error) {
	conf, err := global.Config("")
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	return ConnectWith(conf)
}

// ConnectWith is Connect with an already loaded configuration
func ConnectWith(conf *global.ClientConfig) (*Conn, error) {

	LoadEnv(conf)

	logger, err := newLogger(conf)
	if err != nil {
		return nil, err
	}

	c := &Conn{Config: conf, Logger: logger, Server: ServerURL(conf)}

	c.creds, err = credentials.Open(conf, c.Server, logger)
	if err != nil {
		logger.Close()
		return nil, err
	}
	c.Session = c.creds.Session

	options := []apiclient.Option{
		apiclient.WithBaseURL(c.Server),
		apiclient.WithRefreshPath(conf.CC.Get(global.ConfigRefreshPath).String()),
		apiclient.WithTimeout(conf.CC.Get(global.ConfigRequestTimeout).Seconds()),
		apiclient.WithRefreshTimeout(conf.CC.Get(global.ConfigRefreshTimeout).Seconds()),
		apiclient.WithTokenSource(c.Session),
		apiclient.WithOnTokenRefresh(c.Session.Refreshed),
		apiclient.WithOnAuthError(c.Session.AuthError),
		apiclient.WithLogger(logger),
	}
	if c.creds.Jar != nil {
		options = append(options, apiclient.WithCookieJar(c.creds.Jar))
	}

	// The disk cache is shared between invocations; a failure only disables it
	if conf.CC.Get(global.ConfigCache).Bool() {
		dc, err := cache.NewDisk(conf.CC.Get(global.ConfigCacheDir).String(), conf.CC.Get(global.ConfigCacheTTL).Int())
		if err != nil {
			logger.Warning(4001, "response cache disabled", fields.NewFields(fields.Error(err)))
		} else {
			options = append(options, apiclient.WithCache(dc))
		}
	}

	c.Client, err = apiclient.New(options...)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.API = api.New(c.Client, c.Session)
	return c, nil
}

// RequireAuth makes sure there is a session, logging in with DLW_USER and
// DLW_PASS when none is saved
func (c *Conn) RequireAuth(ctx context.Context) error {
	if c.Session.IsAuthenticated() {
		return nil
	}

	user := os.Getenv(global.EnvUser)
	pass := os.Getenv(global.EnvPass)
	if user == "" || pass == "" {
		return ErrNotLoggedIn
	}

	resp, err := c.Auth.Login(ctx, schema.LoginForm{Email: user, Password: pass})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if resp.Data.Tokens == nil {
		return fmt.Errorf("login failed: %s", resp.Message)
	}
	c.Logger.Info(4002, "logged in from environment", fields.NewFields(fields.NewField("email", user)))
	return nil
}

// Close releases the session store and the logger
func (c *Conn) Close() {
	if c.creds != nil {
		c.creds.Close()
	}
	c.Logger.Close()
}

// LoadEnv loads environment variables from ~/.dlw/.env if it exists.
// Variables already set in the process take precedence.
func LoadEnv(conf *global.ClientConfig) {
	_ = godotenv.Load(conf.EnvFile())
}

// ServerURL picks the API base URL. The --server flag wins, then DLW_SERVER,
// then NEXT_PUBLIC_API_URL and finally the configuration file.
func ServerURL(conf *global.ClientConfig) string {
	for _, u := range []string{global.ServerOverride, os.Getenv(global.EnvServer), os.Getenv(global.EnvServerAlt)} {
		if u != "" {
			return normalize(u)
		}
	}
	return normalize(conf.CC.Get(global.ConfigServerURL).String())
}

// normalize trims a trailing /api, since endpoints already carry it
func normalize(u string) string {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	return strings.TrimSuffix(u, "/api")
}

// newLogger logs to the configured file and, with --debug, to stderr
func newLogger(conf *global.ClientConfig) (interfaces.Logger, error) {
	debug := global.Debug || conf.CC.Get(global.ConfigDebug).Bool()
	file := conf.CC.Get(global.ConfigLogFile).String()
	if file == "" && !debug {
		return null.Logger(), nil
	}

	logger, err := ulogger.New(
		ulogger.WithPrefix("dlw"),
		ulogger.WithLogFile(file),
		ulogger.WithLogStdout(debug),
		ulogger.WithWriter(os.Stderr),
		ulogger.WithDebug(debug),
		ulogger.WithRetention(7))
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}
	return logger, nil
}

// With connects, logs in when auth is set, runs f and closes the connection
func With(ctx context.Context, auth bool, f func(ctx context.Context, c *Conn) error) error {
	c, err := Connect()
	if err != nil {
		return err
	}
	defer c.Close()

	if auth {
		if err = c.RequireAuth(ctx); err != nil {
			return err
		}
	}
	return f(ctx, c)
}
