/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/schema"
	"github.com/UnifyEM/deadlink-watchdog/common/uconfig"
)

const (
	ConfigClientSet      = "client"
	ConfigServerURL      = "server_url"
	ConfigRefreshPath    = "refresh_path"
	ConfigRequestTimeout = "request_timeout" // seconds
	ConfigRefreshTimeout = "refresh_timeout" // seconds
	ConfigLogFile        = "log_file"
	ConfigDebug          = "debug"
	ConfigSessionStore   = "session_store" // file, cookie or memory
	ConfigCookieAccess   = "cookie_access_max_age"
	ConfigCookieRefresh  = "cookie_refresh_max_age"
	ConfigCache          = "cache"
	ConfigCacheTTL       = "cache_ttl" // seconds
	ConfigCacheDir       = "cache_dir"
	ConfigPollInterval   = "poll_interval" // seconds
)

const (
	StoreFile   = "file"
	StoreCookie = "cookie"
	StoreMemory = "memory"
)

// ClientConfig holds the loaded configuration and the directory it lives in
type ClientConfig struct {
	C   interfaces.Config     // Config object
	CC  interfaces.Parameters // Client configuration
	Dir string
}

// Dir returns the default configuration directory, ~/.dlw
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to locate home directory: %w", err)
	}
	return filepath.Join(home, HomeDir), nil
}

// Config loads or creates config.json in dir. An empty dir uses Dir().
func Config(dir string) (*ClientConfig, error) {
	var err error

	if dir == "" {
		if dir, err = Dir(); err != nil {
			return nil, err
		}
	}
	if !uconfig.CreateDir(dir) {
		return nil, fmt.Errorf("unable to open or create %s", dir)
	}

	c := &ClientConfig{Dir: dir}
	c.C, err = uconfig.New(uconfig.WithLoadOrCreate(filepath.Join(dir, ConfigFileName)))
	if err != nil {
		return nil, err
	}
	c.CC = setDefaults(c.C)

	// Default the cache directory to a subdirectory of the config directory
	if c.CC.Get(ConfigCacheDir).String() == "" {
		c.CC.Set(ConfigCacheDir, filepath.Join(dir, "cache"))
	}

	if err = c.C.Checkpoint(); err != nil {
		return nil, fmt.Errorf("unable to checkpoint config: %w", err)
	}
	return c, nil
}

func (c *ClientConfig) Checkpoint() error {
	return c.C.Checkpoint()
}

// SessionFile is the path of the bbolt session store
func (c *ClientConfig) SessionFile() string {
	return filepath.Join(c.Dir, SessionFileName)
}

// EnvFile is the path of the optional dotenv file
func (c *ClientConfig) EnvFile() string {
	return filepath.Join(c.Dir, EnvFileName)
}

func setDefaults(c interfaces.Config) interfaces.Parameters {
	cc := c.NewSet(ConfigClientSet)
	cc.SetConstraint(ConfigServerURL, 0, 0, "http://localhost:3001")
	cc.SetConstraint(ConfigRefreshPath, 0, 0, schema.EndpointRefresh)
	cc.SetConstraint(ConfigRequestTimeout, 1, 600, 30)
	cc.SetConstraint(ConfigRefreshTimeout, 1, 600, 30)
	cc.SetConstraint(ConfigLogFile, 0, 0, "") // stderr when empty
	cc.SetConstraint(ConfigDebug, 0, 0, false)
	cc.SetConstraint(ConfigSessionStore, 0, 0, StoreFile)
	cc.SetConstraint(ConfigCookieAccess, 60, 0, schema.CookieAccessMaxAge)
	cc.SetConstraint(ConfigCookieRefresh, 60, 0, schema.CookieRefreshMaxAge)
	cc.SetConstraint(ConfigCache, 0, 0, true)
	cc.SetConstraint(ConfigCacheTTL, 1, 0, 60)
	cc.SetConstraint(ConfigCacheDir, 0, 0, "")
	cc.SetConstraint(ConfigPollInterval, 5, 0, 30)
	return cc
}
