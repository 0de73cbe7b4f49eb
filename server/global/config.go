/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/UnifyEM/deadlink-watchdog/common/crypto"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/uconfig"
)

type ServerConfig struct {
	C  interfaces.Config     // Config object
	SC interfaces.Parameters // Server configuration
	SP interfaces.Parameters // Server private configuration
}

// ConfigFiles lists the locations searched for an existing configuration.
// The first entry is created if none exist.
func ConfigFiles() []string {
	var files []string
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".dlw", ConfigFileName))
	}
	return append(files, ConfigFileName)
}

// Config creates the configuration object, sets defaults, and
// loads the configuration from file. An empty file searches ConfigFiles.
func Config(file string) (*ServerConfig, error) {
	var err error
	c := &ServerConfig{}

	if file != "" {
		c.C, err = uconfig.New(uconfig.WithLoadOrCreate(file))
	} else {
		c.C, err = uconfig.New(uconfig.WithFindOrCreate(ConfigFiles()))
	}
	if err != nil {
		return &ServerConfig{}, err
	}

	// Set constraints, including default values
	c.SC, c.SP = setDefaults(c.C)

	// Make sure there is a JWT signing key
	if c.SP.Get(ConfigJWTKey).String() == "" {
		key, err := GenerateToken()
		if err != nil {
			return &ServerConfig{}, fmt.Errorf("unable to generate JWT key: %w", err)
		}
		c.SP.Set(ConfigJWTKey, key)
	}

	// Default the data path to a directory next to the config file
	dPath := c.SC.Get(ConfigDataPath).String()
	if dPath == "" {
		dPath = filepath.Join(filepath.Dir(c.C.File()), LogName)
		c.SC.Set(ConfigDataPath, dPath)
	}
	if !uconfig.CreateDir(dPath) {
		return &ServerConfig{}, fmt.Errorf("unable to open or create %s", dPath)
	}

	// Make sure there is a database path
	if c.SC.Get(ConfigDBPath).String() == "" {
		c.SC.Set(ConfigDBPath, filepath.Join(dPath, DatabaseName))
	}

	// Attempt to checkpoint the config
	if err = c.C.Checkpoint(); err != nil {
		return &ServerConfig{}, fmt.Errorf("unable to checkpoint config: %w", err)
	}
	return c, nil
}

// GenerateToken creates a new random token
func GenerateToken() (string, error) {
	return crypto.RandomToken(TokenLength)
}

func (c *ServerConfig) Checkpoint() error {
	return c.C.Checkpoint()
}
