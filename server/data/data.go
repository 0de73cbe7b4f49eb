//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

// Package data implements the development server behaviour on top of
// the database, the code store and the mailer
package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/server/codes"
	"github.com/UnifyEM/deadlink-watchdog/server/db"
	"github.com/UnifyEM/deadlink-watchdog/server/global"
	"github.com/UnifyEM/deadlink-watchdog/server/mailer"
)

type Data struct {
	logger   interfaces.Logger
	conf     *global.ServerConfig
	database *db.DB
	codes    codes.Store
	mailer   mailer.Mailer
	clock    clockwork.Clock
	jwtKey   []byte
}

type Option func(*Data) error

// WithMailer replaces the configured mailer
func WithMailer(m mailer.Mailer) Option {
	return func(d *Data) error {
		if m == nil {
			return errors.New("mailer is nil")
		}
		d.mailer = m
		return nil
	}
}

// WithCodeStore replaces the configured code store
func WithCodeStore(s codes.Store) Option {
	return func(d *Data) error {
		if s == nil {
			return errors.New("code store is nil")
		}
		d.codes = s
		return nil
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(d *Data) error {
		if c == nil {
			return errors.New("clock is nil")
		}
		d.clock = c
		return nil
	}
}

// New creates a new Data instance
func New(conf *global.ServerConfig, logger interfaces.Logger, options ...Option) (*Data, error) {
	jwtKey := conf.SP.Get(global.ConfigJWTKey).Bytes()
	if len(jwtKey) == 0 {
		return nil, errors.New("JWT key missing from configuration")
	}

	// Get database path. If it doesn't exist, it will be created by global.Config()
	dbPath := conf.SC.Get(global.ConfigDBPath).String()
	if dbPath == "" {
		return nil, errors.New("database path missing from configuration")
	}

	d := &Data{
		logger: logger,
		conf:   conf,
		clock:  clockwork.NewRealClock(),
		jwtKey: jwtKey,
	}
	for _, op := range options {
		if err := op(d); err != nil {
			return nil, err
		}
	}

	var err error
	d.database, err = db.Open(dbPath, logger)
	if err != nil {
		return nil, err
	}

	if d.mailer == nil {
		if d.mailer, err = mailer.New(conf, logger); err != nil {
			d.database.Close()
			return nil, err
		}
	}

	if d.codes == nil {
		if d.codes, err = d.openCodes(); err != nil {
			d.database.Close()
			return nil, err
		}
	}
	return d, nil
}

// openCodes uses redis when an address is configured, otherwise the database
func (d *Data) openCodes() (codes.Store, error) {
	addr := d.conf.SC.Get(global.ConfigRedisAddr).String()
	if addr == "" {
		return codes.NewBolt(d.database.Store(), db.BucketCodes, d.clock), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.conf.SC.Get(global.ConfigHTTPTimeout).Seconds())
	defer cancel()
	s, err := codes.NewRedis(ctx, addr,
		d.conf.SC.Get(global.ConfigRedisPassword).String(),
		d.conf.SC.Get(global.ConfigRedisDB).Int())
	if err != nil {
		return nil, fmt.Errorf("unable to open code store: %w", err)
	}
	d.logger.Infof(2202, "verification codes stored in redis at %s", addr)
	return s, nil
}

// Close anything data-related that requires it.
func (d *Data) Close() {

	// If the data instance is nil, bail
	if d == nil {
		return
	}

	if d.codes != nil {
		_ = d.codes.Close()
	}

	// Close the database connection
	if d.database != nil {
		d.database.Close()
	}
}
