/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package credentials opens the session store selected in the configuration.
// Tokens are persisted so that a login survives between invocations.
package credentials

import (
	"fmt"
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/cli/global"
	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
	"github.com/UnifyEM/deadlink-watchdog/common/session"
)

// Credentials is an open session plus anything that must be released with it
type Credentials struct {
	Session *session.Session
	Jar     http.CookieJar // set only for the cookie store
	bolt    *session.BoltStore
}

// Open returns the session for serverURL using the configured store
func Open(conf *global.ClientConfig, serverURL string, logger interfaces.Logger) (*Credentials, error) {
	var err error
	var store session.Store
	c := &Credentials{}

	kind := conf.CC.Get(global.ConfigSessionStore).String()
	switch kind {
	case global.StoreMemory:
		store = session.NewMemoryStore()

	case global.StoreFile, global.StoreCookie:
		c.bolt, err = session.NewBoltStore(conf.SessionFile(), logger)
		if err != nil {
			return nil, err
		}
		store = c.bolt

		if kind == global.StoreCookie {
			cs, err := session.NewCookieStore(serverURL,
				session.WithMaxAge(conf.CC.Get(global.ConfigCookieAccess).Int(), conf.CC.Get(global.ConfigCookieRefresh).Int()),
				session.WithPersistence(c.bolt))
			if err != nil {
				c.Close()
				return nil, err
			}
			c.Jar = cs.Jar()
			store = cs
		}

	default:
		return nil, fmt.Errorf("unknown session store %q (expected %s, %s or %s)",
			kind, global.StoreFile, global.StoreCookie, global.StoreMemory)
	}

	c.Session, err = session.New(store, logger)
	if err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the session file, if one is open
func (c *Credentials) Close() {
	if c.bolt != nil {
		c.bolt.Close()
		c.bolt = nil
	}
}
