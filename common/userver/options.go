//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package userver

import (
	"errors"
	"time"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

// Functional options

func WithLogger(logger interfaces.Logger) func(*HServer) error {
	return func(e *HServer) error {
		e.Logger = logger
		return nil
	}
}

func WithListen(listen string) func(*HServer) error {
	return func(e *HServer) error {
		e.Listen = listen
		return nil
	}
}

func WithHTTPTimeout(t int) func(*HServer) error {
	return func(e *HServer) error {
		e.HTTPTimeout = t
		return nil
	}
}

func WithHTTPIdleTimeout(t int) func(*HServer) error {
	return func(e *HServer) error {
		e.HTTPIdleTimeout = t
		return nil
	}
}

func WithHandlerTimeout(t int) func(*HServer) error {
	return func(e *HServer) error {
		e.HandlerTimeout = t
		return nil
	}
}

func WithPenaltyBox(min, max int) func(*HServer) error {
	return func(e *HServer) error {
		e.PenaltyBoxMin = min
		e.PenaltyBoxMax = max
		return nil
	}
}

func WithMaxConcurrent(m int) func(*HServer) error {
	return func(e *HServer) error {
		e.MaxConcurrent = m
		return nil
	}
}

func WithLogFile(logfile string) func(*HServer) error {
	return func(e *HServer) error {
		e.LogFile = logfile
		return nil
	}
}

func WithDownFile(down string) func(*HServer) error {
	return func(e *HServer) error {
		e.DownFile = down
		return nil
	}
}

func WithSEid(seid uint32) func(*HServer) error {
	return func(e *HServer) error {
		e.SEid = seid
		return nil
	}
}

// WithHealthHandler enables the built-in health check at pattern
func WithHealthHandler(h bool, pattern string) func(*HServer) error {
	return func(e *HServer) error {
		e.HealthHandler = h
		if pattern != "" {
			e.HealthPattern = pattern
		}
		return nil
	}
}

func WithStrictSlash(s bool) func(*HServer) error {
	return func(e *HServer) error {
		e.StrictSlash = s
		return nil
	}
}

func WithDefaultHeaders(d bool) func(*HServer) error {
	return func(e *HServer) error {
		e.DefaultHeaders = d
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithTLS(t bool) func(*HServer) error {
	return func(e *HServer) error {
		e.TLS = t
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithTLSCertFile(certFile string) func(*HServer) error {
	return func(e *HServer) error {
		e.TLSCertFile = certFile
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithTLSKeyFile(keyFile string) func(*HServer) error {
	return func(e *HServer) error {
		e.TLSKeyFile = keyFile
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithTLSStrongCiphers(c bool) func(*HServer) error {
	return func(e *HServer) error {
		e.TLSStrongCiphers = c
		return nil
	}
}

func WithDebug(d bool) func(*HServer) error {
	return func(e *HServer) error {
		e.Debug = d
		return nil
	}
}

func WithAuthFunc(authFunc AuthFunc) func(*HServer) error {
	return func(e *HServer) error {
		e.AuthFunc = authFunc
		return nil
	}
}

// WithRateLimit allows tokens requests per interval from each source IP on
// routes marked Limited. Zero tokens disables the limit.
func WithRateLimit(tokens uint64, interval time.Duration) func(*HServer) error {
	return func(e *HServer) error {
		if tokens > 0 && interval <= 0 {
			return errors.New("rate limit interval must be positive")
		}
		e.RateTokens = tokens
		e.RateInterval = interval
		return nil
	}
}
