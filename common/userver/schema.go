/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"net/http"
	"time"

	"github.com/sethvargo/go-limiter"

	"github.com/UnifyEM/deadlink-watchdog/common/interfaces"
)

type HServer struct {
	Headers          Headers
	Routes           Routes
	Listen           string
	HTTPTimeout      int
	HTTPIdleTimeout  int
	HandlerTimeout   int
	MaxConcurrent    int
	PenaltyBoxMin    int
	PenaltyBoxMax    int
	LogFile          string // Optional, defaults to stdout
	DownFile         string
	HealthHandler    bool
	HealthPattern    string
	StrictSlash      bool
	DefaultHeaders   bool
	TLS              bool
	TLSCertFile      string
	TLSKeyFile       string
	TLSStrongCiphers bool
	Debug            bool
	RateTokens       uint64        // Requests allowed per RateInterval on limited routes, 0 disables
	RateInterval     time.Duration // Window for RateTokens
	AuthFunc         AuthFunc      // Used for not found and method not allowed handlers
	server           *http.Server
	limiter          limiter.Store
	Logger           interfaces.Logger
	SEid             uint32 // Starting event ID for logging
}

// AuthFunc is used as a callback to authenticate requests
// It returns a bool to indicate success or failure
// In the event of a failure, []byte may contain a message to send
// The "any" type is passed through to the handler in the context
// and can be retrieved with AuthDetails
type AuthFunc func(req *http.Request) (bool, []byte, any)

// Route defines a route for the HTTP router. It can include a
// standard handler that returns a http.Handler or a JHandler
// that returns a JResponse structure. Limited routes share the
// per source IP rate limit.
type Route struct {
	Name     string
	Methods  []string
	Pattern  string
	Handler  http.Handler
	JHandler JHandler
	AuthFunc AuthFunc
	Limited  bool
}

type Routes []Route

type Header struct {
	Key   string
	Value string
}

type Headers []Header

// Response is the envelope for responses generated by the server itself
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JHandler is the type of the function to be wrapped
type JHandler func(req *http.Request) JResponse

// JResponse is the structure returned by the wrapped function.
// Cookies are set on the response before the body is written.
type JResponse struct {
	HTTPCode int
	JSONData any
	Cookies  []*http.Cookie
}
