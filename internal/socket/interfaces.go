package socket

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"github.com/ytget/ws-tester/internal/model"
)

// Socket defines the interface of the WebSocket client used by the UI.
type Socket interface {
	SetHandlers(Handlers)
	State() model.ConnState
	Open(u *url.URL, opts OpenOptions) error
	Close() error
	SendText(message string) error
	Ping(payload []byte) error
}

// OpenOptions configures a single connection attempt
type OpenOptions struct {
	// Subprotocols are offered in Sec-WebSocket-Protocol, in order
	Subprotocols []string

	// Header is sent with the opening handshake
	Header http.Header

	// HandshakeTimeout bounds the opening handshake; zero uses DefaultHandshakeTimeout
	HandshakeTimeout time.Duration

	// TLSConfig overrides the TLS settings for wss:// URLs
	TLSConfig *tls.Config
}

// Handlers receives connection events. Nil fields are skipped.
type Handlers struct {
	OnStateChanged func(model.ConnState)
	OnConnected    func(subprotocol string)
	OnDisconnected func()
	OnText         func(message string)
	OnBinary       func(payload []byte)
	OnError        func(kind model.SocketError, err error)
	OnPong         func(elapsed time.Duration, payload []byte)
}

func (h Handlers) stateChanged(state model.ConnState) {
	if h.OnStateChanged != nil {
		h.OnStateChanged(state)
	}
}

func (h Handlers) connected(subprotocol string) {
	if h.OnConnected != nil {
		h.OnConnected(subprotocol)
	}
}

func (h Handlers) disconnected() {
	if h.OnDisconnected != nil {
		h.OnDisconnected()
	}
}

func (h Handlers) text(message string) {
	if h.OnText != nil {
		h.OnText(message)
	}
}

func (h Handlers) binary(payload []byte) {
	if h.OnBinary != nil {
		h.OnBinary(payload)
	}
}

func (h Handlers) error(kind model.SocketError, err error) {
	if h.OnError != nil {
		h.OnError(kind, err)
	}
}

func (h Handlers) pong(elapsed time.Duration, payload []byte) {
	if h.OnPong != nil {
		h.OnPong(elapsed, payload)
	}
}
