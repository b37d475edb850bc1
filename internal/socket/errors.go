package socket

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/ytget/ws-tester/internal/model"
)

var (
	// ErrEmptyURL is returned by ParseURL for blank input
	ErrEmptyURL = errors.New("url is empty")

	// ErrUnsupportedScheme is returned for URLs not starting with ws:// or wss://
	ErrUnsupportedScheme = errors.New("only ws:// and wss:// urls are allowed")

	// ErrMissingHost is returned for URLs without a host
	ErrMissingHost = errors.New("url has no host")

	// ErrAlreadyOpen is returned by Open when a connection exists or is in progress
	ErrAlreadyOpen = errors.New("socket is not in unconnected state")

	// ErrNotConnected is returned by writes while the socket is not connected
	ErrNotConnected = errors.New("socket is not connected")
)

// URLError records a rejected URL and the reason
type URLError struct {
	Input string
	Err   error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.Input, e.Err)
}

func (e *URLError) Unwrap() error {
	return e.Err
}

// Classify maps an error returned by the dialer or the connection to a
// SocketError. It returns an empty SocketError for nil.
func Classify(err error) model.SocketError {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrNotConnected) || errors.Is(err, ErrAlreadyOpen) {
		return model.ErrorOperation
	}

	if errors.Is(err, websocket.ErrBadHandshake) {
		return model.ErrorHandshakeRejected
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return model.ErrorSocketTimeout
		}
		return model.ErrorHostNotFound
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return model.ErrorConnectionRefused
	}

	if isTLSError(err) {
		return model.ErrorSslHandshakeFailed
	}

	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		switch closeErr.Code {
		case websocket.CloseProtocolError,
			websocket.CloseUnsupportedData,
			websocket.CloseInvalidFramePayloadData,
			websocket.CloseMessageTooBig,
			websocket.CloseMandatoryExtension:
			return model.ErrorProtocol
		}
		return model.ErrorRemoteHostClosed
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrorSocketTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.ErrorSocketTimeout
	}

	if errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, net.ErrClosed) {
		return model.ErrorRemoteHostClosed
	}

	return model.ErrorUnknown
}

func isTLSError(err error) bool {
	var recordErr tls.RecordHeaderError
	var alertErr tls.AlertError
	var verifyErr *tls.CertificateVerificationError
	var authorityErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError

	return errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &verifyErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr)
}

// isNormalClose reports a close frame the user does not need to hear about
func isNormalClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
