package model

// ConnState represents the state of the WebSocket connection
type ConnState string

const (
	// StateUnconnected means no connection exists and none is being made
	StateUnconnected ConnState = "UnconnectedState"

	// StateConnecting means the opening handshake is in progress
	StateConnecting ConnState = "ConnectingState"

	// StateConnected means the connection is open and frames can be sent
	StateConnected ConnState = "ConnectedState"

	// StateClosing means a close frame was sent and the peer's reply is awaited
	StateClosing ConnState = "ClosingState"
)

// String returns the string representation of ConnState
func (cs ConnState) String() string {
	return string(cs)
}

// IsIdle returns true if a new connection may be opened
func (cs ConnState) IsIdle() bool {
	return cs == StateUnconnected
}

// IsOpen returns true if frames can be sent
func (cs ConnState) IsOpen() bool {
	return cs == StateConnected
}

// SocketError names the class of a connection failure
type SocketError string

const (
	ErrorConnectionRefused  SocketError = "ConnectionRefusedError"
	ErrorRemoteHostClosed   SocketError = "RemoteHostClosedError"
	ErrorHostNotFound       SocketError = "HostNotFoundError"
	ErrorSocketTimeout      SocketError = "SocketTimeoutError"
	ErrorSslHandshakeFailed SocketError = "SslHandshakeFailedError"
	ErrorHandshakeRejected  SocketError = "HandshakeRejectedError"
	ErrorProtocol           SocketError = "ProtocolError"
	ErrorOperation          SocketError = "OperationError"
	ErrorUnknown            SocketError = "UnknownSocketError"
)

// String returns the string representation of SocketError
func (se SocketError) String() string {
	return string(se)
}
