package socket

// Package socket wraps a single gorilla/websocket client connection behind a
// callback API. The UI opens, closes and writes through Socket; connection
// events come back through Handlers, delivered in order from one dispatcher
// goroutine.
