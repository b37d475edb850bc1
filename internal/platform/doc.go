package platform

// Package platform contains OS and runtime integration: revealing exported
// log files in the system file manager and describing the TLS stack that
// wss:// connections run on.
