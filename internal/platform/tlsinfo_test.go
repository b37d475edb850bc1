package platform

import (
	"strings"
	"testing"
)

func TestGetTLSInfo(t *testing.T) {
	info := GetTLSInfo()

	if info.Library != "crypto/tls" {
		t.Errorf("Expected library crypto/tls, got %s", info.Library)
	}
	if !strings.HasPrefix(info.Runtime, "go") && !strings.HasPrefix(info.Runtime, "devel") {
		t.Errorf("Unexpected runtime string: %s", info.Runtime)
	}

	expected := []string{"TLS 1.0", "TLS 1.1", "TLS 1.2", "TLS 1.3"}
	if len(info.Versions) != len(expected) {
		t.Fatalf("Expected %d versions, got %v", len(expected), info.Versions)
	}
	for i, v := range expected {
		if info.Versions[i] != v {
			t.Errorf("Version %d: expected %s, got %s", i, v, info.Versions[i])
		}
	}

	if len(info.CipherSuites) == 0 {
		t.Error("Expected at least one secure cipher suite")
	}
}

func TestTLSInfo_Lines(t *testing.T) {
	info := TLSInfo{
		Library:      "crypto/tls",
		Runtime:      "go1.24 linux/amd64",
		Versions:     []string{"TLS 1.2", "TLS 1.3"},
		DefaultMin:   "TLS 1.2",
		DefaultMax:   "TLS 1.3",
		CipherSuites: []string{"a", "b"},
	}

	lines := info.Lines()
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	if lines[2] != "Protocols: TLS 1.2, TLS 1.3" {
		t.Errorf("Unexpected protocols line: %s", lines[2])
	}
	if lines[4] != "Cipher suites: 2 (+0 insecure, disabled)" {
		t.Errorf("Unexpected cipher line: %s", lines[4])
	}
}
