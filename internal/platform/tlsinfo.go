package platform

import (
	"crypto/tls"
	"fmt"
	"runtime"
	"strings"
)

// supportedVersions are the protocol versions crypto/tls can negotiate
var supportedVersions = []uint16{
	tls.VersionTLS10,
	tls.VersionTLS11,
	tls.VersionTLS12,
	tls.VersionTLS13,
}

// TLSInfo describes the TLS stack used for wss:// connections
type TLSInfo struct {
	Library        string
	Runtime        string
	Versions       []string
	DefaultMin     string
	DefaultMax     string
	CipherSuites   []string
	InsecureSuites []string
}

// GetTLSInfo collects version and capability strings of the TLS stack
func GetTLSInfo() TLSInfo {
	info := TLSInfo{
		Library:    "crypto/tls",
		Runtime:    fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
		DefaultMin: tls.VersionName(tls.VersionTLS12),
		DefaultMax: tls.VersionName(tls.VersionTLS13),
	}

	for _, v := range supportedVersions {
		info.Versions = append(info.Versions, tls.VersionName(v))
	}
	for _, cs := range tls.CipherSuites() {
		info.CipherSuites = append(info.CipherSuites, cs.Name)
	}
	for _, cs := range tls.InsecureCipherSuites() {
		info.InsecureSuites = append(info.InsecureSuites, cs.Name)
	}
	return info
}

// Lines formats the information for display, one fact per line
func (i TLSInfo) Lines() []string {
	return []string{
		"Library: " + i.Library,
		"Runtime: " + i.Runtime,
		"Protocols: " + strings.Join(i.Versions, ", "),
		fmt.Sprintf("Client default: %s - %s", i.DefaultMin, i.DefaultMax),
		fmt.Sprintf("Cipher suites: %d (+%d insecure, disabled)", len(i.CipherSuites), len(i.InsecureSuites)),
	}
}
