package platform

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestRevealCommand(t *testing.T) {
	path := filepath.Join("/home", "user", "ws-log.yaml")

	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{OSDarwin, OpenCommand, []string{MacOSSelectFlag, path}},
		{OSWindows, ExplorerCommand, []string{WindowsSelectParam, path}},
		{OSLinux, XDGOpenCommand, []string{filepath.Dir(path)}},
	}

	for _, test := range tests {
		name, args, err := revealCommand(test.goos, path)
		if err != nil {
			t.Fatalf("revealCommand(%s) returned error: %v", test.goos, err)
		}
		if name != test.wantName {
			t.Errorf("revealCommand(%s) name = %s, expected %s", test.goos, name, test.wantName)
		}
		if !reflect.DeepEqual(args, test.wantArgs) {
			t.Errorf("revealCommand(%s) args = %v, expected %v", test.goos, args, test.wantArgs)
		}
	}
}

func TestRevealCommand_UnsupportedOS(t *testing.T) {
	if _, _, err := revealCommand("plan9", "/tmp/x"); err == nil {
		t.Error("Expected error for unsupported OS")
	}
}

func TestRevealFile_NonExistentFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent.yaml")

	if err := RevealFile(missing); err == nil {
		t.Error("Expected error for non-existent file")
	}
}
