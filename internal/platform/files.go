package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// RevealFile shows an exported file in the system file manager
func RevealFile(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	name, args, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Run(); err == nil || runtime.GOOS != OSLinux {
		return err
	}

	// xdg-open failed; try the usual file managers
	dir := filepath.Dir(absPath)
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}

// revealCommand returns the command that reveals absPath on goos.
// Linux has no standard way to select a file, so the parent directory is opened.
func revealCommand(goos, absPath string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{MacOSSelectFlag, absPath}, nil
	case OSWindows:
		return ExplorerCommand, []string{WindowsSelectParam, absPath}, nil
	case OSLinux:
		return XDGOpenCommand, []string{filepath.Dir(absPath)}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
