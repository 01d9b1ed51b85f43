// Package detector identifies the host platform and where Homebrew
// lives on it.
package detector

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// SystemInfo describes the host the provisioning run targets.
type SystemInfo struct {
	OS           string // "darwin", "linux"
	Arch         string // "arm64", "amd64"
	MacOSVersion string // e.g. "14.5", darwin only
	MacOSBuild   string // e.g. "23F79", darwin only
	BrewPrefix   string // Homebrew prefix for this platform
}

// Detect gathers platform information. It never fails; fields that
// cannot be determined are left empty.
func Detect() *SystemInfo {
	info := &SystemInfo{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	if info.OS == "darwin" {
		if out, err := exec.Command("sw_vers", "-productVersion").Output(); err == nil {
			info.MacOSVersion = strings.TrimSpace(string(out))
		}
		if out, err := exec.Command("sw_vers", "-buildVersion").Output(); err == nil {
			info.MacOSBuild = strings.TrimSpace(string(out))
		}
	}

	info.BrewPrefix = brewPrefix(info.OS, info.Arch)
	return info
}

// brewPrefix returns the installed brew's real prefix when brew is on
// PATH, otherwise the platform convention.
func brewPrefix(goos, goarch string) string {
	if path, err := exec.LookPath("brew"); err == nil {
		// .../prefix/bin/brew
		if i := strings.LastIndex(path, "/bin/brew"); i > 0 {
			return path[:i]
		}
	}
	return conventionalBrewPrefix(goos, goarch)
}

// conventionalBrewPrefix returns where Homebrew installs by default:
// /opt/homebrew on Apple silicon, /usr/local on Intel Macs, the
// linuxbrew locations on Linux.
func conventionalBrewPrefix(goos, goarch string) string {
	switch goos {
	case "darwin":
		if goarch == "arm64" {
			return "/opt/homebrew"
		}
		return "/usr/local"
	case "linux":
		if _, err := os.Stat("/home/linuxbrew/.linuxbrew"); err == nil {
			return "/home/linuxbrew/.linuxbrew"
		}
		if home, err := os.UserHomeDir(); err == nil {
			return home + "/.linuxbrew"
		}
	}
	return ""
}

// Summary returns a short human-readable description.
func (s *SystemInfo) Summary() string {
	parts := []string{s.OS + "/" + s.Arch}
	if s.MacOSVersion != "" {
		parts = append(parts, "macOS "+s.MacOSVersion)
	}
	if s.BrewPrefix != "" {
		parts = append(parts, "brew prefix "+s.BrewPrefix)
	}
	return strings.Join(parts, ", ")
}
