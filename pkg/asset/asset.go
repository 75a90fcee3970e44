// Package asset resolves the filesystem locations the host depends on:
// the system asset directory, the user directory, the plugin manifest
// bundle, and the template patch. Resolution follows an ordered fallback
// policy and never fails; an unresolved location is an empty string and
// the host runs with degraded functionality.
package asset

import (
	"os"
	"path/filepath"
	"runtime"
)

// Conventional names under the resolved system directory.
const (
	// BundleDirName is the subfolder holding plugin manifest files.
	BundleDirName = "PluginManifests"

	// TemplateFileName is the default template patch file.
	TemplateFileName = "template.vcv"

	// resourceDirName is the subfolder whose presence marks a usable
	// source-directory override.
	resourceDirName = "res"
)

// DefaultInstallPrefix is the install prefix used on Unix-like platforms
// when no override is configured.
const DefaultInstallPrefix = "/usr/local"

// Paths holds the resolved runtime locations. Empty string means
// unresolved. Resolved once at startup and cleared at shutdown.
type Paths struct {
	// SystemDir is the read-only asset directory of the installation.
	SystemDir string

	// UserDir is the directory for user data. In this design it is
	// always assigned equal to SystemDir, so it is never set while
	// SystemDir is empty.
	UserDir string

	// BundlePath is the plugin manifest directory under SystemDir.
	BundlePath string

	// TemplatePath is the template patch loaded at startup.
	TemplatePath string
}

// Clear resets all fields to the unresolved sentinel.
func (p *Paths) Clear() {
	p.SystemDir = ""
	p.UserDir = ""
	p.BundlePath = ""
	p.TemplatePath = ""
}

// Resolver determines runtime paths for a given platform configuration.
// The zero value resolves for the current platform with the default
// install prefix; fields exist so tests can pin the platform and
// environment.
type Resolver struct {
	// SourceDir is the build/development source-directory override.
	// When it contains the conventional resource subfolder it wins over
	// every platform default.
	SourceDir string

	// InstallPrefix overrides the Unix install prefix. Empty means
	// DefaultInstallPrefix.
	InstallPrefix string

	// Platform overrides runtime.GOOS. Used by tests.
	Platform string

	// LookupEnv overrides os.LookupEnv. Used by tests.
	LookupEnv func(string) (string, bool)
}

// Resolve produces the runtime paths under the ordered fallback policy.
// It has no side effects and never fails; callers inspect SystemDir and
// report an empty or missing directory as a configuration warning.
func (r Resolver) Resolve() Paths {
	var p Paths

	// A source-directory override with an intact resource subfolder
	// wins over every platform default.
	if r.SourceDir != "" && exists(filepath.Join(r.SourceDir, resourceDirName)) {
		p.SystemDir = r.SourceDir
		if tmpl := filepath.Join(r.SourceDir, TemplateFileName); exists(tmpl) {
			p.TemplatePath = tmpl
		}
	} else {
		p.SystemDir = r.platformSystemDir()
	}

	if p.SystemDir != "" {
		p.BundlePath = filepath.Join(p.SystemDir, BundleDirName)
		if p.TemplatePath == "" {
			p.TemplatePath = filepath.Join(p.SystemDir, TemplateFileName)
		}
		p.UserDir = p.SystemDir
	}

	return p
}

// platformSystemDir returns the default install location for the platform.
func (r Resolver) platformSystemDir() string {
	platform := r.Platform
	if platform == "" {
		platform = runtime.GOOS
	}

	switch platform {
	case "darwin":
		return "/Library/Application Support/Cardinal"

	case "windows":
		lookup := r.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		// Only usable when the OS query succeeds with a non-empty path.
		if common, ok := lookup("CommonProgramFiles"); ok && common != "" {
			return filepath.Join(common, "Cardinal")
		}
		return ""

	default:
		prefix := r.InstallPrefix
		if prefix == "" {
			prefix = DefaultInstallPrefix
		}
		return filepath.Join(prefix, "share", "cardinal")
	}
}

// Exists reports whether a path exists on disk, file or directory alike.
func Exists(path string) bool {
	return exists(path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
