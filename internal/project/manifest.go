// Package project reads the optional kd.toml manifest a source directory
// may carry: a [package] table naming the entry file, and a [compiler]
// table of defaults. `kdc init` writes a default manifest; no kdc command
// loads one, so these defaults do not feed the command-line flags.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded contents of a kd.toml file.
type Manifest struct {
	Package  PackageSpec  `toml:"package"`
	Compiler CompilerSpec `toml:"compiler"`
}

// PackageSpec is the [package] table.
type PackageSpec struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`
}

// CompilerSpec is the [compiler] table of defaults.
type CompilerSpec struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Color          string `toml:"color"` // "auto", "always", "never"
}

// DefaultCompilerSpec is applied for any [compiler] field left unset.
var DefaultCompilerSpec = CompilerSpec{
	MaxDiagnostics: 20,
	Color:          "auto",
}

// ManifestName is the file kdc looks for in a project directory.
const ManifestName = "kd.toml"

// ErrPackageEntryMissing indicates [package].entry was not set.
var ErrPackageEntryMissing = errors.New("missing [package].entry")

// FindManifest walks up from startDir looking for kd.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses a kd.toml manifest, filling unset [compiler] fields from
// DefaultCompilerSpec.
func Load(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if strings.TrimSpace(m.Package.Entry) == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageEntryMissing)
	}
	if !meta.IsDefined("compiler", "max_diagnostics") || m.Compiler.MaxDiagnostics <= 0 {
		m.Compiler.MaxDiagnostics = DefaultCompilerSpec.MaxDiagnostics
	}
	if !meta.IsDefined("compiler", "color") || strings.TrimSpace(m.Compiler.Color) == "" {
		m.Compiler.Color = DefaultCompilerSpec.Color
	}
	return m, nil
}

// EntryPath resolves the manifest's entry file relative to the manifest's
// own directory.
func (m Manifest) EntryPath(manifestPath string) string {
	return filepath.Join(filepath.Dir(manifestPath), filepath.FromSlash(m.Package.Entry))
}

// Default renders the kd.toml written by `kdc init` for the given package
// name.
func Default(name string) string {
	return fmt.Sprintf(`[package]
name = %q
entry = "main.kd"

[compiler]
max_diagnostics = 20
color = "auto"
`, name)
}
