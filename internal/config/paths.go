package config

import (
	"os"
	"path/filepath"
)

const defaultBaseDir = ".roster"

// Paths holds resolved filesystem paths for roster data.
type Paths struct {
	Base    string // ~/.roster
	Config  string // ~/.roster/config.yaml
	Logs    string // ~/.roster/logs
	Catalog string // ~/.roster/catalog (default catalog root)
}

// ResolvePaths computes all standard paths from the home directory.
// If ROSTER_HOME is set, it overrides the default base directory.
func ResolvePaths() (Paths, error) {
	base := os.Getenv("ROSTER_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		base = filepath.Join(home, defaultBaseDir)
	}

	return Paths{
		Base:    base,
		Config:  filepath.Join(base, "config.yaml"),
		Logs:    filepath.Join(base, "logs"),
		Catalog: filepath.Join(base, "catalog"),
	}, nil
}

// EnsureDirs creates all standard directories if they don't exist.
func (p Paths) EnsureDirs() error {
	dirs := []string{p.Base, p.Logs}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o700); err != nil {
			return err
		}
	}
	return nil
}

// CatalogRoot picks the effective catalog root: explicit config value first,
// then the standard per-user location.
func (p Paths) CatalogRoot(cfg Config) string {
	if cfg.Catalog.Root != "" {
		return cfg.Catalog.Root
	}
	return p.Catalog
}
