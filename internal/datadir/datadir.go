// Package datadir resolves the per-product storage root: a dot-directory
// under the user's home (or an explicit base directory) such as ~/.jobforge.
package datadir

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// products maps accepted product names to their directory names.
var products = map[string]string{
	"cv-studio": "cvstudio",
	"cvstudio":  "cvstudio",
	"aixam":     "aixam",
	"studya":    "studya",
	"jobforge":  "jobforge",
	"default":   "default",
}

// DirName returns the directory name for a product. Unknown products are
// lower-cased and used as-is.
func DirName(product string) string {
	p := strings.ToLower(product)
	if name, ok := products[p]; ok {
		return name
	}
	return p
}

// DataDir returns <base>/.<dirname> without touching the filesystem.
// An empty base means the current user's home directory.
func DataDir(base, product string) (string, error) {
	if strings.TrimSpace(product) == "" {
		return "", fmt.Errorf("product name is empty")
	}
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home dir: %w", err)
		}
		base = home
	}
	return filepath.Join(base, "."+DirName(product)), nil
}

// ConfigPath returns the product's config.json path inside its data dir.
func ConfigPath(base, product string) (string, error) {
	dir, err := DataDir(base, product)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ResolveStorageRoot returns the product's data dir, creating it (and any
// missing parents) when absent.
func ResolveStorageRoot(base, product string) (string, error) {
	dir, err := DataDir(base, product)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// IsProductInstalled reports whether the product's data dir exists.
func IsProductInstalled(base, product string) bool {
	dir, err := DataDir(base, product)
	if err != nil {
		return false
	}
	fi, err := os.Stat(dir)
	return err == nil && fi.IsDir()
}

// InstalledProducts lists the known product names whose data dir exists,
// sorted by name.
func InstalledProducts(base string) []string {
	var out []string
	for name := range products {
		if IsProductInstalled(base, name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
