package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "plugui"

// Bases are the file base names searched for configuration, in order.
var Bases = []string{"config", "inspect", "watch"}

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultNamedConfigPath returns the config file path in the default
// directory for a base name (e.g. "inspect") and format.
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+Ext(format)), nil
}

// Ext returns the file extension used for format, defaulting to json.
func Ext(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// Candidates holds config file candidates per loader.
type Candidates struct {
	JSON, YAML, TOML []string
}

func (c *Candidates) add(p string) {
	switch filepath.Ext(p) {
	case ".yaml", ".yml":
		c.YAML = append(c.YAML, p)
	case ".toml":
		c.TOML = append(c.TOML, p)
	default:
		c.JSON = append(c.JSON, p)
	}
}

func (c *Candidates) addDir(dir string, bases ...string) {
	for _, base := range bases {
		for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
			c.add(filepath.Join(dir, base+ext))
		}
	}
}

// ConfigCandidatePaths lists config files to try: userPath first, then the
// working directory, the user config directory and /etc/plugui on unix.
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates
	if userPath != "" {
		c.add(userPath)
	}
	if wd, err := os.Getwd(); err == nil {
		c.addDir(wd, append([]string{appName}, Bases...)...)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		c.addDir(dir, Bases...)
	}
	if runtime.GOOS != "windows" {
		c.addDir(filepath.Join("/etc", appName), Bases...)
	}
	return c
}
