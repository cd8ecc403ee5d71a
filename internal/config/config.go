package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/playpen/internal/api"
)

// Config captures everything playpen reads from config.toml.
type Config struct {
	APIURL            string
	ElmVersion        api.Version
	LogFile           string
	CacheDir          string
	RequestsPerSecond float64
	HeaderHeight      int
	SidebarWidth      int
}

const (
	defaultConfigPath        = "~/.config/playpen/config.toml"
	defaultAPIURL            = "http://127.0.0.1:1337"
	defaultElmVersion        = "0.18.0"
	defaultLogFile           = "~/.local/share/playpen/playpen.log"
	defaultCacheDir          = "~/.cache/playpen/elm-stuff"
	defaultRequestsPerSecond = 5
	defaultHeaderHeight      = 3
	defaultSidebarWidth      = 28
)

// fileConfig is the on-disk shape of config.toml.
type fileConfig struct {
	APIURL            string  `toml:"api_url"`
	ElmVersion        string  `toml:"elm_version"`
	LogFile           string  `toml:"log_file"`
	CacheDir          string  `toml:"cache_dir"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	HeaderHeight      int     `toml:"header_height"`
	SidebarWidth      int     `toml:"sidebar_width"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	version, _ := api.ParseVersion(defaultElmVersion)
	return Config{
		APIURL:            defaultAPIURL,
		ElmVersion:        version,
		LogFile:           mustExpand(defaultLogFile),
		CacheDir:          mustExpand(defaultCacheDir),
		RequestsPerSecond: defaultRequestsPerSecond,
		HeaderHeight:      defaultHeaderHeight,
		SidebarWidth:      defaultSidebarWidth,
	}
}

// Load locates and parses the playpen config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.ElmVersion); v != "" {
		version, err := api.ParseVersion(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: elm_version: %w", err)
		}
		cfg.ElmVersion = version
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.CacheDir); v != "" {
		cfg.CacheDir = mustExpand(v)
		if err := CheckCacheDir(cfg.CacheDir); err != nil {
			return Config{}, fmt.Errorf("parse config: cache_dir: %w", err)
		}
	}
	if raw.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = raw.RequestsPerSecond
	}
	if raw.HeaderHeight > 0 {
		cfg.HeaderHeight = raw.HeaderHeight
	}
	if raw.SidebarWidth > 0 {
		cfg.SidebarWidth = raw.SidebarWidth
	}

	return cfg, nil
}

// cacheDirName is the required last element of cache_dir. Clearing the
// cache removes the whole directory.
const cacheDirName = "elm-stuff"

// CheckCacheDir reports whether dir is safe to remove recursively: an
// absolute path ending in elm-stuff that is neither the filesystem root nor
// the home directory or one of its ancestors.
func CheckCacheDir(dir string) error {
	if !filepath.IsAbs(dir) {
		return fmt.Errorf("%q is not an absolute path", dir)
	}
	clean := filepath.Clean(dir)
	if filepath.Dir(clean) == clean {
		return fmt.Errorf("%q is the filesystem root", dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		home = filepath.Clean(home)
		if clean == home || strings.HasPrefix(home, clean+string(filepath.Separator)) {
			return fmt.Errorf("%q contains the home directory", dir)
		}
	}
	if filepath.Base(clean) != cacheDirName {
		return fmt.Errorf("%q must end in %s", dir, cacheDirName)
	}
	return nil
}

// Path returns the config file Load reads for path.
func Path(path string) (string, error) {
	return resolvePath(path)
}

// Encode renders c in the config.toml format.
func (c Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(fileConfig{
		APIURL:            c.APIURL,
		ElmVersion:        c.ElmVersion.String(),
		LogFile:           c.LogFile,
		CacheDir:          c.CacheDir,
		RequestsPerSecond: c.RequestsPerSecond,
		HeaderHeight:      c.HeaderHeight,
		SidebarWidth:      c.SidebarWidth,
	})
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
