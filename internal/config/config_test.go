package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/playpen/internal/api"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if cfg.ElmVersion != (api.Version{Major: 0, Minor: 18, Patch: 0}) {
		t.Fatalf("ElmVersion = %v, want 0.18.0", cfg.ElmVersion)
	}
	if cfg.RequestsPerSecond != defaultRequestsPerSecond {
		t.Fatalf("RequestsPerSecond = %v, want %v", cfg.RequestsPerSecond, defaultRequestsPerSecond)
	}
	if cfg.HeaderHeight != defaultHeaderHeight || cfg.SidebarWidth != defaultSidebarWidth {
		t.Fatalf("layout = %d/%d, want %d/%d", cfg.HeaderHeight, cfg.SidebarWidth, defaultHeaderHeight, defaultSidebarWidth)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if !strings.HasPrefix(cfg.CacheDir, home) {
		t.Fatalf("CacheDir = %q, want it under HOME %q", cfg.CacheDir, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  https://play.example.com  "
elm_version = " 0.19.1 "
log_file = "  ~/logs/playpen.log  "
cache_dir = "/tmp/elm-stuff"
requests_per_second = 2.5
header_height = 5
sidebar_width = 40
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "https://play.example.com" {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, "https://play.example.com")
	}
	if cfg.ElmVersion.String() != "0.19.1" {
		t.Fatalf("ElmVersion = %v, want 0.19.1", cfg.ElmVersion)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "playpen.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.CacheDir != "/tmp/elm-stuff" {
		t.Fatalf("CacheDir = %q, want /tmp/elm-stuff", cfg.CacheDir)
	}
	if cfg.RequestsPerSecond != 2.5 {
		t.Fatalf("RequestsPerSecond = %v, want 2.5", cfg.RequestsPerSecond)
	}
	if cfg.HeaderHeight != 5 || cfg.SidebarWidth != 40 {
		t.Fatalf("layout = %d/%d, want 5/40", cfg.HeaderHeight, cfg.SidebarWidth)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
log_file = ""
requests_per_second = -1
header_height = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_BadElmVersionFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`elm_version = "0.19"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "elm_version") {
		t.Fatalf("Load error = %v, want elm_version error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestEncode_LoadsBackUnchanged(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.APIURL = "https://play.example.com"
	cfg.ElmVersion = api.Version{Major: 0, Minor: 19, Patch: 1}
	cfg.LogFile = filepath.Join(dir, "playpen.log")
	cfg.CacheDir = filepath.Join(dir, "elm-stuff")
	cfg.SidebarWidth = 40

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(string(data), "elm_version") || !strings.Contains(string(data), "0.19.1") {
		t.Fatalf("encoded config missing elm_version:\n%s", data)
	}

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load = %+v, want %+v", got, cfg)
	}
}

func TestPath_DefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Path("")
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	if want := filepath.Join(home, ".config", "playpen", "config.toml"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}

func TestLoad_RejectsUnsafeCacheDir(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name     string
		home     string
		cacheDir string
	}{
		{name: "home directory", home: filepath.Join(base, "elm-stuff"), cacheDir: "~"},
		{name: "filesystem root", home: base, cacheDir: "/"},
		{name: "ancestor of home", home: filepath.Join(base, "elm-stuff", "user"), cacheDir: filepath.Join(base, "elm-stuff")},
		{name: "parent of home via tilde", home: filepath.Join(base, "user"), cacheDir: "~/.."},
		{name: "wrong directory name", home: base, cacheDir: "~/.cache/playpen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", tt.home)
			path := filepath.Join(t.TempDir(), "config.toml")
			data := fmt.Sprintf("cache_dir = %q\n", tt.cacheDir)
			if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			cfg, err := Load(path)
			if err == nil {
				t.Fatalf("Load accepted cache_dir %q (resolved %q)", tt.cacheDir, cfg.CacheDir)
			}
			if !strings.Contains(err.Error(), "cache_dir") {
				t.Fatalf("Load error = %q, want it to mention cache_dir", err.Error())
			}
		})
	}
}

func TestLoad_AcceptsCacheDirUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`cache_dir = "~/.cache/playpen/elm-stuff"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, ".cache", "playpen", "elm-stuff"); cfg.CacheDir != want {
		t.Fatalf("CacheDir = %q, want %q", cfg.CacheDir, want)
	}
}

func TestCheckCacheDir_RelativePath(t *testing.T) {
	if err := CheckCacheDir("elm-stuff"); err == nil {
		t.Fatalf("CheckCacheDir accepted a relative path")
	}
}
