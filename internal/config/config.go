package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration. It is loaded once and passed
// into entry points explicitly; nothing reads it from ambient state.
type Config struct {
	Mirror    MirrorConfig    `toml:"mirror"`
	Scraping  ScrapingConfig  `toml:"scraping"`
	Storage   StorageConfig   `toml:"storage"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Images    ImagesConfig    `toml:"images"`
	Watch     WatchConfig     `toml:"watch"`

	// Followers maps a handle to its follower count, used for engagement
	// rate. Optional; rate is omitted for handles not listed.
	Followers map[string]int `toml:"followers"`
}

type MirrorConfig struct {
	// BaseURL is the Nitter instance profile pages are fetched from,
	// templated as {base_url}/{handle}.
	BaseURL string `toml:"base_url"`
}

type ScrapingConfig struct {
	PostsPerProfile int  `toml:"posts_per_profile"`
	TimeoutSeconds  int  `toml:"timeout_seconds"`
	Headless        bool `toml:"headless"`
	// FetchIntervalSeconds paces fetches across profiles so a mirror is
	// not hammered when analyzing several handles in one run.
	FetchIntervalSeconds int `toml:"fetch_interval_seconds"`
}

type StorageConfig struct {
	DBPath    string `toml:"db_path"`
	DataDir   string `toml:"data_dir"`
	StaticDir string `toml:"static_dir"`
}

type DashboardConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

type ImagesConfig struct {
	// FontPath points at a TTF used for image labels. When the file is
	// missing, images fall back to a small built-in bitmap font.
	FontPath string `toml:"font_path"`
}

type WatchConfig struct {
	// Schedule is a cron expression for periodic re-analysis.
	Schedule string   `toml:"schedule"`
	Timezone string   `toml:"timezone"`
	Handles  []string `toml:"handles"`
}

// Timeout returns the fetch timeout as a duration.
func (c ScrapingConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FetchInterval returns the inter-fetch pacing as a duration.
func (c ScrapingConfig) FetchInterval() time.Duration {
	return time.Duration(c.FetchIntervalSeconds) * time.Second
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Mirror: MirrorConfig{
			BaseURL: "https://nitter.net",
		},
		Scraping: ScrapingConfig{
			PostsPerProfile:      100,
			TimeoutSeconds:       30,
			Headless:             true,
			FetchIntervalSeconds: 2,
		},
		Storage: StorageConfig{
			DBPath:    "data/nitterlens.db",
			DataDir:   "data",
			StaticDir: "static",
		},
		Dashboard: DashboardConfig{
			ListenAddr: ":5000",
		},
		Images: ImagesConfig{
			FontPath: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
		Watch: WatchConfig{
			Schedule: "0 */6 * * *",
			Timezone: "UTC",
		},
	}
}

// DefaultPath returns the platform-appropriate config file path.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "nitterlens", "config.toml"), nil
}

// Load reads config from path. When path is empty the default location is
// used; a missing file at the default location yields Default().
func Load(path string) (*Config, error) {
	usedDefault := false
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
		usedDefault = true
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if usedDefault && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes config to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
