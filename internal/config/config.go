package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "UTC"
	defaultInterval = 30 * time.Second

	configPathEnv = "FEEDGEN_CONFIG"
	baseURLEnv    = "SITE_BASE_URL"
	hubURLEnv     = "WEBSUB_HUB_URL"
	contentDirEnv = "FEEDGEN_CONTENT_DIR"
	outputDirEnv  = "FEEDGEN_OUTPUT_DIR"
	logLevelEnv   = "FEEDGEN_LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Content   ContentConfig   `yaml:"content"`
	Output    OutputConfig    `yaml:"output"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Ping      PingConfig      `yaml:"ping"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SiteConfig carries site identity used in channel metadata.
type SiteConfig struct {
	BaseURL     string       `yaml:"baseUrl"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Language    string       `yaml:"language"`
	Image       string       `yaml:"image"`
	Favicon     string       `yaml:"favicon"`
	Copyright   string       `yaml:"copyright"`
	Author      AuthorConfig `yaml:"author"`
}

// AuthorConfig identifies the feed author.
type AuthorConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Link  string `yaml:"link"`
}

// ContentConfig locates authored notes on disk and on the site.
type ContentConfig struct {
	Dir     string `yaml:"dir"`
	Section string `yaml:"section"`
	Limit   int    `yaml:"limit"`
}

// OutputConfig describes where generated files land.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	FeedsDir string `yaml:"feedsDir"`
}

// SchedulerConfig defines the watch-mode rebuild loop.
type SchedulerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Interval string `yaml:"interval"`
	Timezone string `yaml:"timezone"`

	location *time.Location `yaml:"-"`
}

// IntervalDuration resolves the interval string, falling back to the
// default when absent or invalid.
func (s SchedulerConfig) IntervalDuration() time.Duration {
	if s.Interval == "" {
		return defaultInterval
	}
	d, err := time.ParseDuration(s.Interval)
	if err != nil || d <= 0 {
		return defaultInterval
	}
	return d
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// PingConfig wires the WebSub hub to notify after successful builds.
type PingConfig struct {
	HubURL string `yaml:"hubUrl"`
}

// LoggingConfig controls build log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeedsPath returns the on-disk directory feed documents are written to.
func (c Config) FeedsPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FeedsDir)
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(baseURLEnv); v != "" {
		c.Site.BaseURL = v
	}

	if v := os.Getenv(hubURLEnv); v != "" {
		c.Ping.HubURL = v
	}

	if v := os.Getenv(contentDirEnv); v != "" {
		c.Content.Dir = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Scheduler.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Site.BaseURL != "" {
		base.Site.BaseURL = override.Site.BaseURL
	}
	if override.Site.Title != "" {
		base.Site.Title = override.Site.Title
	}
	if override.Site.Description != "" {
		base.Site.Description = override.Site.Description
	}
	if override.Site.Language != "" {
		base.Site.Language = override.Site.Language
	}
	if override.Site.Image != "" {
		base.Site.Image = override.Site.Image
	}
	if override.Site.Favicon != "" {
		base.Site.Favicon = override.Site.Favicon
	}
	if override.Site.Copyright != "" {
		base.Site.Copyright = override.Site.Copyright
	}
	if override.Site.Author.Name != "" {
		base.Site.Author.Name = override.Site.Author.Name
	}
	if override.Site.Author.Email != "" {
		base.Site.Author.Email = override.Site.Author.Email
	}
	if override.Site.Author.Link != "" {
		base.Site.Author.Link = override.Site.Author.Link
	}

	if override.Content.Dir != "" {
		base.Content.Dir = override.Content.Dir
	}
	if override.Content.Section != "" {
		base.Content.Section = override.Content.Section
	}
	if override.Content.Limit > 0 {
		base.Content.Limit = override.Content.Limit
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.FeedsDir != "" {
		base.Output.FeedsDir = override.Output.FeedsDir
	}

	if override.Scheduler.Enabled {
		base.Scheduler.Enabled = true
	}
	if override.Scheduler.Interval != "" {
		base.Scheduler.Interval = override.Scheduler.Interval
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if override.Ping.HubURL != "" {
		base.Ping.HubURL = override.Ping.HubURL
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Site: SiteConfig{
			BaseURL:     "https://www.maksugr.com",
			Title:       "maksugr",
			Description: "Notes about software engineering and life around it",
			Language:    "en",
			Image:       "https://www.maksugr.com/images/og-image.png",
			Favicon:     "https://www.maksugr.com/favicon.ico",
			Copyright:   "All rights reserved, maksugr",
			Author: AuthorConfig{
				Name:  "maksugr",
				Email: "hello@maksugr.com",
				Link:  "https://www.maksugr.com",
			},
		},
		Content: ContentConfig{Dir: "content/notes", Section: "notes", Limit: 0},
		Output:  OutputConfig{Dir: "public", FeedsDir: "feeds"},
		Scheduler: SchedulerConfig{
			Enabled:  false,
			Interval: "30s",
			Timezone: defaultTimezone,
			location: tz,
		},
		Ping:    PingConfig{HubURL: ""},
		Logging: LoggingConfig{Level: "info"},
	}
}
