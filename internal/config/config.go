package config

import "time"

// Config holds runtime settings for the Pressroom console.
//
// Fields:
//   - APIBaseURL: base URL of the backend, e.g. "http://127.0.0.1:8080".
//   - RequestTimeout: transport-level timeout for each HTTP call. There is
//     no retry policy; a timed-out call surfaces to the user.
//   - PageSize: rows per page in list views.
//   - DownloadDir: directory (under the working directory) attachments are
//     saved to.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	PageSize       int
	DownloadDir    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.PageSize = 10
	c.DownloadDir = "download"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
