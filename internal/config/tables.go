package config

import "github.com/blaisecz/health-trends/internal/analytics"

// Tables returns the engine tables: the built-in ones, overlaid with
// VocabularyFile when it is set.
func (c *Config) Tables() (analytics.Tables, error) {
	if c.VocabularyFile == "" {
		return analytics.DefaultTables(), nil
	}
	return analytics.LoadTables(c.VocabularyFile)
}
