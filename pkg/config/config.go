// Package config defines the configuration types for mdtidy. These are pure
// data structures; loading and merging live in internal/configloader.
package config

// UploadConfig controls the image upload rewrite.
type UploadConfig struct {
	// Enabled switches the upload pass on.
	Enabled bool `yaml:"enabled"`

	// Bucket is the COS bucket name, including the APPID suffix.
	Bucket string `yaml:"bucket"`

	// Region is the COS region, e.g. "ap-guangzhou".
	Region string `yaml:"region"`

	// CustomDomain, when set, is the CDN domain substituted into uploaded
	// URLs. URLs already on this domain are never re-uploaded.
	CustomDomain string `yaml:"custom_domain"`

	// SecretID and SecretKey authenticate against COS. Usually supplied via
	// the MDTIDY_SECRET_ID / MDTIDY_SECRET_KEY environment variables rather
	// than the config file.
	SecretID  string `yaml:"secret_id"`
	SecretKey string `yaml:"secret_key"`
}

// Config is the root configuration structure.
type Config struct {
	// HeadingStartLevel shifts all headings so the shallowest one sits at
	// this level. Zero disables the shift.
	HeadingStartLevel int `yaml:"heading_start_level"`

	// NumberHeadings enables dotted heading numbering.
	NumberHeadings bool `yaml:"number_headings"`

	// TidyLists enables list marker spacing cleanup.
	TidyLists bool `yaml:"tidy_lists"`

	// TagFences enables language tagging of unlabeled code fences.
	TagFences bool `yaml:"tag_fences"`

	// MaxBlankLines is the maximum run of blank lines the printer keeps.
	MaxBlankLines int `yaml:"max_blank_lines"`

	// FinalNewline makes the printer enforce a trailing newline.
	FinalNewline bool `yaml:"final_newline"`

	// DisableKey is the frontmatter key that, when set to false, exempts a
	// document from formatting.
	DisableKey string `yaml:"disable_key"`

	// Ignore contains path patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Upload configures the image upload rewrite.
	Upload UploadConfig `yaml:"upload"`

	// CLI-level options, never persisted.

	// Write applies changes to files in place.
	Write bool `yaml:"-"`

	// Check exits non-zero when files would change, without writing.
	Check bool `yaml:"-"`

	// Diff prints unified diffs instead of rewriting.
	Diff bool `yaml:"-"`
}

// Default returns the configuration used when no file or flag overrides it.
func Default() *Config {
	return &Config{
		TidyLists:     true,
		MaxBlankLines: 1,
		FinalNewline:  true,
		DisableKey:    "mdtidy",
	}
}
