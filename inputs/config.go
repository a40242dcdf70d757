// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package inputs

import "bytes"

type Config struct {
	autoEOL bool
	stripCR bool
}

type Option func(c *Config) error

// WithAutoEOL converts CR+LF and lone CR to LF.
func WithAutoEOL(flag bool) Option {
	return func(c *Config) error {
		c.autoEOL = flag
		return nil
	}
}

// WithStripCR converts CR+LF to LF. It is ignored when auto-EOL is set.
func WithStripCR(flag bool) Option {
	return func(c *Config) error {
		c.stripCR = flag
		return nil
	}
}

func newConfig(options ...Option) (Config, error) {
	var cfg Config
	for _, option := range options {
		if err := option(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (c Config) normalize(data []byte) []byte {
	if c.autoEOL {
		data = bytes.ReplaceAll(data, []byte{'\r', '\n'}, []byte{'\n'})
		data = bytes.ReplaceAll(data, []byte{'\r'}, []byte{'\n'})
	} else if c.stripCR {
		data = bytes.ReplaceAll(data, []byte{'\r', '\n'}, []byte{'\n'})
	}
	return data
}
