// SPDX-License-Identifier: MIT
// Package: signtable/table

package table

// Option customizes Build.
type Option func(*config)

type config struct {
	minPositiveLabel  string
	replacementsLabel string
}

// WithLabels sets the two summary column labels. Empty values keep the
// defaults, so callers may override just one of them.
func WithLabels(minPositive, replacements string) Option {
	return func(c *config) {
		if minPositive != "" {
			c.minPositiveLabel = minPositive
		}
		if replacements != "" {
			c.replacementsLabel = replacements
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		minPositiveLabel:  DefaultMinPositiveLabel,
		replacementsLabel: DefaultReplacementsLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
