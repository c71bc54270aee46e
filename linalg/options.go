package linalg

// EvalConfig controls how an expression is evaluated.
type EvalConfig struct {
	// GenericPath forces the element walk even for specialized categories.
	GenericPath bool

	// NoAlias promises that the destination does not overlap any operand,
	// which skips the overlap check and scratch copies.
	NoAlias bool
}

// EvalOption mutates an EvalConfig.
type EvalOption func(*EvalConfig)

// DefaultEvalConfig returns kernel dispatch with alias checking.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{}
}

// WithGenericPath disables kernel dispatch.
func WithGenericPath() EvalOption {
	return func(cfg *EvalConfig) {
		cfg.GenericPath = true
	}
}

// WithNoAlias declares that the destination shares no storage with the
// expression. Results are undefined if it does.
func WithNoAlias() EvalOption {
	return func(cfg *EvalConfig) {
		cfg.NoAlias = true
	}
}

// ApplyEvalOptions applies zero or more options to the default config.
func ApplyEvalOptions(opts ...EvalOption) EvalConfig {
	cfg := DefaultEvalConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
