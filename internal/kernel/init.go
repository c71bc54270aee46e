package kernel

// Importing the implementation packages triggers their init() functions,
// which register them with the global registry.

import (
	// Pure Go reference implementation.
	_ "github.com/cwbudde/algo-linalg/internal/kernel/arch/generic"

	// gonum BLAS backed implementation.
	_ "github.com/cwbudde/algo-linalg/internal/kernel/arch/gonum"
)
