// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every fatal condition of a mix run maps to one ErrorCode: configuration
// problems (ErrCodeNotFound, ErrCodeInvalidConfig), constraint references to
// unknown ingredients (ErrCodeUnknownIngredient), infeasible searches
// (ErrCodeConstraintsOverBudget, ErrCodeSearchStarved) and degenerate
// proposals (ErrCodeDegenerateProposal).
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidConfig,
//	    "failed to load ingredient",
//	    cause,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
package errors
