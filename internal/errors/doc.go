// Package errors provides structured errors for the brood API.
//
// Every error carries a Code, a human-readable message, an optional wrapped
// cause, and optional metadata. Codes map onto HTTP statuses at the API
// boundary, so the rest of the codebase reasons about error semantics
// (invalid configuration, missing reference data, upstream unavailable)
// without knowing anything about transport.
//
// Construction:
//
//	errors.InvalidArgument("stat vector must have exactly 6 flags")
//	errors.NotFoundf("species %d not found", id)
//	errors.Wrap(err, "failed to load species")
//
// Inspection:
//
//	if errors.IsNotFound(err) { ... }
//	code := errors.GetCode(err)
//
// Multi-field validation uses the fluent builder:
//
//	vb := errors.NewValidationBuilder()
//	vb.RequiredField("parent_a_id")
//	return vb.Build() // nil when nothing was recorded
//
// A zero-probability breeding outcome is not an error. Calculators report
// impossible results as ordinary values; this package is only for genuine
// failures.
package errors
