// Package error provides structured error handling for the SRO engine.
//
// Package: error
// Title: SRO Error Handling Framework
// Description: This package implements a structured error type carrying a code,
//              a severity, details and an optional cause. Validation rejections,
//              intake failures and store errors all surface as *Error somewhere
//              in their chain so that callers can branch on codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: SRO code set, chain-aware HasCode/GetCode
//
// Usage:
//
//	import mdwerror "github.com/msto63/sro/foundation/core/error"
//
//	err := mdwerror.New("report not found").
//		WithCode(mdwerror.CodeNotFound).
//		WithDetail("id", id)
//
//	wrapped := mdwerror.Wrap(err, "failed to show report").
//		WithOperation("reports.show")
//
//	if mdwerror.HasCode(wrapped, mdwerror.CodeNotFound) {
//		// ...
//	}
package error
