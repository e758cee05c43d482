// Package app is the application layer.
//
// The Service orchestrates the review pipeline: validation, sanitization,
// classification and persistence. It holds no per-request state; everything
// mutable lives behind the ReviewRepository.
package app
