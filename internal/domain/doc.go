// Package domain defines the core model types and the interfaces between layers.
//
// It has no dependencies on adapters or frameworks. Repositories and the
// application service are expressed as interfaces here so that handlers and
// tests depend on contracts, not implementations.
package domain
