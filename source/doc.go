// Package source provides built-in bootstrap source implementations.
//
// A bootstrap source supplies the initial dataset for an editing session.
// The package includes:
//
//   - Static: Fixed, pre-decoded payload
//
// Custom sources (HTTP endpoints, fixtures on disk) can be implemented by
// satisfying the types.BootstrapSource interface.
package source
