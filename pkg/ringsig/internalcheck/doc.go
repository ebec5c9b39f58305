// Package internalcheck holds static policy tests for the protocol packages.
//
// The tests load the core packages with go/packages and reject two patterns
// that are easy to introduce by accident in cryptographic code: direct ==
// comparison of byte slices (use crypto/subtle) and hex format verbs that
// would dump key material into logs or error strings.
//
// Nothing here is importable; the package exists only for its tests.
package internalcheck
