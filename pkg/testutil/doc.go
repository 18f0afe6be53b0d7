// Package testutil provides utilities for testing redate components.
//
// Key components:
//   - NewTestFS: in-memory filesystem for fast, isolated tests
//   - Tree: declarative builder for date-prefixed directory trees
//   - NewLogger: a logger that writes into a buffer for assertions
//
// Usage guidelines:
//   - Most tests should build their tree on NewTestFS
//   - Tests that depend on real rename or symlink semantics use NewOSTree
//   - All test data should be defined inline, not in external files
package testutil
