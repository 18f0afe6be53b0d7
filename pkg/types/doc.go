// Package types defines the data shared by the scanner, the rename engine and
// the shortcut relinker: scanned entries, per-entry outcomes and batches.
// Everything here is value-like and lives for a single scan, rename batch or
// relink batch.
package types
