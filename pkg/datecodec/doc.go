// Package datecodec parses and rewrites the date prefix of entry names.
//
// A date prefix is the leading DD.MM.YY token of a name, followed by a
// delimiter (usually a space):
//
//	12.05.23 folder-0      ->  2023.05.12 folder-0
//	01.12.99 report.txt    ->  2099.12.01 report.txt
//
// # Century
//
// The two digit year is always mapped to 20YY. There is no windowing, so a
// name dated 1999 comes out as 2099. This is a known limitation and is kept
// on purpose: changing it would rename existing trees differently than they
// have been renamed so far.
//
// # Idempotence
//
// The rewrite is not idempotent. A converted name starts with YYYY.MM.DD,
// which never parses as a DD.MM.YY token (the third byte is a digit, not a
// dot), so running the rewrite twice fails on the second pass instead of
// corrupting the name.
package datecodec
