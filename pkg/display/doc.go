// Package display renders scan listings and batch reports for the CLI.
//
// Three formats are supported: plain text, styled terminal output and JSON.
// Listings mark directories with '#', files with '-' and shortcuts with '@'.
// Failed outcomes are marked with '!'.
package display
