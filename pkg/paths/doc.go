// Package paths normalizes directory arguments typed or pasted by the user.
//
// Input may be wrapped in quotes (file managers add them when a folder is
// dropped on a terminal), may start with ~, and may be relative. Normalize
// turns all of these into a clean absolute path.
package paths
