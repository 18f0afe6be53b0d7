// Package shortcut repairs shortcuts whose targets were renamed.
//
// A relink pass must run after the rename pass. The new target is computed
// from the old target string by rewriting its date-prefixed segments; it is
// not looked up on disk. Running the relinker before the targets have been
// renamed therefore fails with TARGET_PARENT_MISSING.
//
// Each shortcut goes through four steps and stops at the first failure:
//
//  1. resolve the current target (UNRESOLVABLE_SHORTCUT)
//  2. rewrite date-prefixed segments of the target
//  3. check that the parent of the new target exists (TARGET_PARENT_MISSING)
//  4. replace the shortcut (SHORTCUT_COMMIT_FAILURE)
//
// # Commit modes
//
// In replace mode the old shortcut is removed and a new one is created at
// the same path. If creation fails the shortcut is gone; the failure carries
// a shortcut_lost detail. Safe mode creates a temporary shortcut next to the
// old one, checks that it resolves to the new target, then swaps it into
// place, so a failed creation leaves the old shortcut untouched.
package shortcut
