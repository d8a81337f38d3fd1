// Package viewer holds the study session state: the topic being typed, the
// request lifecycle, and navigation through the current deck.
//
// State is a plain value. Every transition returns a new State and never
// mutates the receiver, so callers such as the terminal UI can keep a single
// copy and replace it after each event. Transitions that do not apply in the
// current phase are no-ops.
package viewer
