// Package app assembles the joke service and its collaborators from the
// loaded configuration. Both binaries share it.
package app
