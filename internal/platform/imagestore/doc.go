// Package imagestore writes generated joke illustrations to the local
// filesystem and removes them again on request.
package imagestore
