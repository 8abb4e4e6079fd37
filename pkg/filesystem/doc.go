// Package filesystem provides the filesystem handles used by brewboot.
//
// Everything that reads configuration layers, cache files or tap trees goes
// through an afero.Fs so tests can run against an in-memory tree.
package filesystem
