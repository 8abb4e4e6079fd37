// Package bootstrap prepares the environment for the interpreted core and
// hands control to it.
//
// Resolve runs once per process: it checks the preconditions, resolves the
// installation layout, loads the brew.env layers, promotes and filters the
// environment and returns an immutable Environment. Handoff replaces the
// current process with the interpreter, passing the filtered environment as
// the entire environment of the new process.
package bootstrap
