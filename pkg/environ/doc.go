// Package environ models the process environment as an immutable snapshot
// and implements the promotion and filtering rules applied to it before the
// interpreted core is started.
//
// Nothing in this package reads the live process environment. Callers take
// a snapshot once (FromPairs(os.Environ())) and every transformation returns
// a new Env.
package environ
