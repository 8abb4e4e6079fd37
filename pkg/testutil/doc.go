// Package testutil provides shared helpers for brewboot tests: building
// directory trees on disk or in memory and laying out fake taps.
package testutil
