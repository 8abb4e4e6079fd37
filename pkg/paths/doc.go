// Package paths resolves the brew installation layout.
//
// The entrypoint may be invoked through a symlink (for example
// /opt/homebrew/bin/brew -> ../Homebrew/bin/brew). The layout is derived
// from the physical location of the entrypoint:
//
//   - BrewFile: physical directory of the entrypoint + its base name
//   - Prefix: parent of that directory
//   - Repository: parent of the symlink target's directory, or Prefix
//   - Library: Repository/Library
//
// # Alternate prefix
//
// When the well-known alternate entrypoint (/usr/local/bin/brew) is a
// symlink into the same repository, and Prefix/Cellar is not itself a
// symlink, the alternate prefix (/usr/local) is used so bottles keep
// their expected prefix.
package paths
