// Package config handles configuration for the brew bootstrap.
//
// Two kinds of configuration live here: the built-in rule tables (which
// variables are allowed, promoted or owned by the tool, where brew.env files
// live, which interpreter runs the core) embedded as TOML, and the layered
// brew.env files read at startup.
package config
