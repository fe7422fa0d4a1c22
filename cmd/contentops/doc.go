// Package main hosts the contentops operator CLI.
//
// The Cobra command tree manages the local database directly: client models,
// sessions, and generated sheet links. It can also run the HTTP server in the
// foreground or drive a single caption bank provisioning run from the
// terminal. Configuration resolution lives in commandContext so subcommands
// only deal with their own flags and output.
package main
