// Package cli implements the grazer command line.
//
// Every command builds an api.Client from the config file and prints either
// a terminal rendering or, with --json, the raw records.
package cli
