// Package config locates, loads and validates ado's own configuration file.
//
// # Resolution
//
// [Resolve] picks the configuration file from plain inputs: the --config
// flag value, the ADO_CONFIG value, the XDG_CONFIG_HOME value and the home
// directory. It never reads the environment itself; [ParseEnv] does that once
// at the CLI boundary. The default search order is:
//
//	$XDG_CONFIG_HOME/ado/config.yaml   (or ~/.config/ado/config.yaml)
//	~/.ado/config.yaml
//
// An explicit or environment path always wins and is reported as the first
// element of the search order without being checked for existence. Otherwise
// the first default that exists is used. Finding nothing is not an error.
//
// # Configuration File
//
//	version: 1
//
// Use [Validate] for a line-aware report of problems in a file and [Load] to
// read it through Viper.
package config
