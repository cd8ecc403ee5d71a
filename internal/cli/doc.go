// Package cli defines the playpen command line.
//
//	playpen [revision] [--config path] [--prefs path] [--poll seconds]
//	playpen config [--config path]
//
// The root command opens the editor on a new project, or on a saved
// revision when one is given. The config subcommand prints the effective
// configuration in config.toml form, which is a convenient starting point
// for a new config file.
package cli
