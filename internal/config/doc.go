// Package config loads chewol's settings.
//
// Settings are resolved in order of increasing precedence:
//
//  1. Built-in defaults (Default)
//  2. The TOML config file (Load)
//  3. CHEWOL_* environment variables (ApplyEnv)
//  4. Command line flags, applied by the caller
//
// A missing config file is not an error. Unknown keys are.
//
// Example config.toml:
//
//	log_level = "debug"
//	log_file = "/tmp/chewol.log"
//	profile_dir = "~/.config/chewol/filetypes"
//	watch_profiles = true
//	quit_times = 3
//	message_timeout = "5s"
//
//	[theme]
//	string = "#d33682"
//	comment = "#859900"
package config
