// Package config provides configuration management for the brw CLI.
//
// This package handles loading and validating the brw tool's own
// configuration file. It only controls how the CLI presents results;
// browser detection itself takes no configuration.
//
// # Configuration File
//
// The default configuration file location is $XDG_CONFIG_HOME/brw/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	format: table      # default output format: table, json, or plain
//	log_format: text   # text or json
//
// Every value can also be supplied through the environment with a BRW_
// prefix, for example BRW_FORMAT=json.
//
// # Loading Configuration
//
// Use [Load] with an empty path to search the default locations, falling
// back to defaults when no file exists:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// # Validation
//
// Validate a configuration with [Validate], which reports every problem
// rather than stopping at the first:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
