// Package config defines the controller settings and provides helpers to load,
// validate and save them in YAML format.
//
// Values from the YAML file can be overridden by GREENHOUSE_* environment
// variables, optionally supplied through a .env file.
package config
