// Package config loads the two configuration files of the CLI: the user
// settings (API token and active team) stored in the ymir configuration
// directory, and the ymir.yml project file of the working directory.
//
// Environment variables override the stored settings so the CLI can run
// in CI without a settings file.
package config
