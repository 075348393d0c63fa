// Package config loads the console configuration and sets up OpenTelemetry providers.
//
// Values are resolved by viper in this order: flags, environment (LIBRARY_ prefix),
// config file, defaults. .env and .env.local are loaded into the environment first.
package config
