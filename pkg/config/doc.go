// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Every component in the repository declares its own env-tagged Config struct
// next to the code that consumes it; this package only knows how to fill them.
package config
