// Package config loads news-api settings from an optional YAML file, an optional .env
// file and NEWS_API_* environment variables, and validates every section before use.
package config
