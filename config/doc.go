// Package config loads command configuration from files, .env files and the
// environment.
//
// It uses Viper to read YAML, JSON or TOML files (by extension) and godotenv
// to load .env files. Environment variables override file values: with the
// default LTL prefix, LTL_LOGGING_LEVEL sets logging.level and
// LTL_RECIPE_RANGE_END sets recipe.range.end.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.LoadConfig("ltl", &cfg, config.WithConfigFile("recipe.yml"))
package config
