// Package config loads environment variables into typed structs.
//
// Parsing is delegated to github.com/caarlos0/env/v11. The first call to Load
// reads a ".env" file from the working directory when one exists
// (github.com/joho/godotenv); LoadEnv reads other files explicitly. Values
// already present in the process environment always win.
//
// Each struct type is parsed once and cached, so packages can call Load for
// their own config without coordinating:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// ResetCache clears the cache between tests.
package config
