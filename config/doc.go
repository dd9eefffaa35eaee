// Package config loads client settings from environment variables.
//
// All variables carry the LEAGUEOPS_ prefix. Every setting has a default
// except the league identifier, which is required when a league-scoped
// tool consumes the configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := sleeper.New(cfg.ClientConfig())
package config
