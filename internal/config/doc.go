// Package config owns everything about generator configuration that is not
// the generator itself: built-in defaults, JSON/YAML file loading, SNOWID_*
// environment overlay, and the translation of raw user input into validated
// snowflake.Options (deriving one bit width from the other, parsing epochs,
// pinning explicit machine ids).
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/snowid.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	opts, err := cfg.Options()
//	g, err := snowflake.New(opts)
package config
