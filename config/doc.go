// Package config loads declarative logger settings from YAML files and
// TERRIER_* environment variables.
//
//	level: warn
//	profile: reduced
//	separator: " > "
//	time: production
//	color: never
//
// Settings only describe choices; logger.FromSettings turns them into a
// Logger. File and environment sources combine with Merge, later
// sources winning:
//
//	s, err := config.Load("terrier.yaml")
//	s = s.Merge(config.FromEnv(os.LookupEnv))
//
// logger.FromFile does both steps.
package config
