// Package config provides configuration management for the alternatives service.
//
// It uses Viper to read environment variables, after loading an optional .env file.
// Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, upload limit, template location
//   - Log: logging level and format
//   - Storage: S3/MinIO credentials and bucket
//   - Database: optional MySQL inventory database
//   - Reference: which source the reference inventory is read from
//
// Keys map to environment variables with dots replaced by underscores,
// e.g. reference.kind is REFERENCE_KIND.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reference.Kind)
package config
