// Package config provides configuration management for the gear auditor.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Files: catalog, inventory directory, default character and gearset paths
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the audit history
//   - Storage: S3/MinIO credentials and bucket for remote backups
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Files.Gearset)
package config
