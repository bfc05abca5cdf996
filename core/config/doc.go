// Package config loads the json-diff configuration.
//
// Values come from environment variables, optionally seeded from a .env file,
// and fall back to the `default` struct tags of each section:
//   - Source: source kind (directory, bucket, table), directory, prefix, cache TTL
//   - Log: level, format and the run log file
//   - Server: HTTP port, API key and body limit
//   - Storage: S3/MinIO endpoint, credentials and bucket
//   - Database: driver and connection details
//
// Usage:
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Source.Directory)
package config
