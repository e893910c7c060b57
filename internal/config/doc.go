// Package config loads vroute project configuration.
//
// The configuration lives in vroute.json or vroute.toml at the project
// root. Environment variables prefixed with VROUTE_ override file values.
//
// # Configuration File Structure
//
//	{
//	  "name": "demo",
//	  "mode": "history",
//	  "base": "/app",
//	  "canonicalize": true,
//	  "activeClass": "active",
//	  "routes": [
//	    {"path": "/", "name": "Home", "component": "home"},
//	    {"path": "/about", "name": "About", "title": "About", "body": "Hello."},
//	    {"path": "*", "component": "not-found"}
//	  ],
//	  "dev": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "assets": "s3://my-bucket/site",
//	    "metrics": true,
//	    "tracing": false,
//	    "logLevel": "info"
//	  }
//	}
//
// # Environment
//
//	VROUTE_MODE, VROUTE_BASE, VROUTE_HOST, VROUTE_PORT,
//	VROUTE_ASSETS, VROUTE_METRICS, VROUTE_TRACING, VROUTE_LOG_LEVEL
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Mode:", cfg.Mode)
package config
