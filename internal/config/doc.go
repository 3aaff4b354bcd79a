// Package config provides configuration parsing for tagz.
//
// The configuration is stored in tagz.json, usually in the working
// directory. Missing fields take their defaults, and TAGZ_PORT and
// AWS_REGION override the file.
//
// # Configuration File Structure
//
//	{
//	  "render": {
//	    "pretty": true,
//	    "indent": "  ",
//	    "chunkSize": 4096
//	  },
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "maxBodyBytes": 1048576
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "pages/",
//	    "region": "eu-west-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
