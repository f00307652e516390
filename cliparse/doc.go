// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and environment
variables.

# Configuration Sources

Configuration is loaded in order of precedence:

 1. Command-line flags (highest priority)
 2. Environment variables
 3. A .env file, loaded into the environment without overriding it
 4. Default values (lowest priority)

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
	    log.Fatal(err)
	}

# Flags and Environment Variables

	Flag        Env Variable    Description
	----        ------------    -----------
	-p          PORT            Server port (default: 3318)
	-e          API_ENDPOINT    Character API base address
	-d          DATABASE_URL    Action journal database
	-t          DATABASE_TYPE   Database type: sqlite or postgres
	-env-file   ENV_FILE        Dotenv file (default: .env)

# Defaults

API_ENDPOINT falls back to endpoint.Default, DATABASE_URL to a local
sqlite file, and DATABASE_TYPE to sqlite. A missing .env file is not an
error.
*/
package cliparse
