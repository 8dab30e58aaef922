// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default), postgres or memory
  - DatabaseURL: sqlite path (default: roi-surveys.db) or postgres URL
  - StorageKey: key holding the survey collection (default: roiSurveys)
  - SchemaPath: optional YAML questionnaire

# CLI Flags

	-p        Server port
	-t        Database type
	-d        Database URL
	-k        Storage key
	-schema   Questionnaire file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	STORAGE_KEY   → -k
	SURVEY_SCHEMA → -schema

CLI flags take precedence over environment variables. main loads a .env
file into the environment before calling ParseFlags.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - the database type is unknown
  - postgres is selected without a DATABASE_URL
*/
package cliparse
