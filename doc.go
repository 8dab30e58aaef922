// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ROI survey API server.

The server keeps a multi-step Technology Adoption ROI questionnaire: one
editing session with step-by-step validation, plus a collection of saved
surveys that can be reopened, duplicated and deleted.

# Starting the Server

With no configuration the server stores surveys in roi-surveys.db:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first; variables already
set in the environment take precedence.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - DATABASE_URL (-d): sqlite path or postgres connection string
  - STORAGE_KEY (-k): key the collection is stored under (default: roiSurveys)
  - SURVEY_SCHEMA (-schema): YAML questionnaire replacing the built-in one

# Architecture

  - schema: questionnaire definition loaded from YAML
  - validate: per-step validation rules
  - session: the editing state machine
  - repository: the saved-survey collection
  - storage: key-value stores (memory, sqlite, postgres)
  - ids: survey id generation
  - handlers, router, middleware: the HTTP surface
  - metrics: Prometheus collectors
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
