// Package config loads runtime configuration for the wickit record store.
//
// Sources & precedence
//
//  1. Built-in defaults (env-default tags, mirrored by (*Config).LoadDefaults).
//  2. Optional YAML file passed to Load.
//  3. Environment variables, which override earlier values.
//
// # YAML schema
//
//	product: jobforge
//	data_home: /home/me
//	db_file: jobforge.db
//	busy_timeout: 5s
//	log:
//	  level: info
//	  format: text
//
// Environment variables
//
//	WICKIT_PRODUCT, WICKIT_DATA_HOME, WICKIT_DB_FILE, WICKIT_BUSY_TIMEOUT,
//	LOG_LEVEL, LOG_FORMAT
//
// An empty data_home means the current user's home directory.
package config
