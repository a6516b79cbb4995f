// Package env loads .env files and expands ${VAR} references.
//
// Header values in the config file may reference secrets, e.g.
//
//	headers:
//	  Authorization: Bearer ${API_TOKEN}
//
// LoadAndExportDotEnv makes variables from --env-file visible to Expand
// without overriding variables already set in the process environment.
package env
