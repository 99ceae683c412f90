// Package config provides configuration loading, merging, and validation
// facilities for the room booking server.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables (a .env file in the working directory is
//     loaded first without overriding variables already set)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults, see [Defaults]
//
// The main entry point is [GetStructuredConfig].
package config
