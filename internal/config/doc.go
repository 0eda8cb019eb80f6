// Package config provides configuration loading, merging, and validation
// facilities for the go-chat-seal library.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. JSON config file (path resolved from source 1)
//  3. Built-in defaults
//
// The main entry point is [GetConfig]. Host applications that manage their
// own configuration can also construct a [Config] literal directly and call
// [Config.Validate].
package config
