// Package config loads the startup configuration of the widget host.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The widget options found in these sources are not kept here: the host hands
// them to the settings store once at startup.
package config
