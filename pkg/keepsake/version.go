// Package keepsake exposes module-level metadata.
package keepsake

// Version is the keepsake release version.
const Version = "0.1.0"
