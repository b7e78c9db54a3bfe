// Package types defines the Adapter interface, configuration, and standard
// errors for the keepsake favorites system.
package types
