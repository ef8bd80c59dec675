// Package mock provides function-field mock implementations of the
// uninews service interfaces for testing.
package mock
