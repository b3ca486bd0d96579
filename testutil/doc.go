// Package testutil provides deterministic fixtures for tests.
package testutil
