// Package util contains small helpers shared across the toolkit.
package util
