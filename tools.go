//go:build tools

package tools

// Pins the mock generator. Run: go run github.com/vektra/mockery/v2
// (reads .mockery.yaml).
import (
	_ "github.com/vektra/mockery/v2"
)
