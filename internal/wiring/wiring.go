// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bindle/internal/adapters/bower"
	_ "go.trai.ch/bindle/internal/adapters/config"
	_ "go.trai.ch/bindle/internal/adapters/deps"
	_ "go.trai.ch/bindle/internal/adapters/fs"
	_ "go.trai.ch/bindle/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/bindle/internal/app"
)
