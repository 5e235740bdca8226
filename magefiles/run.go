//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Opens the demo window with config/demo.yaml.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	_, err := executeCmd("go", withArgs("run", "./cmd/demo", "-config", "config/demo.yaml"), withStream())
	return err
}

// Runs 300 frames without a window and the remote control enabled.
func (Run) Headless() error {
	_, err := executeCmd("go",
		withArgs("run", "./cmd/demo", "-headless", "-frames", "300"),
		withEnv("DEMO_REMOTE_ENABLED=true", "DEMO_LOG_LEVEL=debug"),
		withStream())
	return err
}
