//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the demo binary into bin/.
func (Build) Demo() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/shapes-demo", "./cmd/demo"), withStream())
	return err
}

// Vets every package.
func (Build) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
