//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Tests the packages that do not need a display.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", unitPackages...), withStream())
	return err
}

// Tests the same packages with the race detector.
func (Test) Race() error {
	args := append([]string{"test", "-race"}, unitPackages[1:]...)
	_, err := executeCmd("go", withArgs(args...), withStream())
	return err
}

// unitPackages leaves out the raylib packages, which need cgo and an OpenGL context.
var unitPackages = []string{
	"test",
	"./internal/animation/...",
	"./internal/commands/...",
	"./internal/engineconfig/...",
	"./internal/env/...",
	"./internal/fonts/...",
	"./internal/input/...",
	"./internal/logger/...",
	"./internal/orbit/...",
	"./internal/remote/...",
	"./internal/render/headless/...",
	"./internal/scene/...",
	"./internal/ui/css/...",
}
