//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// CLI builds the raytracer command into bin/.
func (Build) CLI() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/raytracer", "."), withStream())
	return err
}

// Web builds the HTTP server into bin/.
func (Build) Web() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/raytracer-web", "./web"), withStream())
	return err
}

// All builds every binary.
func (Build) All() {
	mg.Deps(Build.CLI, Build.Web)
}

type Test mg.Namespace

// Unit runs the unit tests.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Race runs the unit tests with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Vet runs go vet.
func (Test) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}
