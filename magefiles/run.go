//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Render mg.Namespace

// Scene renders one built-in scene to output/<name>/.
func (Render) Scene(name string) error {
	mg.Deps(Build.CLI)
	_, err := executeCmd("bin/raytracer", withArgs("-scene", name, "-stamp"), withStream())
	return err
}

// All renders every scene listed by the CLI at a small preview size.
func (Render) All() error {
	mg.Deps(Build.CLI)
	out, err := executeCmd("bin/raytracer", withArgs("-list"))
	if err != nil {
		return err
	}
	for _, id := range sceneIDs(out) {
		fmt.Printf("Rendering %s...\n", id)
		if _, err := executeCmd("bin/raytracer", withArgs("-scene", id, "-width", "320", "-height", "240", "-stamp")); err != nil {
			return err
		}
	}
	return nil
}

// Serve starts the web server.
func (Render) Serve() error {
	_, err := executeCmd("go", withArgs("run", "./web"), withDir("."), withStream())
	return err
}
