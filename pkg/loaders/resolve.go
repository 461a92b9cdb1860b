package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// FileScenePrefix marks scene IDs that refer to TOML files in the scene directory
const FileScenePrefix = "file:"

// ResolveScene builds a scene from a built-in name, a "file:<name>" ID
// relative to sceneDir, or a path to a .toml file. The camera override is
// applied on top of the scene's own camera.
func ResolveScene(id, sceneDir string, cameraOverride scene.CameraConfig) (*scene.Scene, error) {
	switch {
	case strings.HasPrefix(id, FileScenePrefix):
		name := strings.TrimPrefix(id, FileScenePrefix)
		if name == "" || name != filepath.Base(name) || name == ".." {
			return nil, fmt.Errorf("%w: invalid scene file name %q", scene.ErrUnknownScene, name)
		}
		return loadWithOverride(filepath.Join(sceneDir, name+".toml"), cameraOverride)

	case strings.HasSuffix(id, ".toml"):
		return loadWithOverride(id, cameraOverride)

	default:
		return scene.NewBuiltin(id, cameraOverride)
	}
}

func loadWithOverride(path string, cameraOverride scene.CameraConfig) (*scene.Scene, error) {
	s, err := LoadSceneFile(path)
	if err != nil {
		return nil, err
	}
	s.Camera = scene.MergeCameraConfig(s.Camera, cameraOverride)
	return s, nil
}
