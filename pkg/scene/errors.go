package scene

import "errors"

var (
	ErrInvalidScenePath   = errors.New("invalid scene path")
	ErrSceneAlreadyLoaded = errors.New("scene already loaded")
	ErrSceneNotFound      = errors.New("scene not found")

	ErrHierarchyCycle = errors.New("transform cannot be parented to itself or a descendant")
)
