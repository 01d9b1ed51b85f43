package cli

import "errors"

var (
	// ErrAborted is returned when the user aborts an operation.
	ErrAborted = errors.New("operation aborted by user")

	// ErrNothingToDo is returned when the manifest lists no packages.
	ErrNothingToDo = errors.New("manifest lists no packages; run 'rig init' to create one")

	// ErrManifestExists is returned when init would overwrite an
	// existing manifest.
	ErrManifestExists = errors.New("manifest already exists; use --force to overwrite")
)
