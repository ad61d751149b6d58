package schema

import "errors"

var (
	// ErrInvalidSession indicates an invalid session identifier.
	ErrInvalidSession = errors.New("invalid session")
	// ErrInvalidName indicates an empty or malformed file name.
	ErrInvalidName = errors.New("invalid file name")
	// ErrDuplicateName indicates a file with the same name already exists.
	ErrDuplicateName = errors.New("file already exists")
	// ErrFileNotFound indicates a requested file could not be found.
	ErrFileNotFound = errors.New("file not found")
	// ErrFolderNotFound indicates a requested folder could not be found.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrBufferNotFound indicates no open buffer exists for the path.
	ErrBufferNotFound = errors.New("buffer not found")
	// ErrNoActiveBuffer indicates no buffer is currently active.
	ErrNoActiveBuffer = errors.New("no active buffer")
	// ErrLanguageMismatch indicates a run was requested with the wrong language.
	ErrLanguageMismatch = errors.New("language mismatch")
	// ErrEmptyCommand indicates an empty terminal command line.
	ErrEmptyCommand = errors.New("empty command")
)
