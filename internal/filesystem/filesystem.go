package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
)

const (
	// OutputDirectoryPermissions applies to directories created for output files.
	OutputDirectoryPermissions           fs.FileMode = 0o755
	currentDirectoryConstant                         = "."
	createDirectoryErrorTemplateConstant             = "unable to create output directory %s: %w"
	inspectOutputErrorTemplateConstant               = "unable to inspect output path %s: %w"
	outputIsDirectoryTemplateConstant                = "output path %s is a directory"
)

// FileSystem describes the file operations used by the pipelines.
type FileSystem interface {
	Open(path string) (io.ReadCloser, error)
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, permissions fs.FileMode) error
	Abs(path string) (string, error)
}

// EnsureParentDirectory creates the directory that will contain outputPath.
func EnsureParentDirectory(fileSystem FileSystem, outputPath string) error {
	parentDirectory := filepath.Dir(outputPath)
	if len(parentDirectory) == 0 || parentDirectory == currentDirectoryConstant {
		return nil
	}
	if mkdirError := fileSystem.MkdirAll(parentDirectory, OutputDirectoryPermissions); mkdirError != nil {
		return fmt.Errorf(createDirectoryErrorTemplateConstant, parentDirectory, mkdirError)
	}
	return nil
}

// EnsureOutputFile rejects output paths that name an existing directory. Missing paths are accepted.
func EnsureOutputFile(fileSystem FileSystem, outputPath string) error {
	outputInfo, statError := fileSystem.Stat(outputPath)
	if errors.Is(statError, fs.ErrNotExist) {
		return nil
	}
	if statError != nil {
		return fmt.Errorf(inspectOutputErrorTemplateConstant, outputPath, statError)
	}
	if outputInfo.IsDir() {
		return fmt.Errorf(outputIsDirectoryTemplateConstant, outputPath)
	}
	return nil
}

// DisplayPath returns the absolute form of candidatePath, or candidatePath itself when it cannot be resolved.
func DisplayPath(fileSystem FileSystem, candidatePath string) string {
	absolutePath, absoluteError := fileSystem.Abs(candidatePath)
	if absoluteError != nil {
		return candidatePath
	}
	return absolutePath
}
