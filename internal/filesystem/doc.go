// Package filesystem abstracts the file operations the pipelines perform so
// commands can be exercised against temporary directories or fakes.
package filesystem
