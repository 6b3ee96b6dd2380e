package platform

import (
	"os"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Filesystem is the part of the operating system the fmjob runners touch.
// Runners take it as a dependency so tests can inject failures.
//
//counterfeiter:generate . Filesystem
type Filesystem interface {
	Lstat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	MkdirAll(dir string, perm os.FileMode) error
}
