package platform

import (
	"os"
)

// OS implements Filesystem with the os package.
type OS struct{}

// NewPlatform returns the real filesystem
func NewPlatform() Filesystem {
	return OS{}
}

func (OS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

func (OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (OS) Remove(name string) error {
	return os.Remove(name)
}

func (OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (OS) MkdirAll(dir string, perm os.FileMode) error {
	return os.MkdirAll(dir, perm)
}
