package paths

import (
	"errors"
	"os"
	"path/filepath"
)

// Wails project layout. The desktop build picks the app icon up from
// build/appicon.png; the other copies feed the macOS bundle and the
// project root.
const (
	BuildDir    = "build"
	DarwinDir   = "darwin"
	AppIconName = "appicon.png"
	DirPerm     = 0755
	FilePerm    = 0644
)

// AppIcon returns the primary icon path under the project root.
func AppIcon(root string) string {
	return filepath.Join(root, BuildDir, AppIconName)
}

// AppIconCopies returns the secondary icon paths under the project root,
// in write order.
func AppIconCopies(root string) []string {
	return []string{
		filepath.Join(root, AppIconName),
		filepath.Join(root, BuildDir, DarwinDir, AppIconName),
	}
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory must already exist. Errors name path,
// never the temporary file.
func AtomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return retarget(err, path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return retarget(err, path)
	}
	return nil
}

// retarget rewrites the file named in a *os.PathError or *os.LinkError to
// path, keeping the operation and the underlying cause.
func retarget(err error, path string) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return &os.PathError{Op: pe.Op, Path: path, Err: pe.Err}
	}
	var le *os.LinkError
	if errors.As(err, &le) {
		return &os.PathError{Op: le.Op, Path: path, Err: le.Err}
	}
	return err
}

// ProjectRoot returns the absolute path of the directory the tool runs in.
// Wails commands are run from the project root, and so is this one.
func ProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Abs(wd)
}
