package util

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	projectRootDir     string
	projectRootDirOnce sync.Once
)

// GetProjectRootDir returns the path of the directory containing go.mod. Outside a source
// checkout (PROJECT_ROOT_DIR unset and no go.mod found) the working directory is used.
func GetProjectRootDir() string {
	projectRootDirOnce.Do(func() {
		if dir, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
			projectRootDir = dir
			return
		}

		_, file, _, ok := runtime.Caller(0)
		if ok {
			dir := filepath.Join(filepath.Dir(file), "..", "..")
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				projectRootDir = dir
				return
			}
		}

		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		projectRootDir = wd
	})

	return projectRootDir
}
