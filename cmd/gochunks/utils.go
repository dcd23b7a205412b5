package main

import (
	"os/user"
	"path/filepath"
	"strings"
)

// mapPath expands a leading "~/". Relative paths stay relative to the working directory.
func mapPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	curUser, err := user.Current()
	if err != nil {
		return path
	}
	return filepath.Join(curUser.HomeDir, strings.TrimPrefix(path, "~/"))
}

func mapPaths(paths []string) []string {
	var result = make([]string, len(paths))
	for i, p := range paths {
		result[i] = mapPath(p)
	}
	return result
}
