// Package shared provides common utility functions used across multiple
// packages in the rosmsg-flatten codebase.
package shared

import (
	"os"
	"strings"
)

// DisplayName collapses the "/msg/" segment of a fully-qualified type
// name for human-facing output: "std_msgs/msg/Header" becomes
// "std_msgs/Header".  Names without a "/msg/" segment pass through
// unchanged.
func DisplayName(typeName string) string {
	return strings.Replace(typeName, "/msg/", "/", 1)
}

// PackageOf returns the package segment of a fully-qualified type name,
// i.e. everything before the first "/".  A separator-free name yields
// the name itself.
func PackageOf(typeName string) string {
	if idx := strings.IndexByte(typeName, '/'); idx >= 0 {
		return typeName[:idx]
	}
	return typeName
}

// SplitSearchPath splits a PATH-style list of prefixes on the
// platform's list separator, dropping empty entries.
func SplitSearchPath(value string) []string {
	var paths []string
	for _, part := range strings.Split(value, string(os.PathListSeparator)) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	return paths
}
