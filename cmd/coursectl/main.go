// Package main provides coursectl, an offline inspector for course files.
//
// Usage:
//
//	coursectl sections <file>
//	coursectl content <course_path> [--id intro] [--root courses]
//	coursectl tree [path] [--root courses]
package main

import (
	"fmt"
	"os"

	"github.com/yungbote/readaloud-backend/cmd/coursectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
