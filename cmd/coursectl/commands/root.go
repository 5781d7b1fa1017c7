package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

var (
	courseRoot string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "coursectl",
	Short:         "Inspect read-aloud course files",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `coursectl parses course files the same way the server does.

A course file is plain text split into pages by lines containing only "---".
The first line of each page is its title.

Examples:
  coursectl sections courses/english/lesson.txt
  coursectl content english/lesson.txt --id lesson-3
  coursectl tree english`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&courseRoot, "root", envOr("COURSE_FILES_DIR", "courses"), "course files directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(treeCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *logger.Logger {
	if !verbose {
		return logger.Nop()
	}
	log, err := logger.New("development")
	if err != nil {
		return logger.Nop()
	}
	return log
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
