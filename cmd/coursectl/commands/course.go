package commands

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/readaloud-backend/internal/course"
	"github.com/yungbote/readaloud-backend/internal/domain"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "Print the generic content chain of a course file",
	Long: `Parse a course file and print every page with its generated id.

The ids are the generic <base>-<n> form; the server additionally serves the
first page as "intro".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sections, err := course.SplitFile(args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), course.BuildContents(sections, course.BaseID(args[0])))
	},
}

var contentID string

var contentCmd = &cobra.Command{
	Use:   "content <course_path>",
	Short: "Print one page exactly as GET /content would",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := course.NewStore(newLogger(), courseRoot)
		c, err := store.Content(args[0], contentID)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), c)
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "List folders and course files below the course root",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rel := ""
		if len(args) == 1 {
			rel = args[0]
		}
		store := course.NewStore(newLogger(), courseRoot)
		listing, err := store.Browse(rel)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), listing)
	},
}

func init() {
	contentCmd.Flags().StringVar(&contentID, "id", domain.IntroID, "content id")
}
