package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/pacetrack/internal/docfile"
	"github.com/emiliopalmerini/pacetrack/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a campaign document",
	Long: `Validate a campaign document and print every issue found.

Issues are printed one per line as "$path: message". The command exits
non-zero when the document is invalid.

Examples:
  pacetrack validate campaign.json
  pacetrack validate campaign.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	doc, err := docfile.NewStore().Load(context.Background(), args[0])
	if err != nil {
		return err
	}

	// An invalid document is an expected outcome, not CLI misuse.
	cmd.SilenceUsage = true

	issues := validate.Document(doc)
	if len(issues) == 0 {
		fmt.Println("Valid ✓")
		return nil
	}

	for _, issue := range issues {
		fmt.Println(issue.String())
	}
	return fmt.Errorf("%d validation issue(s)", len(issues))
}
