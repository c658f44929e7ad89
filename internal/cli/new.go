package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/docfile"
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Write an empty campaign document",
	Long: `Write an empty campaign document to a file.

The extension picks the encoding: .json, .yaml or .yml.

Examples:
  pacetrack new campaign.json
  pacetrack new campaign.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	doc := campaign.NewEmpty(time.Now().UTC())
	if err := docfile.NewStore().Save(context.Background(), path, doc); err != nil {
		return err
	}

	fmt.Printf("Wrote empty campaign to %s\n", path)
	return nil
}
