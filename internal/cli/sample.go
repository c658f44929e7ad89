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

var sampleCmd = &cobra.Command{
	Use:   "sample <file>",
	Short: "Write the sample campaign document",
	Long: `Write a populated sample campaign to a file.

The sample has two arms, two selection circuits and six timeline segments,
enough to exercise the editor and the schematic renderer.

Examples:
  pacetrack sample demo.json
  pacetrack sample demo.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	doc := campaign.NewSample(time.Now().UTC())
	if err := docfile.NewStore().Save(context.Background(), path, doc); err != nil {
		return err
	}

	fmt.Printf("Wrote sample campaign to %s\n", path)
	return nil
}
