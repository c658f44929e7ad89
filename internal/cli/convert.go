package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/pacetrack/internal/docfile"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a campaign document between JSON and YAML",
	Long: `Convert a campaign document from one encoding to the other.

Both encodings carry the same field names, so conversion is lossless.

Examples:
  pacetrack convert campaign.json campaign.yaml
  pacetrack convert campaign.yaml campaign.json`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	store := docfile.NewStore()

	doc, err := store.Load(ctx, args[0])
	if err != nil {
		return err
	}
	if err := store.Save(ctx, args[1], doc); err != nil {
		return err
	}

	fmt.Printf("Converted %s to %s\n", args[0], args[1])
	return nil
}
