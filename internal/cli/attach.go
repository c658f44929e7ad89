package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/pacetrack/internal/adapters/storage"
	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/docfile"
	"github.com/emiliopalmerini/pacetrack/internal/infrastructure/config"
)

var attachCmd = &cobra.Command{
	Use:   "attach <file> <path>...",
	Short: "Attach files to a campaign document",
	Long: `Copy files into the attachment store and record them on the campaign.

Each file is hashed while copying. The document gains one attachment
record per file, with a file:// URI pointing into the data directory.

Examples:
  pacetrack attach campaign.json gel.png
  pacetrack attach campaign.json sop.pdf notes.txt --description "SOP v2"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAttach,
}

var attachDescription string

func init() {
	rootCmd.AddCommand(attachCmd)
	attachCmd.Flags().StringVarP(&attachDescription, "description", "d", "", "Description recorded on every attachment")
}

func runAttach(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadApp()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	files, err := storage.NewAttachmentStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize attachment storage: %w", err)
	}

	store := docfile.NewStore()
	doc, err := store.Load(ctx, args[0])
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	for _, path := range args[1:] {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		staged, err := files.Stage(ctx, "attachments", path, f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("failed to stage %s: %w", path, err)
		}

		doc.Campaign.Attachments = append(doc.Campaign.Attachments, campaign.Attachment{
			URI:         staged.URI,
			SHA256:      staged.SHA256,
			SizeBytes:   staged.SizeBytes,
			Description: attachDescription,
		})
		fmt.Fprintf(os.Stderr, "Staged %s (%d bytes)\n", path, staged.SizeBytes)
	}

	if err := store.Save(ctx, args[0], doc); err != nil {
		return err
	}

	fmt.Printf("Attached %d file(s) to %s\n", len(args)-1, args[0])
	return nil
}
