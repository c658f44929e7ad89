package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/docfile"
	"github.com/emiliopalmerini/pacetrack/internal/schematic"
)

var schematicCmd = &cobra.Command{
	Use:   "schematic <file>",
	Short: "Render a campaign timeline schematic",
	Long: `Build the timeline schematic for a campaign document.

With --out the schematic is rendered to an SVG file. Without it the
command prints a per-arm summary table instead.

Timestamps resolve against a reference instant, which defaults to now.
Pass --ref to make renders reproducible.

Examples:
  pacetrack schematic campaign.json
  pacetrack schematic campaign.json --out schematic.svg
  pacetrack schematic campaign.json --ref 2024-03-01T00:00:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: runSchematic,
}

var (
	schematicOut string
	schematicRef string
)

func init() {
	rootCmd.AddCommand(schematicCmd)
	schematicCmd.Flags().StringVarP(&schematicOut, "out", "o", "", "Write the schematic SVG to this file")
	schematicCmd.Flags().StringVar(&schematicRef, "ref", "", "Reference instant for relative times (RFC3339, default: now)")
}

func runSchematic(cmd *cobra.Command, args []string) error {
	ref := time.Now().UTC()
	if schematicRef != "" {
		parsed, err := time.Parse(time.RFC3339, schematicRef)
		if err != nil {
			return fmt.Errorf("failed to parse --ref: %w", err)
		}
		ref = parsed
	}

	doc, err := docfile.NewStore().Load(context.Background(), args[0])
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	tl := schematic.BuildTimeline(&doc.Campaign, ref)
	if tl == nil {
		return fmt.Errorf("nothing to render: the campaign needs at least one arm and one segment")
	}

	for _, ev := range tl.Events {
		logger.Warn("schematic fallback",
			zap.String("segment_id", ev.SegmentID),
			zap.String("field", ev.Field),
			zap.String("reason", ev.Reason))
	}

	if schematicOut == "" {
		printTimelineSummary(tl)
		return nil
	}

	svg := schematic.RenderSVG(schematic.BuildScene(tl))
	if err := os.WriteFile(schematicOut, svg, 0644); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}

	fmt.Printf("Wrote schematic to %s\n", schematicOut)
	return nil
}

func printTimelineSummary(tl *schematic.Timeline) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ARM\tSEGMENTS\tSPAN\tPROMOTERS")
	fmt.Fprintln(w, "---\t--------\t----\t---------")

	segments := 0
	for _, armID := range tl.ArmIDs {
		segs := tl.Arms[armID]
		segments += len(segs)

		start, end := segs[0].StartHours, segs[0].EndHours
		seen := map[schematic.PromoterLabel]bool{}
		var promoters []string
		for _, seg := range segs {
			if seg.StartHours < start {
				start = seg.StartHours
			}
			if seg.EndHours > end {
				end = seg.EndHours
			}
			if !seen[seg.Promoter] {
				seen[seg.Promoter] = true
				promoters = append(promoters, seg.Promoter.String())
			}
		}

		fmt.Fprintf(w, "%s\t%d\t%.0fh-%.0fh\t%s\n",
			armID, len(segs), start, end, strings.Join(promoters, ", "))
	}
	w.Flush()

	fmt.Printf("\n%d arms, %d segment rows, spans %.0fh", len(tl.ArmIDs), segments, tl.MaxEnd)
	if len(tl.Events) > 0 {
		fmt.Printf(", %d fallback(s)", len(tl.Events))
	}
	fmt.Println()
}
