package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/adapters/otel"
	"github.com/emiliopalmerini/pacetrack/internal/adapters/storage"
	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/docfile"
	"github.com/emiliopalmerini/pacetrack/internal/infrastructure/config"
	"github.com/emiliopalmerini/pacetrack/internal/ports"
	"github.com/emiliopalmerini/pacetrack/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the campaign editor",
	Long: `Start the local campaign editor server.

Examples:
  pacetrack serve                        # Start on :8080 with an empty document
  pacetrack serve --file campaign.yaml   # Edit a document, Save writes back to it
  pacetrack serve --addr :3000           # Listen on :3000`,
	RunE: runServe,
}

var (
	serveAddr string
	serveFile string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides PACETRACK_ADDR)")
	serveCmd.Flags().StringVarP(&serveFile, "file", "f", "", "Campaign document to edit and save back to")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadApp()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	files, err := storage.NewAttachmentStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize attachment storage: %w", err)
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := docfile.NewStore()
	doc := campaign.NewEmpty(time.Now().UTC())
	if serveFile != "" {
		switch _, statErr := os.Stat(serveFile); {
		case statErr == nil:
			doc, err = store.Load(ctx, serveFile)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", serveFile, err)
			}
		case os.IsNotExist(statErr):
			// Fresh document; the first Save creates the file.
		default:
			return fmt.Errorf("failed to stat %s: %w", serveFile, statErr)
		}
	}

	var metrics ports.MetricsExporter = otel.NewNoOpExporter()
	if otelCfg := otel.LoadConfig(); otelCfg.Enabled {
		exporter, err := otel.NewExporter(ctx, otelCfg)
		if err != nil {
			logger.Warn("failed to initialize OTLP metrics, continuing without", zap.Error(err))
		} else {
			metrics = exporter
			defer func() {
				if err := exporter.Shutdown(context.Background()); err != nil {
					logger.Warn("failed to shut down metrics exporter", zap.Error(err))
				}
			}()
		}
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	server := web.NewServer(cfg.Addr, logger, metrics, files, store, serveFile, doc)
	return server.Start(ctx)
}
