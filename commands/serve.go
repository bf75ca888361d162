package commands

import (
	"context"

	"github.com/spf13/cobra"

	"factoryflow/internal/data/loader"
	"factoryflow/internal/data/watcher"
	"factoryflow/internal/server"
	"factoryflow/internal/summarizer"
	"factoryflow/internal/util"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	var causeSummarizer summarizer.Summarizer
	if cfg.GeminiAPIKey != "" {
		gemini, err := summarizer.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		causeSummarizer = gemini
	} else {
		util.LogWarn("GEMINI_API_KEY not set; cause summarization will return its fallback payload")
	}

	if sw, err := watcher.NewSourceWatcher(cfg.DataDir); err != nil {
		util.LogWarnf("Could not watch data dir %s: %v", cfg.DataDir, err)
	} else {
		defer sw.Close()
	}

	srv := server.New(cfg, loader.NewCSVLoader(cfg.DataDir), causeSummarizer)
	return srv.Run()
}
