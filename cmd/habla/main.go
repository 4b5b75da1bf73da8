package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"habla/internal/config"
	"habla/internal/emotion"
	"habla/internal/feedback"
	"habla/internal/history"
	"habla/internal/logging"
	"habla/internal/phrase"
	"habla/internal/session"
	"habla/internal/speech"
	"habla/internal/ui"
)

const version = "v0.1.0"

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "habla",
	Short: "habla - terminal communication board for people with aphasia",
	Long: `habla is a terminal communication board: pick a category, tap words to
build a sentence, have it spoken aloud, and review suggested phrases.

Data lives in two JSON documents (the word board and the phrase templates)
that can be edited externally; the board is re-read every time the word
screen opens.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		// The TUI owns the terminal, so the logger writes to a file.
		logger, err = logging.New(cfg.LogFile)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard()
	},
}

var reportCmd = &cobra.Command{
	Use:   "report [destination]",
	Short: "Export the feedback report to a destination file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := feedback.Export(cfg.ReportFile, args[0])
		if errors.Is(err, feedback.ErrNoReport) {
			return fmt.Errorf("no report exists to save yet (expected %s)", cfg.ReportFile)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", args[0])
		return nil
	},
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently spoken sentences",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(cfg.HistoryFile)
		if err != nil {
			return err
		}
		defer store.Close()
		recent, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			fmt.Println("Nothing has been spoken yet.")
			return nil
		}
		for _, u := range recent {
			fmt.Printf("%s  %s\n", u.SpokenAt.Local().Format("2006-01-02 15:04"), u.Text)
		}
		return nil
	},
}

func runBoard() error {
	fmt.Printf("habla (%s) - terminal communication board\n\n", version)

	ctx := context.Background()

	recorder := feedback.NewRecorder(cfg.ReportFile, logger)
	sess := session.New(recorder)

	fmt.Println("Loading phrase templates from", cfg.PhraseFile)
	phrases, err := phrase.LoadStore(cfg.PhraseFile)
	if err != nil {
		// Empty store substituted; the session continues without templates.
		fmt.Fprintln(os.Stderr, "Warning:", err)
		logger.Error("loading phrase document", zap.Error(err))
	}

	var classifier emotion.Classifier = emotion.Static{}
	if cfg.Gemini.APIKey != "" {
		g, err := emotion.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Warn("gemini classifier unavailable", zap.Error(err))
		} else {
			classifier = g
		}
	}
	engine := phrase.NewEngine(phrases, classifier, logger)

	var speaker speech.Speaker
	synth, err := speech.NewSynthesizer(ctx, cfg.Speech.CredentialsFile, cfg.Language, cfg.Speech.Voice, cfg.Speech.Rate)
	if err != nil {
		logger.Warn("text-to-speech unavailable", zap.Error(err))
	} else {
		defer synth.Close()
		speaker = speech.NewGoogleSpeaker(synth, logger)
	}

	var recognizer speech.Recognizer
	rec, err := speech.NewGoogleRecognizer(ctx, cfg.Speech.CredentialsFile, cfg.Language, nil, logger)
	if err != nil {
		logger.Warn("speech-to-text unavailable", zap.Error(err))
	} else {
		defer rec.Close()
		recognizer = rec
	}

	hist, err := history.Open(cfg.HistoryFile)
	if err != nil {
		logger.Warn("utterance history unavailable", zap.Error(err))
		hist = nil
	} else {
		defer hist.Close()
	}

	fmt.Println("Starting the interface.")
	app := ui.New(ui.Options{
		Config:     cfg,
		Log:        logger,
		Engine:     engine,
		Session:    sess,
		Speaker:    speaker,
		Recognizer: recognizer,
		History:    hist,
	})
	return app.Run()
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "habla.yaml", "path to the config file")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "how many utterances to list")
	rootCmd.AddCommand(reportCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
