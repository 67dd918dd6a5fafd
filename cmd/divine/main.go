package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taiwoajasa245/divine-answers/internal/favorites"
	"github.com/taiwoajasa245/divine-answers/internal/kv"
	"github.com/taiwoajasa245/divine-answers/internal/speech"
	"github.com/taiwoajasa245/divine-answers/pkg/config"
	"github.com/taiwoajasa245/divine-answers/pkg/logger"
)

// app holds what every subcommand shares. Built in PersistentPreRunE.
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	store     *kv.SQLiteStore
	favorites *favorites.FavoritesService
	toasts    *toastPrinter
	closers   []func() error
}

var (
	a       = &app{}
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "divine",
	Short:         "Divine Answers - spiritual guidance from sacred texts",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		a.close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHome(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for local favorites (default $DIVINE_DATA_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(homeCmd, askCmd, favoritesCmd)
}

func (a *app) setup(ctx context.Context) error {
	a.cfg = config.LoadConfig()
	if dataDir != "" {
		a.cfg.DataDir = dataDir
	}

	if verbose {
		log, err := logger.New("development")
		if err != nil {
			return err
		}
		a.log = log
	} else {
		a.log = logger.Nop()
	}

	store, err := kv.OpenSQLite(ctx, filepath.Join(a.cfg.DataDir, "divine.db"))
	if err != nil {
		return err
	}
	a.store = store
	a.closers = append(a.closers, store.Close)

	a.favorites = favorites.NewFavoritesService(favorites.NewKVStorage(store))
	a.toasts = newToastPrinter(os.Stdout, os.Stderr)
	return nil
}

// speechFor assembles whatever voice support this machine has.
func (a *app) speechFor(ctx context.Context, audioPath string) speech.Capability {
	var dev speech.Device

	if audioPath == "" {
		audioPath = a.cfg.SpeechAudio
	}
	if audioPath != "" {
		rec, err := speech.NewGoogleRecognizer(ctx, speech.GoogleConfig{
			AudioPath:    audioPath,
			LanguageCode: a.cfg.SpeechLanguage,
			Endpoint:     a.cfg.SpeechEndpoint,
		}, a.log)
		if err != nil {
			a.log.Warn("speech recognition unavailable", "error", err)
		} else {
			dev.Recognizer = rec
			a.closers = append(a.closers, rec.Close)
		}
	}

	if synth := speech.NewCommandSynthesizer(a.cfg.TTSCommand); synth != nil {
		dev.Synthesizer = synth
	}

	if !dev.CanListen() && !dev.CanSpeak() {
		return speech.Unsupported{}
	}
	return dev
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
	if a.log != nil {
		a.log.Sync()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if code := exitCode(rootCmd.ExecuteContext(ctx), os.Stderr); code != 0 {
		a.close()
		stop()
		os.Exit(code)
	}
}

// errShown marks an error the user already saw as a notice.
var errShown = errors.New("already reported")

type shownError struct{ err error }

func (e shownError) Error() string   { return e.err.Error() }
func (e shownError) Unwrap() []error { return []error{e.err, errShown} }

func shown(err error) error { return shownError{err: err} }

func exitCode(err error, errOut io.Writer) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, errShown) {
		fmt.Fprintln(errOut, "Error:", err)
	}
	return 1
}
