package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yacobolo/wptokens"
	"github.com/yacobolo/wptokens/internal/themejson"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload theme.json whenever it changes",
	Long: `Load theme.json, then watch it and rebuild the token set on every save.
A file that fails to parse is reported and the previous tokens are kept.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", wptokens.DefaultDebounce, "Wait this long after the last change before reloading")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if getBoolWithFallback("verbose", "verbose", false) {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	store, result, err := loadTheme(buildConfig())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		fmt.Fprintf(out, "Watching %s\n", result.ThemePath)
		printCounts(out, store)

		unsubscribe := store.Subscribe(func() { printCounts(out, store) })
		defer unsubscribe()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debounce := getDurationWithFallback("debounce", "watch.debounce", wptokens.DefaultDebounce)
	watcher := wptokens.NewThemeWatcher(store, debounce)
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	<-ctx.Done()
	return nil
}

// printCounts writes one line with the token count of every non-empty category
func printCounts(w io.Writer, store *themejson.Store) {
	var parts []string
	total := 0
	for _, spec := range themejson.Categories {
		n := len(store.Tokens(spec.Category))
		total += n
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", spec.Category, n))
		}
	}

	fmt.Fprintf(w, "%s  %d tokens", time.Now().Format("15:04:05"), total)
	if len(parts) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintln(w)
}
