package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath  string
	searchLimit int
)

// app is what every command needs: config, logger and a board wired to them.
type app struct {
	config  *Config
	logger  *zap.Logger
	board   *Board
	images  *ThemeImages
	closeFn func()
}

func newApp() (*app, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger, closeFn, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	palette := DefaultPalette()
	board := NewBoard(BoardOptions{
		Palette:      palette,
		Bounds:       cfg.Bounds(),
		DefaultMood:  Mood(cfg.DefaultMood),
		DefaultTheme: ThemeKey(cfg.DefaultTheme),
	})
	return &app{
		config:  cfg,
		logger:  logger,
		board:   board,
		images:  NewThemeImages(cfg.AssetsDirectory, palette, logger),
		closeFn: closeFn,
	}, nil
}

func (a *app) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelboard [board-file]",
	Short: "A pixel-art playlist board for September songs",
	Long: `pixelboard pins songs to a board of sticky notes, one colour per mood.
Drag notes around with the mouse, look songs up in the music catalog
and export the board as a PNG.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		searcher := NewCatalogClient(a.config.Lookup, a.logger)
		m := newModel(a.config, a.board, searcher, a.images, a.logger)
		if len(args) == 1 {
			m.mode = ModeNormal
			m.openBoard(withBoardExt(args[0]))
			if m.errorMessage != "" {
				return errors.Errorf("open %s: %s", args[0], m.errorMessage)
			}
		}

		a.logger.Info("starting board",
			zap.String("mood", string(a.board.CurrentMood())),
			zap.String("theme", string(a.board.SelectedTheme())),
			zap.Bool("clamp", a.config.Board.Clamp))

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return errors.Wrap(err, "run ui")
		}
		return nil
	},
}

var searchCmdLine = &cobra.Command{
	Use:   "search <query...>",
	Short: "Look songs up in the music catalog and print them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		client := NewCatalogClient(a.config.Lookup, a.logger)
		ctx, cancel := context.WithTimeout(cmd.Context(), a.config.Lookup.Timeout)
		defer cancel()

		query := strings.Join(args, " ")
		results := client.Search(ctx, query, searchLimit)
		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}
		for i, r := range results {
			fmt.Fprintf(out, "%2d. %s\n", i+1, r.Label())
			if r.PreviewURL != "" {
				fmt.Fprintf(out, "    preview: %s\n", r.PreviewURL)
			}
		}
		return nil
	},
}

var exportCmdLine = &cobra.Command{
	Use:   "export <board-file> <out.png>",
	Short: "Render a saved board to PNG",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := loadBoardFile(withBoardExt(args[0]))
		if err != nil {
			return err
		}
		if err := a.board.Restore(f); err != nil {
			return err
		}
		start := time.Now()
		if err := newExporter(a.board.Palette(), a.images).ExportPNG(a.board, withExt(args[1], ".png")); err != nil {
			return err
		}
		a.logger.Info("exported board", zap.String("file", args[1]), zap.Duration("took", time.Since(start)))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d songs to %s\n", a.board.Len(), withExt(args[1], ".png"))
		return nil
	},
}

var listCmdLine = &cobra.Command{
	Use:   "list",
	Short: "List saved boards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		dir := a.config.SearchDirectory()
		files, err := listBoardFiles(dir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), trimBoardExt(f))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $PIXELBOARD_CONFIG or ~/.pixelboard.yaml)")
	searchCmdLine.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum results (default from config)")
	rootCmd.AddCommand(searchCmdLine, exportCmdLine, listCmdLine)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
