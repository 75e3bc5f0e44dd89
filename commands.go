package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"paperfold/internal/paper"
	"paperfold/internal/silhouette"
	"paperfold/internal/solution"
)

var (
	configPath string
	config     *Config
	logger     *zap.Logger
)

func Execute() error {
	root := rootCmd()
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return root.Execute()
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "paperfold",
		Short:         "Fold a square sheet of paper in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogFile)
			if err != nil {
				return err
			}
			config, logger = cfg, log
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := silhouette.Catalog()
			if err != nil {
				return err
			}
			p := tea.NewProgram(
				initialModel(config, logger, catalog),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			_, err = p.Run()
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.paperfoldrc)")
	root.AddCommand(foldCmd(), silhouettesCmd())
	return root
}

func foldCmd() *cobra.Command {
	var (
		pngPath      string
		solutionPath string
		target       string
	)
	cmd := &cobra.Command{
		Use:   "fold [x0,y0:x1,y1 | flip | undo]...",
		Short: "Replay folds without the terminal UI",
		Long: `Replay a sequence of folds on a fresh sheet. Each fold is a drag from
x0,y0 to x1,y1 in sheet coordinates; "flip" turns the sheet over and "undo"
takes back the last step. The resulting solution is printed unless written
to a file. Put folds that start with a negative coordinate after "--" so
they are not read as flags.`,
		Example: `  paperfold fold 0,0:1,1
  paperfold fold 0.5,0:0.5,1 flip 0,0.5:1,0.5 --png out.png
  paperfold fold --solution out.txt -- -0.5,0.5:1,0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := paper.NewSession()
			if err := replay(sess, args, logger); err != nil {
				return err
			}

			var sil *silhouette.Silhouette
			if target != "" {
				s, err := silhouette.Lookup(target)
				if err != nil {
					return err
				}
				sil = s
			}
			if pngPath != "" {
				if err := exportPNG(pngPath, sess.Current(), sil, config.PNGSize); err != nil {
					return fmt.Errorf("export png: %w", err)
				}
				logger.Info("saved", zap.String("path", pngPath))
			}
			if solutionPath != "" {
				if err := writeSolution(solutionPath, sess.Current()); err != nil {
					return fmt.Errorf("write solution: %w", err)
				}
				logger.Info("saved", zap.String("path", solutionPath))
			}
			if pngPath == "" && solutionPath == "" {
				return solution.FromState(sess.Current()).Encode(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pngPath, "png", "", "write both views to this PNG file")
	cmd.Flags().StringVar(&solutionPath, "solution", "", "write the solution to this file")
	cmd.Flags().StringVar(&target, "silhouette", "", "draw this silhouette in the PNG")
	return cmd
}

// replay applies fold, flip and undo tokens to sess in order. Zero-length
// folds are skipped; a fold the sheet cannot take stops the replay.
func replay(sess *paper.Session, tokens []string, log *zap.Logger) error {
	for i, tok := range tokens {
		switch tok {
		case "flip":
			sess.Flip()
			log.Debug("flip", zap.Bool("flipped", sess.Flipped()))
		case "undo":
			sess.Undo()
			log.Debug("undo", zap.Int("depth", sess.HistoryDepth()))
		default:
			from, to, err := parseGesture(tok)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			err = sess.Commit(from, to)
			if errors.Is(err, paper.ErrDegenerateGesture) {
				log.Debug("empty fold skipped", zap.String("token", tok))
				continue
			}
			if err != nil {
				return fmt.Errorf("step %d %q: %w", i+1, tok, err)
			}
			log.Debug("fold",
				zap.Stringer("from", from),
				zap.Stringer("to", to),
				zap.Int("facets", len(sess.Current())))
		}
	}
	return nil
}

// parseGesture reads "x0,y0:x1,y1".
func parseGesture(s string) (paper.Vec2, paper.Vec2, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return paper.Vec2{}, paper.Vec2{}, fmt.Errorf("bad fold %q, want x0,y0:x1,y1", s)
	}
	from, err := parsePoint(a)
	if err != nil {
		return paper.Vec2{}, paper.Vec2{}, err
	}
	to, err := parsePoint(b)
	if err != nil {
		return paper.Vec2{}, paper.Vec2{}, err
	}
	return from, to, nil
}

func parsePoint(s string) (paper.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return paper.Vec2{}, fmt.Errorf("bad point %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return paper.Vec2{}, fmt.Errorf("bad point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return paper.Vec2{}, fmt.Errorf("bad point %q: %w", s, err)
	}
	return paper.Vec(x, y), nil
}

func silhouettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "silhouettes",
		Short: "List the built-in target silhouettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := silhouette.Catalog()
			if err != nil {
				return err
			}
			return listSilhouettes(cmd.OutOrStdout(), catalog)
		},
	}
}

func listSilhouettes(w io.Writer, catalog []*silhouette.Silhouette) error {
	for _, s := range catalog {
		if _, err := fmt.Fprintf(w, "%-12s area %.4f  polygons %d  holes %d  segments %d\n",
			s.Name, s.Area(), len(s.Polygons), len(s.Holes), len(s.Segments)); err != nil {
			return err
		}
	}
	return nil
}
