package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flarenzy/maskcalc/internal/domain"
	"github.com/Flarenzy/maskcalc/internal/render"
)

// Version gets overridden via -ldflags at build time (e.g. -X github.com/Flarenzy/maskcalc/internal/cli.Version=v1.2.3)
var Version = "dev"

// NewRootCmd constructs a new *cobra.Command with isolated state.
func NewRootCmd(out io.Writer, cfg Config) *cobra.Command {
	var (
		output = cfg.Output
		locale = cfg.Locale
		debug  = cfg.Debug
	)

	rootCmd := &cobra.Command{
		Use:   "maskcalc <PREFIX | MASK | HEX | WILDCARD | ADDRESS/MASK>",
		Short: "IPv4 subnet mask converter",
		Long: `maskcalc takes one subnet mask in any of its four notations (CIDR prefix
length, dotted-decimal mask, hexadecimal mask, wildcard mask), infers which
notation it is, and prints the other three plus the usable host count. With
an address in front of the mask it also derives the network and broadcast
addresses and the usable host range.`,
		Example: `  maskcalc 24
  maskcalc /26
  maskcalc 255.255.254.0
  maskcalc 0xffffffc0
  maskcalc 0.0.0.63
  maskcalc 192.168.75.4/23 -o json`,
		Args:         cobra.ExactArgs(1),
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var logger *slog.Logger
			if debug {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}

			service := domain.NewLoggingSubnetService(logger, domain.NewSubnetService())
			result, err := service.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer, err := render.New(render.Format(output), locale)
			if err != nil {
				return err
			}
			return renderer.Render(cmd.OutOrStdout(), result)
		},
	}

	rootCmd.SetOut(out)
	rootCmd.Flags().StringVarP(&output, "output", "o", output, "output format: human|json|yaml")
	rootCmd.Flags().StringVar(&locale, "locale", locale, "BCP 47 locale used to format host counts")
	rootCmd.Flags().BoolVar(&debug, "debug", debug, "log resolution steps to stderr")

	return rootCmd
}

func Run(ctx context.Context, cfg Config) error {
	return NewRootCmd(os.Stdout, cfg).ExecuteContext(ctx)
}
