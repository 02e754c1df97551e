// seedcli is a small command-line front end for the TheSeed client library,
// useful for smoke-testing credentials and for one-off document edits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iodine-wiki/theseed-go"
	"github.com/iodine-wiki/theseed-go/tracing"
)

func main() {
	// A .env file is convenient for bot credentials; real env vars win.
	_ = godotenv.Load()

	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var limited *theseed.RateLimitError
		if errors.As(err, &limited) {
			fmt.Fprintf(os.Stderr, "Hint: retry after %s\n", limited.RetryAfter)
		}
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "seedcli",
		Short: "Client for TheSeed wiki-engine APIs",
		Long: `seedcli reads and edits documents on TheSeed-based wikis such as NamuWiki.

Configure via environment variables (a .env file is also read):
  THESEED_URL           API base URL (required)
  THESEED_TOKEN         API token (required)
  THESEED_TIMEOUT       request timeout (default 30s)
  THESEED_MIN_INTERVAL  min spacing between requests (e.g. 1s)`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		getCmd(&verbose),
		editCmd(&verbose),
		backlinksCmd(&verbose),
		infoCmd(&verbose),
	)

	return cmd
}

// newClient builds a client from the environment plus tracing setup.
// The returned shutdown flushes pending spans.
func newClient(ctx context.Context, verbose bool) (*theseed.Client, func(context.Context) error, error) {
	cfg, err := theseed.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("tracing setup: %w", err)
	}

	return theseed.NewClient(cfg, logger), shutdown, nil
}

func getCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "get <title>",
		Short: "Print a document's current content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, shutdown, err := newClient(ctx, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = shutdown(ctx) }()

			doc, err := client.Read(ctx, args[0])
			if err != nil {
				return err
			}
			if !doc.Exists {
				return fmt.Errorf("document %q does not exist", doc.Title)
			}
			fmt.Print(doc.Content)
			return nil
		},
	}
}

func editCmd(verbose *bool) *cobra.Command {
	var (
		summary string
		file    string
	)

	cmd := &cobra.Command{
		Use:   "edit <title>",
		Short: "Replace a document's content from a file or stdin",
		Example: `  seedcli edit "Some Document" --file new.txt -m "update"
  cat new.txt | seedcli edit "Some Document" -m "update"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var content []byte
			var err error
			if file != "" {
				content, err = os.ReadFile(file)
			} else {
				content, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("reading content: %w", err)
			}

			client, shutdown, err := newClient(ctx, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = shutdown(ctx) }()

			outcome, err := client.Edit(ctx, args[0], func(string, bool) (string, error) {
				return string(content), nil
			}, summary)
			if err != nil {
				return err
			}

			fmt.Printf("Edited %q at revision %d\n", outcome.Title, outcome.Revision)
			return nil
		},
	}

	cmd.Flags().StringVarP(&summary, "summary", "m", "", "edit summary")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read new content from this file instead of stdin")

	return cmd
}

func backlinksCmd(verbose *bool) *cobra.Command {
	var (
		namespace string
		flag      int
		from      string
	)

	cmd := &cobra.Command{
		Use:   "backlinks <title>",
		Short: "List documents linking to a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, shutdown, err := newClient(ctx, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = shutdown(ctx) }()

			result, err := client.Backlinks(ctx, theseed.BacklinkArgs{
				Title:     args[0],
				Namespace: namespace,
				Flag:      theseed.BacklinkFlag(flag),
				From:      from,
			})
			if err != nil {
				return err
			}

			for _, ns := range result.Namespaces {
				fmt.Printf("%s: %d\n", ns.Namespace, ns.Count)
			}
			for _, link := range result.Backlinks {
				fmt.Printf("  %s [%s]\n", link.Document, link.Flags)
			}
			if result.Until != "" {
				fmt.Printf("(more results; continue with --from %q)\n", result.Until)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "", "restrict to this namespace")
	cmd.Flags().IntVar(&flag, "flag", 0, "link flag bitmask (1=link 2=file 4=include 8=redirect)")
	cmd.Flags().StringVar(&from, "from", "", "paginate from this document (inclusive)")

	return cmd
}

func infoCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "info <title>",
		Short: "Show a document's existence, backlink counts, and open discussions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			title := args[0]

			client, shutdown, err := newClient(ctx, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = shutdown(ctx) }()

			var (
				doc         *theseed.Document
				backlinks   *theseed.BacklinkResult
				discussions []theseed.Discussion
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				doc, err = client.Read(gctx, title)
				return err
			})
			g.Go(func() error {
				var err error
				backlinks, err = client.Backlinks(gctx, theseed.BacklinkArgs{Title: title})
				return err
			})
			g.Go(func() error {
				var err error
				discussions, err = client.Discussions(gctx, title)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Printf("Title:    %s\n", doc.Title)
			fmt.Printf("Exists:   %v\n", doc.Exists)
			fmt.Printf("Size:     %d bytes\n", len(doc.Content))

			total := 0
			for _, ns := range backlinks.Namespaces {
				total += ns.Count
			}
			fmt.Printf("Backlinks: %d\n", total)

			fmt.Printf("Discussions: %d\n", len(discussions))
			for _, d := range discussions {
				fmt.Printf("  [%s] %s (updated %s)\n", d.Status, d.Topic, d.UpdatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}
