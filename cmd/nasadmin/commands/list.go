package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ncobase/nasadmin/appliance"
	"github.com/ncobase/nasadmin/cache"
	"github.com/ncobase/nasadmin/client"
	"github.com/ncobase/nasadmin/collection"
	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/logging/logger"
	"github.com/spf13/cobra"
)

type listOptions struct {
	parent   string
	page     int
	pageSize int
	all      bool
	table    bool
	baseURL  string
}

// NewListCommand creates the list command
func NewListCommand(configFile *string) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "Page through a resource of the appliance API",
		Long: "Page through a resource of the appliance API.\n\nResources: " +
			joinResources(appliance.Resources()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := appliance.ParseResource(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if opts.baseURL != "" {
				cfg.Client.BaseURL = opts.baseURL
			}
			if opts.pageSize > 0 {
				cfg.Client.PageSize = opts.pageSize
			}

			cleanup, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			defer cleanup()
			defer startTracing(cmd.Context(), cfg.Observes.Tracer)()

			return runList(cmd.Context(), cmd.OutOrStdout(), cfg, r, opts)
		},
	}

	cmd.Flags().StringVar(&opts.parent, "parent", "", "parent record id, e.g. the share of snapshots")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page to show")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "records per page, client.page_size by default")
	cmd.Flags().BoolVar(&opts.all, "all", false, "follow next pages until the last one")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print id and name columns instead of JSON lines")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "API root, client.base_url by default")
	return cmd
}

func runList(ctx context.Context, out io.Writer, cfg *config.Config, r appliance.Resource, opts *listOptions) error {
	if _, scoped := r.Parent(); scoped && opts.parent == "" {
		return fmt.Errorf("%s needs --parent", r)
	}

	fetcherOpts := []client.Option{}
	if cfg.Client.CacheTTL > 0 {
		rc, err := cache.NewClient(ctx, cfg.Data.Redis)
		switch {
		case err == nil:
			defer rc.Close()
			fetcherOpts = append(fetcherOpts, client.WithRedis(rc))
		case !errors.Is(err, cache.ErrDisabled):
			logger.Warnf(ctx, "page cache disabled: %v", err)
		}
	}

	root := strings.TrimRight(cfg.Client.BaseURL, "/") + "/api"
	c, err := collection.New[map[string]any](client.New[map[string]any](cfg.Client, fetcherOpts...), &collection.Options{
		PageSize:  cfg.Client.PageSize,
		EchoCount: cfg.Client.EchoCount,
		BaseURL: collection.Computed(func(collection.Window) string {
			return root + r.Path(opts.parent)
		}),
	})
	if err != nil {
		return err
	}

	var printErr error
	unsubscribe := c.Subscribe(func(s collection.Snapshot[map[string]any]) {
		if printErr == nil {
			printErr = printPage(out, s, opts.table)
		}
	})
	defer unsubscribe()

	wait := func(op *collection.Operation, err error) error {
		if err != nil || op == nil {
			return err
		}
		waitCtx, cancel := context.WithTimeout(ctx, cfg.Client.Timeout+5*time.Second)
		defer cancel()
		return op.Wait(waitCtx)
	}

	if err := wait(c.GoToPage(ctx, opts.page)); err != nil {
		return err
	}
	for opts.all && printErr == nil && c.PageInfo().HasNext() {
		if err := wait(c.NextPage(ctx)); err != nil {
			return err
		}
	}
	return printErr
}

func printPage(out io.Writer, s collection.Snapshot[map[string]any], table bool) error {
	info := s.Info()
	if _, err := fmt.Fprintf(out, "# page %d/%d, records %d-%d of %d\n",
		info.PageNumber, info.PageCount, info.Range[0], info.Range[1], info.EntryCount); err != nil {
		return err
	}

	if !table {
		enc := json.NewEncoder(out)
		for _, item := range s.Items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, item := range s.Items {
		fmt.Fprintf(tw, "%v\t%v\n", item["id"], item["name"])
	}
	return tw.Flush()
}

func joinResources(rs []appliance.Resource) string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
