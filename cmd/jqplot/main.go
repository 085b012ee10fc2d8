/*
	Copyright 2025 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package main provides the jqplot command: rendering chart definitions from
// the command line, and serving them over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	chartdef "github.com/cuioss/cui-jsf-components-sub005/chart_def"
	"github.com/cuioss/cui-jsf-components-sub005/page"
	renderdispatcher "github.com/cuioss/cui-jsf-components-sub005/render_dispatcher"
	"github.com/cuioss/cui-jsf-components-sub005/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "jqplot",
		Short:        "Render jqPlot charts from YAML definitions",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRenderCommand(), newServeCommand())
	return rootCmd
}

func newRenderCommand() *cobra.Command {
	var (
		html        bool
		pluginBase  string
		renderLimit int
	)
	cmd := &cobra.Command{
		Use:   "render [definition.yaml...]",
		Short: "Render chart definitions",
		Long: `Render renders each chart definition, then prints the chart statements
followed by the plugin scripts they require, one per line.  With --html, it
prints an HTML block loading the plugins and running the charts instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs := make([]renderdispatcher.Source, len(args))
			for idx, path := range args {
				def, err := chartdef.LoadFile(path)
				if err != nil {
					return fmt.Errorf("failed to load %s: %w", path, err)
				}
				srcs[idx] = def
			}
			rendered, err := renderdispatcher.New(renderLimit).RenderAll(cmd.Context(), srcs...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if html {
				block, err := page.New(pluginBase).Charts(rendered...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, block.String())
				return nil
			}
			for _, r := range rendered {
				fmt.Fprintln(out, r.Script)
			}
			for _, p := range renderdispatcher.MergePlugins(rendered...) {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&html, "html", false, "Print an HTML block instead of bare statements")
	cmd.Flags().StringVar(&pluginBase, "plugin-base", page.DefaultPluginBase, "URL plugin scripts are loaded from")
	cmd.Flags().IntVar(&renderLimit, "render-limit", 0, "Maximum number of charts rendered concurrently (0: no limit)")
	return cmd
}

type serveFlags struct {
	port        int
	chartRoot   string
	pluginBase  string
	pluginDir   string
	cacheSize   int
	renderLimit int
	debug       bool
}

func newServeCommand() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve charts over HTTP",
		Long: `Serve serves the chart definitions under --chart-root.  Charts are
requested by their path under the root, without the .yaml extension:

  /GetChart?name=team/sales      JSON {script, plugins}
  /GetChartPage?name=team/sales  HTML block
  /metrics                       Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), flags)
		},
	}
	cmd.Flags().IntVar(&flags.port, "port", 7410, "Port to serve charts on")
	cmd.Flags().StringVar(&flags.chartRoot, "chart-root", ".", "The root path for chart definitions")
	cmd.Flags().StringVar(&flags.pluginBase, "plugin-base", page.DefaultPluginBase, "URL plugin scripts are loaded from")
	cmd.Flags().StringVar(&flags.pluginDir, "plugin-dir", "", "If set, serve plugin scripts from this directory under --plugin-base")
	cmd.Flags().IntVar(&flags.cacheSize, "cache-size", 64, "Number of parsed chart definitions kept in memory")
	cmd.Flags().IntVar(&flags.renderLimit, "render-limit", 8, "Maximum number of charts rendered concurrently per request")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func serve(ctx context.Context, flags *serveFlags) error {
	logger, err := newLogger(flags.debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics()
	registry.MustRegister(metrics)

	svc, err := service.New(service.Config{
		DefinitionRoot: flags.chartRoot,
		PluginBase:     flags.pluginBase,
		CacheSize:      flags.cacheSize,
		RenderLimit:    flags.renderLimit,
		Logger:         logger,
		Metrics:        metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to create chart service: %w", err)
	}

	mux := http.NewServeMux()
	svc.RegisterHandlers(mux)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if flags.pluginDir != "" {
		prefix := strings.TrimSuffix(flags.pluginBase, "/") + "/"
		mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(flags.pluginDir))))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", flags.port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Serving charts",
		zap.Int("port", flags.port),
		zap.String("chart_root", flags.chartRoot),
		zap.String("plugin_base", flags.pluginBase),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
