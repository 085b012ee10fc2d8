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

// Package service serves charts defined by YAML files under a directory.
package service

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"sync"

	chartdef "github.com/cuioss/cui-jsf-components-sub005/chart_def"
	"github.com/cuioss/cui-jsf-components-sub005/handlers"
	"github.com/cuioss/cui-jsf-components-sub005/page"
	renderdispatcher "github.com/cuioss/cui-jsf-components-sub005/render_dispatcher"
	"github.com/hashicorp/golang-lru/simplelru"
	"go.uber.org/zap"
)

// DefinitionExt is the file extension of chart definitions.
const DefinitionExt = ".yaml"

type definitionFetcher struct {
	definitionRoot string
	metrics        *Metrics
	mu             sync.Mutex
	lru            *simplelru.LRU
}

func newDefinitionFetcher(definitionRoot string, cap int, metrics *Metrics) (*definitionFetcher, error) {
	lru, err := simplelru.NewLRU(cap, nil /* no onEvict policy */)
	if err != nil {
		return nil, err
	}
	return &definitionFetcher{
		definitionRoot: definitionRoot,
		metrics:        metrics,
		lru:            lru,
	}, nil
}

// Fetch returns the named chart definition, loading it from the definition
// root on a cache miss.  Names must be local, slash-separated paths without
// the definition extension.
func (df *definitionFetcher) Fetch(name string) (*chartdef.Definition, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("chart `%s`: %w", name, fs.ErrNotExist)
	}
	df.mu.Lock()
	defer df.mu.Unlock()
	defIf, ok := df.lru.Get(name)
	if ok {
		def, ok := defIf.(*chartdef.Definition)
		if !ok {
			return nil, fmt.Errorf("fetched definition wasn't a chart definition")
		}
		df.metrics.cacheLookups.WithLabelValues("hit").Inc()
		return def, nil
	}
	df.metrics.cacheLookups.WithLabelValues("miss").Inc()
	def, err := chartdef.LoadFile(filepath.Join(df.definitionRoot, filepath.FromSlash(name)+DefinitionExt))
	if err != nil {
		return nil, err
	}
	// Definitions are named by their path under the root.
	def.Name = name
	df.lru.Add(name, def)
	return def, nil
}

// Config configures a Service.
type Config struct {
	// DefinitionRoot is the directory chart definitions are loaded from.
	DefinitionRoot string
	// PluginBase is the URL plugin scripts are loaded from by chart pages.
	PluginBase string
	// CacheSize is the number of parsed definitions kept in memory.
	CacheSize int
	// RenderLimit bounds the number of charts rendered concurrently per
	// request.  Zero means no limit.
	RenderLimit int
	Logger      *zap.Logger
	Metrics     *Metrics
}

// Service renders and serves charts.
type Service struct {
	fetcher      *definitionFetcher
	dispatcher   *renderdispatcher.Dispatcher
	chartHandler handlers.ChartHandler
	logger       *zap.Logger
	metrics      *Metrics
}

// New returns a new Service.  A nil Logger discards logs, and nil Metrics
// are created but not registered anywhere.
func New(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	df, err := newDefinitionFetcher(cfg.DefinitionRoot, cfg.CacheSize, metrics)
	if err != nil {
		return nil, err
	}
	s := &Service{
		fetcher:    df,
		dispatcher: renderdispatcher.New(cfg.RenderLimit),
		logger:     logger,
		metrics:    metrics,
	}
	s.chartHandler = handlers.NewChartHandler(s, page.New(cfg.PluginBase))
	return s, nil
}

// RenderChart renders the named chart.
func (s *Service) RenderChart(ctx context.Context, name string) (*renderdispatcher.Rendered, error) {
	rendered, err := s.RenderCharts(ctx, name)
	if err != nil {
		return nil, err
	}
	return rendered[0], nil
}

// RenderCharts renders the named charts, in order.  It implements
// handlers.ChartSource.
func (s *Service) RenderCharts(ctx context.Context, names ...string) ([]*renderdispatcher.Rendered, error) {
	logger := s.logger
	if req, err := handlers.RequestOf(ctx); err == nil && req != nil {
		logger = logger.With(zap.String("remote", req.RemoteAddr))
	}
	rendered, err := s.renderCharts(ctx, names)
	if err != nil {
		s.metrics.renders.WithLabelValues("error").Inc()
		logger.Warn("Chart rendering failed", zap.Strings("charts", names), zap.Error(err))
		return nil, err
	}
	s.metrics.renders.WithLabelValues("ok").Add(float64(len(rendered)))
	logger.Debug("Rendered charts", zap.Strings("charts", names))
	return rendered, nil
}

func (s *Service) renderCharts(ctx context.Context, names []string) ([]*renderdispatcher.Rendered, error) {
	srcs := make([]renderdispatcher.Source, len(names))
	for idx, name := range names {
		def, err := s.fetcher.Fetch(name)
		if err != nil {
			return nil, err
		}
		srcs[idx] = def
	}
	return s.dispatcher.RenderAll(ctx, srcs...)
}

// RegisterHandlers registers the Service's chart handlers on the provided
// mux.
func (s *Service) RegisterHandlers(mux *http.ServeMux) {
	for path, handler := range s.chartHandler.HandlersByPath() {
		mux.HandleFunc(path, handler)
	}
}
