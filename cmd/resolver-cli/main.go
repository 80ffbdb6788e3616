// cmd/resolver-cli/main.go
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"intent-resolver/internal/common/config"
	commonerrors "intent-resolver/internal/common/errors"
	"intent-resolver/internal/common/httpx"
	"intent-resolver/internal/common/logger"
	"intent-resolver/internal/common/observability"
	"intent-resolver/internal/executor"
	"intent-resolver/internal/resolver"
	"intent-resolver/internal/resolver/dates"
	"intent-resolver/internal/resolver/model"
	"intent-resolver/internal/resolver/pattern"
	"intent-resolver/internal/resolver/segments"
	"intent-resolver/internal/resolver/validate"
	"intent-resolver/pkg/catalog"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting intent resolver...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Catalog ---
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			zapLog.Fatal("catalog load failed",
				zap.String("path", cfg.Catalog.Path),
				zap.Error(commonerrors.NewCatalogLoadFailedError(cfg.Catalog.Path, err)))
		}
	}
	zapLog.Info("Catalog loaded", zap.Int("operations", cat.Len()))

	// --- Resolution pipeline ---
	dr := dates.NewResolver(cfg.Resolver.DefaultYear)
	completionClient := model.NewClient(cfg.Completion, log)
	modelClassifier := model.NewClassifier(completionClient, cat, log)
	patternClassifier := pattern.NewClassifier(dr, segments.NewSegmentClassifier(), segments.NewCampaignClassifier())

	res := resolver.New(
		cat,
		modelClassifier,
		patternClassifier,
		resolver.NewReconciler(cat, dr),
		validate.New(cat, cfg.Resolver.DefaultYear),
		cfg.Resolver.MinQueryLength,
		resolver.Options{Logger: log, Observability: obs},
	)

	// connectivity probe, non-fatal: the resolver degrades to the
	// pattern path when the completion service is down
	probeCompletionService(cfg.Completion.BaseURL, zapLog)

	// --- Metrics & pprof endpoint ---
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			mux.Handle("/debug/pprof/", http.DefaultServeMux)
			zapLog.Info("Metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigs
		zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	runLoop(ctx, res, zapLog)
	zapLog.Info("Intent resolver stopped")
}

func probeCompletionService(baseURL string, zapLog *zap.Logger) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/tags", nil)
	if err != nil {
		zapLog.Warn("completion service probe skipped", zap.Error(err))
		return
	}
	resp, err := httpx.NewClient(3 * time.Second).Do(req)
	if err != nil {
		zapLog.Warn("completion service unreachable, pattern path only", zap.Error(err))
		return
	}
	resp.Body.Close()
	zapLog.Info("Completion service reachable", zap.String("base_url", baseURL))
}

func runLoop(ctx context.Context, res *resolver.Resolver, zapLog *zap.Logger) {
	fmt.Println("Nhập câu hỏi (quit/exit/thoát để dừng):")
	scanner := bufio.NewScanner(os.Stdin)

	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			query := strings.TrimSpace(line)
			switch strings.ToLower(query) {
			case "":
				continue
			case "quit", "exit", "thoát":
				return
			}
			handleQuery(ctx, res, query, zapLog)
		}
	}
}

func handleQuery(ctx context.Context, res *resolver.Resolver, query string, zapLog *zap.Logger) {
	result := res.Resolve(ctx, query, time.Now())
	printJSON(result)

	if result.Status != resolver.StatusReady {
		return
	}
	execResult, err := executor.Execute(ctx, result.Operation, result.Parameters)
	if err != nil {
		zapLog.Error("execution failed", zap.String("operation", result.Operation), zap.Error(err))
		return
	}
	printJSON(execResult)
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("marshal error:", err)
		return
	}
	fmt.Println(string(out))
}
