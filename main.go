package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/athapong/contract-analyzer/pkg/metrics"
	"github.com/athapong/contract-analyzer/pkg/review"
	"github.com/athapong/contract-analyzer/prompts"
	"github.com/athapong/contract-analyzer/resources"
	"github.com/athapong/contract-analyzer/services"
	"github.com/athapong/contract-analyzer/tools"
)

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	enableSSE := flag.Bool("sse", false, "Enable SSE server")
	sseAddr := flag.String("sse-addr", ":8080", "Address for SSE server to listen on")
	sseBasePath := flag.String("sse-base-path", "/mcp", "Base path for SSE endpoints")
	metricsAddr := flag.String("metrics-addr", "", "Address to serve Prometheus metrics on; empty disables")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("Warning: Error loading env file %s: %v\n", *envFile, err)
	}

	settings := services.DefaultSettings()

	// stdout carries the stdio transport, so logs go to stderr
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	logrus.SetOutput(os.Stderr)

	svc, err := review.NewFromSettings(settings, logger)
	if err != nil {
		logger.Fatalf("Failed to set up review service: %v", err)
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"contract-analyzer",
		"1.0.0",
		server.WithLogging(),
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(true),
		server.WithResourceCapabilities(true, true),
	)

	tools.RegisterToolManagerTool(mcpServer, settings)

	if settings.ToolEnabled("contract") {
		tools.RegisterContractTools(mcpServer, svc)
		prompts.RegisterContractPrompts(mcpServer)
	}

	if settings.ToolEnabled("structure") {
		tools.RegisterStructureTool(mcpServer, svc)
	}

	if settings.ToolEnabled("templates") {
		tools.RegisterTemplateTool(mcpServer)
		resources.RegisterTemplateResources(mcpServer)
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, logger)
	}

	// Check if SSE server should be enabled
	if *enableSSE || os.Getenv("ENABLE_SSE") == "true" {
		sseServer := server.NewSSEServer(
			mcpServer,
			server.WithBasePath(*sseBasePath),
			server.WithKeepAlive(true),
		)

		go func() {
			logger.Infof("Starting SSE server on %s with base path %s", *sseAddr, *sseBasePath)
			if err := sseServer.Start(*sseAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatalf("Failed to start SSE server: %v", err)
			}
		}()

		// Set up signal handling for graceful shutdown
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		sig := <-sigCh
		logger.Infof("Received signal %v, shutting down...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := sseServer.Shutdown(ctx); err != nil {
			logger.Errorf("Error during SSE server shutdown: %v", err)
		}
		logger.Info("SSE server shutdown complete")
	} else {
		if err := server.ServeStdio(mcpServer); err != nil {
			panic(fmt.Sprintf("Server error: %v", err))
		}
	}
}

func serveMetrics(addr string, logger *logrus.Logger) {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			metrics.UpdateSystemMetrics()
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Infof("Serving metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.WithError(err).Error("Metrics server stopped")
	}
}
