// File path: cmd/jafr/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jafrlab/jafr/internal/analysis"
	"github.com/jafrlab/jafr/internal/api"
	"github.com/jafrlab/jafr/internal/common"
	"github.com/jafrlab/jafr/internal/llm"
	"github.com/jafrlab/jafr/internal/narrative"
	"github.com/jafrlab/jafr/internal/sqlite"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("jafr: .env file not loaded", "error", err)
	} else {
		logger.Info("jafr: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the SQLite analysis archive")
	flag.Parse()

	logger.Info("jafr: startup initiated", "addr", *addr, "db", *dbPath)

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Error("jafr: sqlite open failed", "error", err)
		fmt.Println("sqlite error:", err)
		os.Exit(1)
	}
	defer store.Close()

	llmCfg := llm.LoadConfig()
	generator := narrative.NewGenerator(llmCfg)
	service := analysis.NewService(generator, store)

	server, err := api.NewServer(service, store, llmCfg)
	if err != nil {
		logger.Error("jafr: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("jafr: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("jafr: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("jafr: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultDBPath() string {
	return filepath.Join("data", "jafr.db")
}
