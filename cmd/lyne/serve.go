package main

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/matryer/way"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/lyne/internal/adapters/http"
	"svw.info/lyne/internal/config"
	"svw.info/lyne/internal/generator"
	"svw.info/lyne/internal/hint"
	"svw.info/lyne/internal/infrastructure/storage"
	"svw.info/lyne/internal/ports"
	"svw.info/lyne/internal/solver"
	"svw.info/lyne/internal/usecase"
	"svw.info/lyne/internal/validator"
	"svw.info/lyne/web"
)

var (
	flagAddr    string
	flagDataDir string
	flagConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if flagConfig != "" {
			var err error
			if cfg, err = config.Load(flagConfig); err != nil {
				return err
			}
		}
		// Flags the user set beat the file; untouched flags keep the file's values.
		fl := cmd.Flags()
		if fl.Changed("addr") {
			cfg.Addr = flagAddr
		}
		if fl.Changed("data") {
			cfg.DataDir = flagDataDir
		}
		root := cmd.Root().PersistentFlags()
		if root.Changed("engine") {
			cfg.Solver.Engine = flagEngine
		}
		if root.Changed("conn") {
			cfg.Solver.Conn = flagConn
		}
		if root.Changed("max-nodes") {
			cfg.Solver.MaxNodes = flagMaxNodes
		}
		if root.Changed("workers") {
			cfg.Solver.Workers = flagWorkers
		}
		if !root.Changed("log-level") {
			if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
				logrus.SetLevel(lvl)
			}
		}
		logger := logrus.StandardLogger()

		s, err := serverSolver(cfg.Solver)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return err
		}

		gen := generator.NewWalkGenerator(s)
		val := validator.New()
		st := storage.NewFS(cfg.DataDir)
		hin := hint.NewNextStep(s)
		uc := usecase.NewService(s, gen, val, hin, st)
		h := httpadapter.New(uc, logger)

		tmpl := web.Templates()

		router := way.NewRouter()
		router.Handle("GET", "/static/...", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
		router.HandleFunc("GET", "/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := tmpl.ExecuteTemplate(w, "index.tmpl", map[string]any{}); err != nil {
				http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
			}
		})
		h.Register(router)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           requestLogger(logger, router),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.WithFields(logrus.Fields{
			"addr":   cfg.Addr,
			"data":   cfg.DataDir,
			"engine": cfg.Solver.Engine,
			"conn":   cfg.Solver.Conn,
		}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// serverSolver builds the engine from the resolved config rather than the
// raw flags, so a config file alone is enough to run the server.
func serverSolver(sc config.Solver) (ports.Solver, error) {
	conn, err := connectivity(sc.Conn)
	if err != nil {
		return nil, err
	}
	switch sc.Engine {
	case "", "backtrack", "backtracking":
		s := solver.NewBacktrackingSolver()
		s.Conn = conn
		s.MaxNodes = sc.MaxNodes
		return s, nil
	case "parallel":
		s := solver.NewParallelSolver(sc.Workers)
		s.Conn = conn
		s.MaxNodes = sc.MaxNodes
		return s, nil
	default:
		return nil, errors.New("unknown engine " + sc.Engine)
	}
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&flagDataDir, "data", "./data", "save directory")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.AddCommand(serveCmd)
}
