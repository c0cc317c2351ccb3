package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/planarx/planargraph/pkg/config"
	"github.com/planarx/planargraph/pkg/engine/route"
	"github.com/planarx/planargraph/pkg/graph"
	"github.com/planarx/planargraph/pkg/parser"
	"github.com/planarx/planargraph/pkg/server/rest"
	"github.com/planarx/planargraph/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("engine", pflag.ExitOnError)
	fs.String("listen", ":5000", "server listen address")
	fs.String("graph", "graph.json", "graph file")
	fs.String("format", "json", "graph file format: json or osm")
	fs.Bool("coalesce", true, "coalesce degree-2 chains before serving")
	fs.Float64("precision", 25.0, "closest-point mesh sample spacing")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatal(err)
	}

	g, err := loadGraph(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("graph loaded: %d nodes, %d edges", len(g.GetAllNodes()), len(g.GetAllEdges()))

	if cfg.Coalesce {
		g, err = g.Coalesced()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("coalesced: %d nodes, %d edges", len(g.GetAllNodes()), len(g.GetAllEdges()))
	}
	g = g.WithClosestPointMesh(cfg.MeshPrecision)

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(rest.PromHttpMiddleware(m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	planner := route.NewRoutePlanner(g)
	navigatorSvc := service.NewNavigationService(g, planner)
	rest.NavigatorRouter(r, navigatorSvc)

	log.Printf("engine listening at %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}

func loadGraph(cfg *config.Config) (*graph.Graph, error) {
	if strings.EqualFold(cfg.Format, "osm") {
		return parser.LoadOSMGraph(cfg.GraphFile)
	}
	return parser.LoadJSONGraph(cfg.GraphFile)
}
