package main

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"log"
	"time"

	"golang.org/x/net/context"

	hw "github.com/skypies/util/handlerware"

	"github.com/skypies/manifestdb/source"
	"github.com/skypies/manifestdb/ui"
)

var (
	tmpl *template.Template // Singleton that belongs to the webapp

	Config = source.Config{
		DataDir:  os.Getenv("KBC_DATADIR"),
		Endpoint: os.Getenv("KBC_URL"),
		Token:    os.Getenv("KBC_TOKEN"),
		TableID:  os.Getenv("TABLE_ID"),
	}
)

func init() {
	if Config.DataDir == "" {
		Config.DataDir = "/data/"
	}
	if Config.Endpoint == "" {
		Config.Endpoint = "https://connection.keboola.com"
	}

	// Templates live under the webapp's main dir; relative dirnames are
	// relative to the root of the git repo.
	tmpl = hw.ParseRecursive(template.New("").Funcs(ui.TemplateFuncMap()), "app/frontend/templates")

	cache := source.NewCache(Config)

	ctxMaker := func(r *http.Request) context.Context {
		ctx, _ := context.WithTimeout(r.Context(), 55*time.Second)
		return ctx
	}

	http.HandleFunc("/", ui.DashboardHandler(tmpl))

	// ui/api.go
	http.HandleFunc("/api/stats", ui.WithManifest(ctxMaker, cache, ui.StatsHandler))
	http.HandleFunc("/api/by-class", ui.WithManifest(ctxMaker, cache, ui.ByClassHandler))
	http.HandleFunc("/api/by-gender", ui.WithManifest(ctxMaker, cache, ui.ByGenderHandler))
	http.HandleFunc("/api/by-port", ui.WithManifest(ctxMaker, cache, ui.ByPortHandler))
	http.HandleFunc("/api/by-age-group", ui.WithManifest(ctxMaker, cache, ui.ByAgeGroupHandler))
	http.HandleFunc("/api/heatmap", ui.WithManifest(ctxMaker, cache, ui.HeatmapHandler))
	http.HandleFunc("/api/route", ui.WithManifest(ctxMaker, cache, ui.RouteHandler))

	// ui/passengers.go
	http.HandleFunc("/api/passengers", ui.WithManifest(ctxMaker, cache, ui.PassengersHandler))

	// ui/health.go
	http.HandleFunc("/api/health", ui.WithManifest(ctxMaker, cache, ui.HealthHandler(Config)))

	// ui/pdf.go
	http.HandleFunc("/report/summary.pdf", ui.WithManifest(ctxMaker, cache, ui.SummaryPDFHandler))
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fs := http.FileServer(http.Dir("./app/frontend/static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	log.Printf("Listening on port %s [manifestdb/app/frontend]", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", port), nil))
}
