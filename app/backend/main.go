package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/context"

	"github.com/skypies/manifestdb/source"
	"github.com/skypies/manifestdb/ui"
)

var (
	// The 'src' project hosts the staging bucket; the 'dest' project
	// hosts the bigquery dataset. The src service account needs editor
	// on dest to submit load jobs.
	folderGCS         = os.Getenv("GCS_BUCKET")
	bigqueryProject   = os.Getenv("BIGQUERY_PROJECT")
	bigqueryDataset   = os.Getenv("BIGQUERY_DATASET")
	bigqueryTableName = os.Getenv("BIGQUERY_TABLE")

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
	if bigqueryDataset == "" {
		bigqueryDataset = "public"
	}
	if bigqueryTableName == "" {
		bigqueryTableName = "manifest"
	}

	cache := source.NewCache(Config)

	// Publish jobs can run long; far longer than an interactive request.
	ctxMaker := func(r *http.Request) context.Context {
		ctx, _ := context.WithTimeout(r.Context(), 595*time.Second)
		return ctx
	}

	// bigquery.go
	http.HandleFunc("/backend/publish-manifest", ui.WithManifest(ctxMaker, cache, publishManifestHandler))

	// ui/health.go
	http.HandleFunc("/api/health", ui.WithManifest(ctxMaker, cache, ui.HealthHandler(Config)))
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Listening on port %s [manifestdb/app/backend]", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", port), nil))
}
