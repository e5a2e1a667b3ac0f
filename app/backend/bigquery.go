package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"

	"golang.org/x/net/context"

	"github.com/skypies/util/date"

	mdb "github.com/skypies/manifestdb"
	"github.com/skypies/manifestdb/source"
)

// {{{ publishManifestHandler

// /backend/publish-manifest
//  ?skipload=1  (write the GCS file, but don't submit the bigquery load job)
//
// Writes the normalized manifest into a dated JSON file in Cloud
// Storage, then submits a load request into BigQuery for that file.
func publishManifestHandler(ctx context.Context, cache *source.Cache, w http.ResponseWriter, r *http.Request) {
	tStart := time.Now()

	datestring := date.NowInPdt().Format("2006.01.02")
	filename := "manifest-" + datestring + ".json"

	t, err := cache.Table(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	n, err := writeBigQueryManifestGCSFile(ctx, t.Rows, folderGCS, filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.FormValue("skipload") == "" {
		if err := submitLoadJob(ctx, folderGCS, filename); err != nil {
			http.Error(w, "submitLoadJob failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(fmt.Sprintf("OK!\n%d passengers written to gs://%s/%s and job sent - took %s\n",
		n, folderGCS, filename, time.Since(tStart))))
}

// }}}

// {{{ writeBigQueryManifestGCSFile

// Returns number of records written (which is zero if the file already exists)
func writeBigQueryManifestGCSFile(ctx context.Context, rows []mdb.Passenger, foldername, filename string) (int, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	obj := client.Bucket(foldername).Object(filename)
	if _, err := obj.Attrs(ctx); err == nil {
		return 0, nil
	} else if err != storage.ErrObjectNotExist {
		return 0, err
	}

	gcsWriter := obj.NewWriter(ctx)
	gcsWriter.ContentType = "application/json"
	encoder := json.NewEncoder(gcsWriter)

	n := 0
	for _, p := range rows {
		n++
		if err := encoder.Encode(p.ForBigQuery()); err != nil {
			return 0, err
		}
	}

	if err := gcsWriter.Close(); err != nil {
		return 0, err
	}

	return n, nil
}

// }}}
// {{{ submitLoadJob

// https://cloud.google.com/bigquery/docs/loading-data-cloud-storage#bigquery-import-gcs-file-go
func submitLoadJob(ctx context.Context, gcsfolder, gcsfile string) error {
	client, err := bigquery.NewClient(ctx, bigqueryProject)
	if err != nil {
		return fmt.Errorf("Creating bigquery client: %v", err)
	}
	myDataset := client.Dataset(bigqueryDataset)
	destTable := myDataset.Table(bigqueryTableName)

	gcsSrc := bigquery.NewGCSReference(fmt.Sprintf("gs://%s/%s", gcsfolder, gcsfile))
	gcsSrc.SourceFormat = bigquery.JSON
	gcsSrc.AllowJaggedRows = true

	loader := destTable.LoaderFrom(gcsSrc)
	loader.CreateDisposition = bigquery.CreateNever
	job, err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("Submission of load job: %v", err)
	}

	time.Sleep(5 * time.Second)

	if status, err := job.Status(ctx); err != nil {
		return fmt.Errorf("Failure determining status: %v", err)
	} else if err := status.Err(); err != nil {
		detailedErrStr := ""
		for i, innerErr := range status.Errors {
			detailedErrStr += fmt.Sprintf(" [%2d] %v\n", i, innerErr)
		}
		return fmt.Errorf("Job error: %v\n--\n%s", err, detailedErrStr)
	}

	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
