package source

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	mdb "github.com/skypies/manifestdb"
	"github.com/skypies/manifestdb/csvdata"
)

const remoteFetchTimeout = 60 * time.Second

// {{{ cfg.Load

// Load tries each source in order and returns the first table it can get:
// mounted input files first, then the remote export. Each branch is a
// single attempt; both are deterministic presence checks, so there is
// nothing to retry.
func (cfg Config) Load(ctx context.Context) (*mdb.Table, error) {
	if name := cfg.firstLocalCSV(); name != "" {
		return cfg.loadLocalFile(name)
	}

	if strings.HasPrefix(cfg.TableID, "gs://") {
		return cfg.loadFromGCS(ctx)
	}

	if cfg.Token != "" && cfg.TableID != "" {
		return cfg.loadFromStorageAPI(ctx)
	}

	return nil, cfg.unavailableErr()
}

// }}}

// {{{ cfg.firstLocalCSV

func (cfg Config) tablesDir() string {
	return filepath.Join(cfg.DataDir, "in", "tables")
}

// Returns the lexicographically first CSV in the input mapping, or "".
func (cfg Config) firstLocalCSV() string {
	entries, err := os.ReadDir(cfg.tablesDir())
	if err != nil {
		return ""
	}

	names := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}

	sort.Strings(names)
	return filepath.Join(cfg.tablesDir(), names[0])
}

// }}}
// {{{ cfg.loadLocalFile

func (cfg Config) loadLocalFile(name string) (*mdb.Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, name, err)
	}
	defer f.Close()

	t, err := csvdata.ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %v", name, err)
	}
	return t, nil
}

// }}}

// {{{ cfg.loadFromGCS

// The table export may live in a GCS bucket; take the lexicographically
// first CSV under the prefix, gunzipping if needed.
func (cfg Config) loadFromGCS(ctx context.Context) (*mdb.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, remoteFetchTimeout)
	defer cancel()

	bucketName, prefix, found := strings.Cut(strings.TrimPrefix(cfg.TableID, "gs://"), "/")
	if !found {
		bucketName = strings.TrimPrefix(cfg.TableID, "gs://")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: GCS client: %v", ErrDataUnavailable, err)
	}
	defer client.Close()

	bucket := client.Bucket(bucketName)

	names := []string{}
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: GCS-List gs://%s/%s: %v", ErrDataUnavailable, bucketName, prefix, err)
		}
		if strings.HasSuffix(attrs.Name, ".csv") || strings.HasSuffix(attrs.Name, ".csv.gz") {
			names = append(names, attrs.Name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no CSVs under gs://%s/%s", ErrDataUnavailable, bucketName, prefix)
	}
	sort.Strings(names)

	gcsReader, err := bucket.Object(names[0]).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: GCS-Open gs://%s/%s: %v", ErrDataUnavailable, bucketName, names[0], err)
	}
	defer gcsReader.Close()

	var rdr io.Reader = gcsReader
	if strings.HasSuffix(names[0], ".gz") {
		gzipReader, err := gzip.NewReader(gcsReader)
		if err != nil {
			return nil, fmt.Errorf("GCS-Open+GZ gs://%s/%s: %v", bucketName, names[0], err)
		}
		rdr = gzipReader
	}

	t, err := csvdata.ReadTable(rdr)
	if err != nil {
		return nil, fmt.Errorf("parse gs://%s/%s: %v", bucketName, names[0], err)
	}
	return t, nil
}

// }}}
// {{{ cfg.loadFromStorageAPI

// Fetch a CSV export of the table via the storage API. One shot, bounded
// by a timeout; a down API surfaces as ErrDataUnavailable, not a hang.
func (cfg Config) loadFromStorageAPI(ctx context.Context) (*mdb.Table, error) {
	url := strings.TrimSuffix(cfg.Endpoint, "/") +
		"/v2/storage/tables/" + cfg.TableID + "/data-preview?format=rfc"

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-StorageApi-Token", cfg.Token)

	client := http.Client{Timeout: remoteFetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: export %s: %v", ErrDataUnavailable, cfg.TableID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: export %s: bad status: %v", ErrDataUnavailable, cfg.TableID, resp.Status)
	}

	t, err := csvdata.ReadTable(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse export %s: %v", cfg.TableID, err)
	}
	return t, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
