// This package obtains the raw manifest from wherever it lives (a mounted
// input directory, a storage-API export, or a GCS bucket), normalizes it,
// and caches the resulting table for the process lifetime.
package source

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable means no usable source is configured or reachable.
// Queries are dead in the water until the configuration is fixed; we never
// retry automatically.
var ErrDataUnavailable = errors.New("no manifest data available")

type Config struct {
	DataDir  string // root of the mounted input tree; CSVs live under in/tables/
	Endpoint string // storage API base URL
	Token    string // storage API token; never logged
	TableID  string // table to export; a gs://bucket/prefix value fetches from GCS instead
}

// MissingValues names the config that would be needed for a remote fetch,
// for the health endpoint. Values themselves are never included.
func (cfg Config) MissingValues() []string {
	missing := []string{}
	if cfg.Token == "" {
		missing = append(missing, "KBC_TOKEN")
	}
	if cfg.TableID == "" {
		missing = append(missing, "TABLE_ID")
	}
	return missing
}

func (cfg Config) unavailableErr() error {
	return fmt.Errorf("%w: no CSVs under %s, and remote config missing %v",
		ErrDataUnavailable, cfg.tablesDir(), cfg.MissingValues())
}
