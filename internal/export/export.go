// Package export archives report snapshots to object storage so an
// administrator can keep point-in-time copies of the read-only views.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aerosys-mx/bookings-admin/internal/errs"
	"github.com/aerosys-mx/bookings-admin/internal/filestore"
	"github.com/aerosys-mx/bookings-admin/internal/logger"
)

// snapshot is the JSON document written to the bucket.
type snapshot struct {
	Report      string           `json:"report"`
	GeneratedAt time.Time        `json:"generated_at"`
	RowCount    int              `json:"row_count"`
	Rows        []map[string]any `json:"rows"`
}

// Archiver writes report snapshots into one bucket.
type Archiver struct {
	store  filestore.Store
	bucket string
	log    *logger.Logger
	now    func() time.Time
}

// New creates an Archiver writing to bucket through store.
func New(store filestore.Store, bucket string, log *logger.Logger) *Archiver {
	return &Archiver{store: store, bucket: bucket, log: log, now: time.Now}
}

// ArchiveReport encodes rows as a JSON snapshot and stores it under
// reports/<key>/<UTC timestamp>.json. Returns the object key.
func (a *Archiver) ArchiveReport(ctx context.Context, key string, rows []map[string]any) (string, error) {
	ts := a.now().UTC()

	doc, err := json.Marshal(snapshot{
		Report:      key,
		GeneratedAt: ts,
		RowCount:    len(rows),
		Rows:        rows,
	})
	if err != nil {
		return "", errs.Wrap(errs.ErrKindStorageFailed, "failed to encode report snapshot", err)
	}

	objectKey := fmt.Sprintf("reports/%s/%s.json", key, ts.Format("20060102T150405Z"))

	info, err := a.store.PutObject(ctx, a.bucket, objectKey,
		bytes.NewReader(doc), int64(len(doc)), "application/json")
	if err != nil {
		return "", err
	}

	a.log.InfoWith("report archived", map[string]any{
		"report": key,
		"object": info.Key,
		"bytes":  info.Size,
	})
	return objectKey, nil
}
