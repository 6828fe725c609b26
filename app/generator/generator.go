/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package generator

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/order"
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-utilities/go-metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const decimalBase = 10

// ErrQtyLimit occurs when a row asks for more records than configured
var ErrQtyLimit = errors.New("quantity exceeds the configured maximum per row")

// FirstSGTIN returns the SGTIN-96 of the first tag of a batch that continues
// after lastSerial.
func FirstSGTIN(gtin, lastSerial string) (string, error) {
	serial, err := encodingscheme.NextSerial(lastSerial)
	if err != nil {
		return "", err
	}
	return encodingscheme.Encode(gtin, serial)
}

// GenerateEntry generates QtyToGenerate records for row, serialized from
// LastSerial + 1 upwards. The first failure stops the row and is returned in
// the entry's Err.
func GenerateEntry(row order.InputRow) order.Entry {
	entry := order.Entry{
		InputRow: row,
		ID:       uuid.New().String(),
	}

	if limit := qtyLimit(); row.QtyToGenerate > limit {
		entry.Err = errors.Wrapf(ErrQtyLimit, "qty %d, maximum %d", row.QtyToGenerate, limit)
		return entry
	}

	firstSerial, err := encodingscheme.NextSerial(row.LastSerial)
	if err != nil {
		entry.Err = errors.Wrap(err, "unable to determine first serial")
		return entry
	}
	start, err := encodingscheme.ParseSerial(firstSerial)
	if err != nil {
		entry.Err = err
		return entry
	}

	entry.Records = make([]order.Record, 0, row.QtyToGenerate)
	for i := 0; i < row.QtyToGenerate; i++ {
		serial := start + uint64(i)
		sgtin, err := encodingscheme.Encode(row.ItemCode, strconv.FormatUint(serial, decimalBase))
		if err != nil {
			entry.Err = errors.Wrapf(err, "unable to encode serial %d", serial)
			return entry
		}
		entry.Records = append(entry.Records, row.NewRecord(serial, sgtin))
	}
	return entry
}

// qtyLimit is the configured maximum per row, never above MaxQtyPerRowLimit
func qtyLimit() int {
	limit := config.AppConfig.MaxQtyPerRow
	if limit < 1 || limit > config.MaxQtyPerRowLimit {
		return config.MaxQtyPerRowLimit
	}
	return limit
}

// GenerateBatch generates every row on a pool of workers. Entries are returned
// in the order of rows; a failed row is reported in its entry's Err and does
// not affect the other rows. If ctx is done before every row is dispatched,
// the context's error is returned.
func GenerateBatch(ctx context.Context, rows []order.InputRow, workers int) ([]order.Entry, error) {
	metrics.GetOrRegisterGauge(`SGTIN.Generate.Attempt`, nil).Update(1)
	mSuccess := metrics.GetOrRegisterGauge(`SGTIN.Generate.Success`, nil)
	mRowErr := metrics.GetOrRegisterGauge(`SGTIN.Generate.Row-Error`, nil)
	mLatency := metrics.GetOrRegisterTimer(`SGTIN.Generate.Latency`, nil)
	mRecords := metrics.GetOrRegisterMeter(`SGTIN.Generate.Records`, nil)

	if workers < 1 {
		workers = 1
	}

	generateTimer := time.Now()
	entries := make([]order.Entry, len(rows))
	jobs := make(chan int)
	interrupted := false

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				entries[i] = GenerateEntry(rows[i])
			}
		}()
	}

dispatch:
	for i := range rows {
		// a cancelled ctx wins over an idle worker
		select {
		case <-ctx.Done():
			interrupted = true
			break dispatch
		default:
		}
		select {
		case <-ctx.Done():
			interrupted = true
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if interrupted {
		return nil, errors.Wrap(ctx.Err(), "generation interrupted")
	}
	mLatency.Update(time.Since(generateTimer))

	var failed int64
	for _, entry := range entries {
		mRecords.Mark(int64(len(entry.Records)))
		if !entry.OK() {
			failed++
			log.WithFields(log.Fields{
				"Method":   "GenerateBatch",
				"Style":    entry.StyleNumber,
				"ItemCode": entry.ItemCode,
				"Error":    fmt.Sprintf("%+v", entry.Err),
			}).Warn("unable to generate row")
		}
	}
	mRowErr.Update(failed)
	mSuccess.Update(int64(len(entries)) - failed)

	log.WithFields(log.Fields{
		"Method":  "GenerateBatch",
		"Rows":    len(entries),
		"Failed":  failed,
		"Workers": workers,
	}).Debug("batch generated")

	return entries, nil
}
