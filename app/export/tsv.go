/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/order"
	"github.com/pkg/errors"
)

// Header holds the column titles of an exported table
var Header = []string{
	"Style Number",
	"Item Name",
	"Color",
	"Size",
	"Item Code",
	"Serial",
	"SGTIN-96 Hex (EPC Memory Bank Contents)",
}

// WriteTSV writes records as tab separated lines, preceded by Header when
// header is true.
func WriteTSV(out io.Writer, records []order.Record, header bool) error {
	bw := bufio.NewWriter(out)

	if header {
		if err := writeLine(bw, Header); err != nil {
			return err
		}
	}
	for _, r := range records {
		if err := writeLine(bw, []string{
			r.StyleNumber,
			r.ItemName,
			r.Color,
			r.Size,
			r.ItemCode,
			strconv.FormatUint(r.Serial, 10),
			r.SGTIN,
		}); err != nil {
			return err
		}
	}
	return errors.Wrap(bw.Flush(), "unable to write records")
}

// WriteEntries writes the records of every successful entry as one table.
func WriteEntries(out io.Writer, entries []order.Entry, header bool) error {
	var records []order.Record
	for _, e := range entries {
		if e.OK() {
			records = append(records, e.Records...)
		}
	}
	return WriteTSV(out, records, header)
}

func writeLine(bw *bufio.Writer, fields []string) error {
	if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
		return errors.Wrap(err, "unable to write records")
	}
	return nil
}
