/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package order

import (
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/slices"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	columnStyleNumber = iota
	columnSize
	columnColor
	columnItemName
	columnItemCode
	columnQty
	columnLastSerial

	numColumns
)

// ItemCodeHeader is the title of the GTIN column in spreadsheet exports
const ItemCodeHeader = "Item Code"

// ParsePasted parses tab separated order lines, as copied from a spreadsheet,
// in the order: Style, Size, Color, Item Name, Item Code, Qty, Last Serial.
//
// Lines with fewer columns are skipped, as is a header line. An empty Last
// Serial is replaced by defaultLastSerial. Lines whose quantity cannot be read
// are returned as errors, identified by line number, and do not prevent the
// other lines from being parsed.
func ParsePasted(data string, defaultLastSerial string) ([]InputRow, []error) {
	var rows []InputRow
	var lineErrs []error

	// only line breaks are trimmed; a trailing tab is an empty Last Serial
	lines := strings.Split(strings.Trim(data, "\r\n"), "\n")
	for i, line := range lines {
		lineNum := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := slices.Map(strings.Split(strings.TrimRight(line, "\r"), "\t"), strings.TrimSpace)

		if len(parts) < numColumns {
			log.WithFields(log.Fields{
				"Method":  "ParsePasted",
				"Line":    lineNum,
				"Columns": len(parts),
			}).Debug(ErrTooFewColumns.Error())
			continue
		}

		if i == 0 && slices.Contains(parts, ItemCodeHeader) {
			continue
		}

		row, err := parseColumns(parts, defaultLastSerial)
		if err != nil {
			lineErrs = append(lineErrs, errors.Wrapf(err, "line %d", lineNum))
			continue
		}
		rows = append(rows, row)
	}

	return rows, lineErrs
}

func parseColumns(parts []string, defaultLastSerial string) (InputRow, error) {
	row := InputRow{
		StyleNumber: parts[columnStyleNumber],
		Size:        parts[columnSize],
		Color:       parts[columnColor],
		ItemName:    parts[columnItemName],
		ItemCode:    parts[columnItemCode],
		LastSerial:  parts[columnLastSerial],
	}

	qty, err := parseQty(parts[columnQty])
	if err != nil {
		return InputRow{}, err
	}
	row.QtyToGenerate = qty

	if row.LastSerial == "" {
		row.LastSerial = defaultLastSerial
	}
	return row, nil
}

func parseQty(value string) (int, error) {
	qty, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidQuantity, "qty '%s'", value)
	}
	if qty < 0 {
		return 0, errors.Wrapf(ErrInvalidQuantity, "qty %d", qty)
	}
	return qty, nil
}
