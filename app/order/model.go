/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package order

import "github.com/pkg/errors"

const (
	// EmptyField is rendered in place of a missing item name or color
	EmptyField = "-"
)

var (
	// ErrInvalidQuantity occurs when the quantity to generate is not a
	// non-negative integer
	ErrInvalidQuantity = errors.New("quantity must be a non-negative integer")

	// ErrTooFewColumns occurs when a pasted line does not carry every column
	ErrTooFewColumns = errors.New("line does not have enough columns")
)

// InputRow is a single line of order data, in the column order of the
// spreadsheet it is pasted from
type InputRow struct {
	StyleNumber   string `json:"style_number"`
	Size          string `json:"size"`
	Color         string `json:"color"`
	ItemName      string `json:"item_name"`
	ItemCode      string `json:"item_code"` // GTIN
	QtyToGenerate int    `json:"qty"`
	LastSerial    string `json:"last_serial"`
}

// Record is one generated SGTIN along with the row it was generated for
type Record struct {
	StyleNumber string `json:"style_number"`
	ItemName    string `json:"item_name"`
	Color       string `json:"color"`
	Size        string `json:"size"`
	ItemCode    string `json:"item_code"`
	Serial      uint64 `json:"serial"`
	SGTIN       string `json:"sgtin"`
}

// Entry is an input row with everything generated for it. Err is set when
// the row could not be fully generated; Records then holds the records that
// were generated before the failure.
type Entry struct {
	InputRow
	ID      string   `json:"id"`
	Records []Record `json:"records"`
	Err     error    `json:"-"`
}

// OK returns true if the entry was generated without error
func (e Entry) OK() bool {
	return e.Err == nil
}

// NewRecord builds the record for serial and sgtin of row
func (row InputRow) NewRecord(serial uint64, sgtin string) Record {
	return Record{
		StyleNumber: row.StyleNumber,
		ItemName:    orEmptyField(row.ItemName),
		Color:       orEmptyField(row.Color),
		Size:        row.Size,
		ItemCode:    row.ItemCode,
		Serial:      serial,
		SGTIN:       sgtin,
	}
}

func orEmptyField(value string) string {
	if value == "" {
		return EmptyField
	}
	return value
}
