/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package order

import (
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

const pasted = "ST-100\tM\tNavy\tCrew Tee\t5057877131530\t3\t9000\n" +
	"ST-101\tL\t\t\t00888446100818\t2\t\r\n" +
	"\n" +
	"short\tline\n"

func TestParsePasted(t *testing.T) {
	w := expect.WrapT(t)

	rows, errs := ParsePasted(pasted, "9000")
	w.ShouldBeEqual(len(errs), 0)
	w.ShouldBeEqual(len(rows), 2)

	w.As("first row").ShouldBeEqual(rows[0], InputRow{
		StyleNumber:   "ST-100",
		Size:          "M",
		Color:         "Navy",
		ItemName:      "Crew Tee",
		ItemCode:      "5057877131530",
		QtyToGenerate: 3,
		LastSerial:    "9000",
	})

	w.As("second row").ShouldBeEqual(rows[1], InputRow{
		StyleNumber:   "ST-101",
		Size:          "L",
		ItemCode:      "00888446100818",
		QtyToGenerate: 2,
		LastSerial:    "9000",
	})
}

func TestParsePastedDefaultLastSerial(t *testing.T) {
	w := expect.WrapT(t)

	rows, errs := ParsePasted("A\tS\tRed\tCap\t123\t1\t", "12345")
	w.ShouldBeEqual(len(errs), 0)
	w.ShouldBeEqual(len(rows), 1)
	w.ShouldBeEqual(rows[0].LastSerial, "12345")
}

func TestParsePastedEmptyEdgeCells(t *testing.T) {
	w := expect.WrapT(t)

	data := "\t\tRed\tCap\t123\t1\t9000\n" +
		"ST-2\tS\tRed\tCap\t123\t1\t\r\n"
	rows, errs := ParsePasted(data, "500")
	w.ShouldBeEqual(len(errs), 0)
	w.ShouldBeEqual(len(rows), 2)

	w.As("leading empty cells").ShouldBeEqual(rows[0].StyleNumber, "")
	w.As("leading empty cells").ShouldBeEqual(rows[0].ItemCode, "123")
	w.As("trailing empty serial").ShouldBeEqual(rows[1].LastSerial, "500")
}

func TestParsePastedSkipsHeader(t *testing.T) {
	w := expect.WrapT(t)

	data := "Style\tSize\tColor\tItem Name\tItem Code\tQty\tLast Serial\n" +
		"ST-100\tM\tNavy\tCrew Tee\t5057877131530\t3\t9000"
	rows, errs := ParsePasted(data, "9000")
	w.ShouldBeEqual(len(errs), 0)
	w.ShouldBeEqual(len(rows), 1)
	w.ShouldBeEqual(rows[0].StyleNumber, "ST-100")
}

func TestParsePastedInvalidQty(t *testing.T) {
	w := expect.WrapT(t)

	data := "ST-100\tM\tNavy\tCrew Tee\t5057877131530\tten\t9000\n" +
		"ST-101\tM\tNavy\tCrew Tee\t5057877131530\t-2\t9000\n" +
		"ST-102\tM\tNavy\tCrew Tee\t5057877131530\t4\t9000"
	rows, errs := ParsePasted(data, "9000")

	w.ShouldBeEqual(len(rows), 1)
	w.ShouldBeEqual(rows[0].StyleNumber, "ST-102")
	w.ShouldBeEqual(len(errs), 2)
	for _, err := range errs {
		w.ShouldBeEqual(errors.Cause(err), ErrInvalidQuantity)
	}
}

func TestParsePastedEmpty(t *testing.T) {
	w := expect.WrapT(t)

	rows, errs := ParsePasted("  \n ", "9000")
	w.ShouldBeEqual(len(rows), 0)
	w.ShouldBeEqual(len(errs), 0)
}

func TestNewRecordFillsEmptyFields(t *testing.T) {
	w := expect.WrapT(t)

	row := InputRow{StyleNumber: "ST-1", Size: "XL", ItemCode: "123"}
	record := row.NewRecord(9001, "303400000000030000002329")

	w.ShouldBeEqual(record.ItemName, EmptyField)
	w.ShouldBeEqual(record.Color, EmptyField)
	w.ShouldBeEqual(record.Size, "XL")
	w.ShouldBeEqual(record.Serial, uint64(9001))
}
