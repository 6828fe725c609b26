/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package export

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/order"
	"github.com/pkg/errors"
)

var records = []order.Record{
	{StyleNumber: "ST-100", ItemName: "Crew Tee", Color: "Navy", Size: "M",
		ItemCode: "5057877131530", Serial: 9001, SGTIN: "303534B5540CD84000002329"},
	{StyleNumber: "ST-100", ItemName: "-", Color: "-", Size: "M",
		ItemCode: "5057877131530", Serial: 9002, SGTIN: "303534B5540CD8400000232A"},
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, records, true); err != nil {
		t.Fatalf("writer err: %v", err)
	}

	expected := "Style Number\tItem Name\tColor\tSize\tItem Code\tSerial\tSGTIN-96 Hex (EPC Memory Bank Contents)\n" +
		"ST-100\tCrew Tee\tNavy\tM\t5057877131530\t9001\t303534B5540CD84000002329\n" +
		"ST-100\t-\t-\tM\t5057877131530\t9002\t303534B5540CD8400000232A\n"
	if buf.String() != expected {
		t.Fatalf("unexpected TSV:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestWriteTSVNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, records[:1], false); err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "ST-100\t") {
		t.Fatalf("unexpected TSV: %q", buf.String())
	}
}

func TestWriteEntriesSkipsFailedRows(t *testing.T) {
	entries := []order.Entry{
		{Records: records[:1]},
		{Records: records[1:], Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	if err := WriteEntries(&buf, entries, false); err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("expected only the successful entry, got %q", buf.String())
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(errors.Wrap(io.ErrClosedPipe, "unable to write records")) {
		t.Error("expected wrapped io.ErrClosedPipe to be a broken pipe")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Error("unexpected broken pipe")
	}
}
