/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package encodingscheme

import (
	"strconv"
	"testing"

	expect "github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

func TestNextSerial(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(w.ShouldHaveResult(NextSerial("9000")).(string), "9001")
	w.ShouldBeEqual(w.ShouldHaveResult(NextSerial("0")).(string), "1")
	w.ShouldBeEqual(w.ShouldHaveResult(NextSerial("0099")).(string), "100")
	w.ShouldBeEqual(w.ShouldHaveResult(NextSerial(strconv.FormatUint(MaxSerial-1, 10))).(string),
		strconv.FormatUint(MaxSerial, 10))
}

func TestNextSerialOutOfRange(t *testing.T) {
	_, err := NextSerial(strconv.FormatUint(MaxSerial, 10))
	if errors.Cause(err) != ErrSerialOutOfRange {
		t.Fatalf("expected ErrSerialOutOfRange, got %v", err)
	}

	_, err = NextSerial("")
	if errors.Cause(err) != ErrInvalidDigitInput {
		t.Fatalf("expected ErrInvalidDigitInput, got %v", err)
	}
}

func TestFirstOfBatchMatchesDocumentedExample(t *testing.T) {
	w := expect.WrapT(t)

	// a batch continuing from last serial 9000 starts at 9001
	serial := w.ShouldHaveResult(NextSerial("9000")).(string)
	epc := w.ShouldHaveResult(Encode("5057877131530", serial)).(string)
	w.ShouldBeEqual(epc, "303534B5540CD84000002329")
}

func TestParseSerial(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(w.ShouldHaveResult(ParseSerial("274877906943")).(uint64), MaxSerial)
	w.As("2^38").ShouldHaveError(ParseSerial("274877906944"))
	w.As("empty").ShouldHaveError(ParseSerial(""))
	w.ShouldBeFalse(IsSerialInRange(MaxSerial + 1))
}
