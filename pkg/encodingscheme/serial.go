/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package encodingscheme

import (
	"strconv"

	"github.com/pkg/errors"
)

// ParseSerial parses a decimal serial and checks it fits in the serial field.
func ParseSerial(serial string) (uint64, error) {
	if !isDigits(serial) {
		return 0, errors.Wrapf(ErrInvalidDigitInput, "serial '%s'", serial)
	}

	value, err := strconv.ParseUint(serial, decimalBase, 64)
	if err != nil {
		// only a range error is possible once the input is all digits
		return 0, errors.Wrapf(ErrSerialOutOfRange, "serial %s", serial)
	}
	if !IsSerialInRange(value) {
		return 0, errors.Wrapf(ErrSerialOutOfRange, "serial %d exceeds %d", value, MaxSerial)
	}
	return value, nil
}

// IsSerialInRange returns true if serial fits in the SGTIN-96 serial field.
func IsSerialInRange(serial uint64) bool {
	return serial <= MaxSerial
}

// NextSerial returns lastSerial + 1, the first serial of a batch that follows
// lastSerial.
func NextSerial(lastSerial string) (string, error) {
	last, err := ParseSerial(lastSerial)
	if err != nil {
		return "", err
	}
	if last == MaxSerial {
		return "", errors.Wrapf(ErrSerialOutOfRange, "no serial follows %d", last)
	}
	return strconv.FormatUint(last+1, decimalBase), nil
}
