/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package encodingscheme

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

const decimalBase = 10

// Encode returns the SGTIN-96 encoding of gtin and serial as 24 uppercase hex
// characters.
//
// The gtin is left-padded with zeros to 14 digits and its check digit is
// ignored. The indicator digit is skipped; the next 7 digits are the company
// prefix and the remaining digits before the check digit are the item
// reference. The serial is used as given: callers that want the first serial
// after a known last serial should pass it through NextSerial first.
//
// Encode never truncates. A gtin longer than 14 digits, a serial that does not
// fit in 38 bits, or any non-digit input is an error, and the returned string
// is empty.
func Encode(gtin, serial string) (string, error) {
	part := companyPrefixPartitionTable[Partition]

	companyPrefix, itemReference, err := splitGTIN(gtin, part)
	if err != nil {
		return "", err
	}

	serialNum, err := ParseSerial(serial)
	if err != nil {
		return "", err
	}

	companyPrefixNum, err := parseField(companyPrefix, part.bits)
	if err != nil {
		return "", errors.Wrap(err, "unable to parse company prefix")
	}
	itemReferenceNum, err := parseField(itemReference, part.itemReferenceBits())
	if err != nil {
		return "", errors.Wrap(err, "unable to parse item reference")
	}

	epc := new(big.Int)
	appendBits(epc, Header, headerBits)
	appendBits(epc, FilterPOSItem, filterBits)
	appendBits(epc, Partition, partitionBits)
	appendBits(epc, companyPrefixNum, part.bits)
	appendBits(epc, itemReferenceNum, part.itemReferenceBits())
	appendBits(epc, serialNum, SerialBits)

	return fmt.Sprintf("%0[1]*X", EncodedLength, epc), nil
}

// SplitGTIN returns the company prefix and item reference digits that Encode
// extracts from gtin.
func SplitGTIN(gtin string) (companyPrefix, itemReference string, err error) {
	return splitGTIN(gtin, companyPrefixPartitionTable[Partition])
}

func splitGTIN(gtin string, part partitionTableItem) (string, string, error) {
	if !isDigits(gtin) {
		return "", "", errors.Wrapf(ErrInvalidDigitInput, "gtin '%s'", gtin)
	}
	if len(gtin) > gtin14Length {
		return "", "", errors.Wrapf(ErrMalformedGtinLength,
			"gtin has %d digits, at most %d are allowed", len(gtin), gtin14Length)
	}

	// drop the check digit
	gtin13 := ZeroFill(gtin, gtin14Length)[:gtin14Length-1]
	return gtin13[1 : part.digits+1], gtin13[part.digits+1:], nil
}

// parseField parses a run of digits that must fit in width bits.
func parseField(digits string, width int) (uint64, error) {
	if digits == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(digits, decimalBase, 64)
	if err != nil {
		return 0, err
	}
	if value >= uint64(1)<<uint(width) {
		return 0, errors.Wrapf(ErrMalformedGtinLength, "%s does not fit in %d bits", digits, width)
	}
	return value, nil
}

// appendBits shifts acc left by width and places value in the freed low bits.
func appendBits(acc *big.Int, value uint64, width int) {
	acc.Lsh(acc, uint(width))
	acc.Or(acc, new(big.Int).SetUint64(value))
}
