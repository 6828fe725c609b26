/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package encodingscheme

/*
 REFERENCES
 http://www.epc-rfid.info/sgtin
 http://www.epc-rfid.info/epc-binary-headers
 http://www.epc-rfid.info/sgtin-filter-values
 http://www.epc-rfid.info/sgtin-partition-values
*/

const (
	// Header identifies the SGTIN-96 encoding scheme
	Header = 0x30

	// FilterPOSItem is the filter value for a point-of-sale trade item
	FilterPOSItem = 1

	// Partition is the only partition this package encodes: a 7 digit company
	// prefix followed by the item reference
	Partition = 5

	// SerialBits is the width of the SGTIN-96 serial field
	SerialBits = 38

	// MaxSerial is the largest serial that fits in the serial field
	MaxSerial = uint64(1)<<SerialBits - 1

	// EncodedLength is the number of hex characters in an encoded SGTIN-96
	EncodedLength = 24
)

const (
	headerBits            = 8
	filterBits            = 3
	partitionBits         = 3
	combinedReferenceBits = 44 // Company Prefix Bits + Item Reference Bits
	gtin14Length          = 14
)

type partitionTableItem struct {
	bits   int
	digits int
}

// itemReferenceBits is what remains of the 44 reference bits after the company prefix.
func (p partitionTableItem) itemReferenceBits() int {
	return combinedReferenceBits - p.bits
}

var companyPrefixPartitionTable = map[int]partitionTableItem{
	0: {40, 12},
	1: {37, 11},
	2: {34, 10},
	3: {30, 9},
	4: {27, 8},
	5: {24, 7},
	6: {20, 6},
}
