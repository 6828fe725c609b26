/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package encodingscheme

import "github.com/pkg/errors"

var (
	// ErrInvalidDigitInput occurs when a GTIN or serial is empty or contains
	// anything other than decimal digits.
	ErrInvalidDigitInput = errors.New("input must be a non-empty string of decimal digits")

	// ErrSerialOutOfRange occurs when a serial does not fit in the 38-bit
	// SGTIN-96 serial field.
	ErrSerialOutOfRange = errors.New("serial does not fit in 38 bits")

	// ErrMalformedGtinLength occurs when a GTIN cannot be split into indicator,
	// company prefix and item reference for the configured partition.
	ErrMalformedGtinLength = errors.New("gtin cannot be split into company prefix and item reference")
)
