/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package encodingscheme

import "regexp"

var isDigits = regexp.MustCompile(`^[0-9]+$`).MatchString

// ZeroFill left-pads data with zeros to num characters. Longer data is cut to
// its first num characters.
func ZeroFill(data string, num int) string {
	for {
		if len(data) >= num {
			return data[0:num]
		}
		data = "0" + data
	}
}
