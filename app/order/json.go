/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package order

import (
	"encoding/json"

	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/app/schemas"
	"github.com/pkg/errors"
)

// BulkRequest is the json document accepted in place of pasted lines
type BulkRequest struct {
	Data []InputRow `json:"data"`
}

// ParseJSON validates body against the bulk order schema and returns its rows.
// Rows without a last serial get defaultLastSerial.
func ParseJSON(body []byte, defaultLastSerial string) ([]InputRow, error) {
	result, err := schemas.ValidateSchemaRequest(body, schemas.BulkOrderSchema)
	if err != nil {
		return nil, err
	}
	if !result.Valid() {
		report, _ := json.Marshal(schemas.BuildErrorsString(result.Errors()))
		return nil, errors.Wrapf(schemas.ErrInvalidInput, "%s", report)
	}

	var request BulkRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, errors.Wrap(schemas.ErrInvalidInput, err.Error())
	}

	for i := range request.Data {
		if request.Data[i].LastSerial == "" {
			request.Data[i].LastSerial = defaultLastSerial
		}
	}
	return request.Data, nil
}
