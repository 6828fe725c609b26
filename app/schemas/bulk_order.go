/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package schemas

// BulkOrderSchema is the json-schema for bulk generation documents
const BulkOrderSchema = `{
	"type": "object",
	"required": [
		"data"
	],
	"properties": {
		"data": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": [
					"item_code",
					"qty"
				],
				"properties": {
					"style_number": {
						"type": "string"
					},
					"size": {
						"type": "string"
					},
					"color": {
						"type": "string"
					},
					"item_name": {
						"type": "string"
					},
					"item_code": {
						"type": "string",
						"pattern": "^[0-9]{1,14}$"
					},
					"qty": {
						"type": "integer",
						"minimum": 0,
						"maximum": 10000000
					},
					"last_serial": {
						"type": "string",
						"pattern": "^[0-9]*$"
					}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`
