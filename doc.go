// SGTIN Generator.
//
// Command sgtin-generator encodes GTINs and serial numbers into SGTIN-96 EPC
// memory bank contents, one at a time or in bulk from spreadsheet rows.
//
//     sgtin-generator encode  -gtin 5057877131530 -serial 9001
//     sgtin-generator preview -gtin 5057877131530 -last-serial 9000
//     sgtin-generator bulk    -in orders.tsv > tags.tsv
//
// Settings are read from configuration.json.
package main
