package parser

import "strings"

// missingReason describes why a row lacks its identity fields.
func missingReason(row Row, fields ...string) string {
	if row.Blank() {
		return "blank row"
	}
	return "missing " + strings.Join(fields, " and ")
}
