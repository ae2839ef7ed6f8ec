// Package nullability flags `undefined` assignments inside object literals typed
// as TablesInsert<'table'> or TablesUpdate<'table'>, where generated database
// types expect an explicit null for nullable columns.
//
// Payload boundaries come from the brace-depth block extractor; no parsing is
// performed, so the audit reports candidates for review rather than proven defects.
package nullability
