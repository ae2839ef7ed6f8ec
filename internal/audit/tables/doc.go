// Package tables inventories the generated table types referenced as
// Tables<'name'> across a source tree.
package tables
