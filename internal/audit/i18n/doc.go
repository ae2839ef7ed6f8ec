// Package i18n inventories `$t(` translation calls by location and collects the
// distinct literal translation keys used across a source tree.
package i18n
