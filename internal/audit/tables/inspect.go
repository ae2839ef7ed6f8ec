package tables

import (
	"sort"

	"github.com/temirov/codeaudit/internal/textscan"
)

var (
	tablePattern  = textscan.MustCompilePattern(`Tables<'([^']+)'>`)
	keywordFilter = textscan.NewPrefilter("Tables<'")
)

// TableUsage counts the references to one table type.
type TableUsage struct {
	Name       string
	References int
	Files      int
}

// Inventory accumulates table references across files.
type Inventory struct {
	references map[string]int
	files      map[string]map[string]struct{}
}

// Add records every Tables<'name'> reference found in text.
func (inventory *Inventory) Add(path string, text string) error {
	matches, findError := tablePattern.FindAll(path, text)
	if findError != nil {
		return findError
	}
	if inventory.references == nil {
		inventory.references = make(map[string]int)
		inventory.files = make(map[string]map[string]struct{})
	}
	for _, match := range matches {
		inventory.references[match.Identifier]++
		if inventory.files[match.Identifier] == nil {
			inventory.files[match.Identifier] = make(map[string]struct{})
		}
		inventory.files[match.Identifier][match.Path] = struct{}{}
	}
	return nil
}

// Names returns the distinct table names sorted lexically.
func (inventory Inventory) Names() []string {
	names := make([]string, 0, len(inventory.references))
	for name := range inventory.references {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usages returns one usage per distinct table, sorted by name.
func (inventory Inventory) Usages() []TableUsage {
	names := inventory.Names()
	usages := make([]TableUsage, 0, len(names))
	for _, name := range names {
		usages = append(usages, TableUsage{
			Name:       name,
			References: inventory.references[name],
			Files:      len(inventory.files[name]),
		})
	}
	return usages
}

// TotalReferences returns the number of references across all tables.
func (inventory Inventory) TotalReferences() int {
	total := 0
	for _, count := range inventory.references {
		total += count
	}
	return total
}
