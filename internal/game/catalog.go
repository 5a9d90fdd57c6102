package game

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ItemHealthPotion is the one item id with mechanical meaning beyond
// being collectible.
const ItemHealthPotion = "health_potion"

// CatalogEntry is one collectible item: its identifier and the phrase
// shown to the player when it is discovered.
type CatalogEntry struct {
	ID     string `yaml:"id"`
	Phrase string `yaml:"phrase"`
}

// Catalog is the fixed, ordered set of items the interpreter can detect
// in story text. It is loaded once at startup and never mutated.
var Catalog = mustLoadCatalog()

func mustLoadCatalog() []CatalogEntry {
	var entries []CatalogEntry
	if err := yaml.Unmarshal(catalogYAML, &entries); err != nil {
		panic(fmt.Sprintf("game: bad item catalog: %v", err))
	}
	return entries
}

// KnownItem reports whether id names a catalog item.
func KnownItem(id string) bool {
	for _, e := range Catalog {
		if e.ID == id {
			return true
		}
	}
	return false
}

// DiscoveryPhrase returns the catalog phrase for an item id, or the
// empty string for unknown items.
func DiscoveryPhrase(id string) string {
	for _, e := range Catalog {
		if e.ID == id {
			return e.Phrase
		}
	}
	return ""
}
