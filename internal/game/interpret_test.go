package game

import "testing"

func TestInterpretDangerKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no danger", "You rest by the quiet stream.", 0},
		{"single keyword", "You decide to explore the dark hollow.", DangerDamage},
		{"two keywords", "You fight the wolf and stumble into a trap!", 2 * DangerDamage},
		{"repeated keyword counts once", "You fight and fight and fight again.", DangerDamage},
		{"case insensitive", "You EXPLORE the ruins.", DangerDamage},
		{"multi-word phrase", "You ignore warning signs carved into the bark.", DangerDamage},
		{"keyword inside larger word", "The approaching storm darkens the sky.", DangerDamage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Interpret(tt.text)
			if in.Damage != tt.want {
				t.Errorf("Interpret(%q) damage = %d, want %d", tt.text, in.Damage, tt.want)
			}
		})
	}
}

func TestInterpretFoundItem(t *testing.T) {
	in := Interpret("In the chest you find a **sword**, gleaming faintly.")
	if in.FoundItem != "sword" {
		t.Errorf("Expected sword, got %q", in.FoundItem)
	}

	in = Interpret("A **Sword** lies here.")
	if in.FoundItem != "sword" {
		t.Errorf("Expected case-insensitive match, got %q", in.FoundItem)
	}

	in = Interpret("You find a sword, but it is not marked.")
	if in.FoundItem != "" {
		t.Errorf("Expected no item without markers, got %q", in.FoundItem)
	}
}

func TestInterpretCatalogOrderWins(t *testing.T) {
	// The map appears first in the text, but sword precedes map in the
	// catalog, so sword wins.
	in := Interpret("You spot a **map** on the table and a **sword** on the wall.")
	if in.FoundItem != "sword" {
		t.Errorf("Expected catalog order to win (sword), got %q", in.FoundItem)
	}
}

func TestInterpretCombined(t *testing.T) {
	in := Interpret("You explore the clearing and confront a shade. Behind it glitters a **key**.")
	if in.Damage != 2*DangerDamage {
		t.Errorf("Expected damage %d, got %d", 2*DangerDamage, in.Damage)
	}
	if in.FoundItem != "key" {
		t.Errorf("Expected key, got %q", in.FoundItem)
	}
}

func TestCatalogOrder(t *testing.T) {
	want := []string{"potion", "sword", "key", "map", "shield", "amulet", ItemHealthPotion}
	if len(Catalog) != len(want) {
		t.Fatalf("Expected %d catalog entries, got %d", len(want), len(Catalog))
	}
	for i, id := range want {
		if Catalog[i].ID != id {
			t.Errorf("Catalog[%d] = %q, want %q", i, Catalog[i].ID, id)
		}
	}
	for _, e := range Catalog {
		if e.Phrase == "" {
			t.Errorf("Catalog entry %q has no discovery phrase", e.ID)
		}
	}
}
