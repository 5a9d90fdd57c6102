package game

import "strings"

// DangerDamage is the health cost of each distinct danger keyword
// present in a story response.
const DangerDamage = 15

// dangerKeywords is the fixed vocabulary of risky actions the narrator
// may describe. Matching is a literal substring check on the lowercased
// response, so "ignore warning" must appear as contiguous text.
var dangerKeywords = []string{
	"fight",
	"confront",
	"explore",
	"approach",
	"follow",
	"ignore warning",
	"trap",
	"venture deeper",
}

// Interpretation is what a story response means for the game state:
// total damage taken and at most one newly discovered item.
type Interpretation struct {
	Damage    int
	FoundItem string // catalog item id, empty if none
}

// Interpret scans a narrator response for danger keywords and marked
// item mentions. Each distinct keyword present adds DangerDamage once,
// regardless of how often it repeats. Items count as found when their
// name appears wrapped in ** markers; the first catalog entry (in
// catalog order, not text order) with a marked mention wins, so a
// response naming several items still yields a single discovery.
// Pure function of the text; it performs no state mutation.
func Interpret(text string) Interpretation {
	lower := strings.ToLower(text)

	var in Interpretation
	for _, kw := range dangerKeywords {
		if strings.Contains(lower, kw) {
			in.Damage += DangerDamage
		}
	}

	for _, entry := range Catalog {
		if strings.Contains(lower, "**"+entry.ID+"**") {
			in.FoundItem = entry.ID
			break
		}
	}

	return in
}
