package grocery

import "strings"

// categoryKeywords maps ingredient keywords to the seeded grocery category
// names. Matching is substring-based on the lowercased name; first hit wins in
// table order.
var categoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{"Groente & Fruit", []string{
		"ui", "knoflook", "tomaat", "tomaten", "paprika", "wortel", "prei",
		"courgette", "aubergine", "broccoli", "bloemkool", "spinazie", "sla",
		"komkommer", "champignon", "appel", "banaan", "citroen",
		"limoen", "sinaasappel", "aardappel", "avocado", "bosui", "peterselie",
		"koriander", "basilicum", "munt", "gember", "spruitjes", "pompoen",
	}},
	{"Vlees & Vis", []string{
		"kip", "rund", "gehakt", "varken", "spek", "worst", "ham", "zalm",
		"tonijn", "kabeljauw", "garnalen", "vis", "biefstuk", "lam", "kalkoen",
	}},
	{"Zuivel", []string{
		"melk", "boter", "kaas", "yoghurt", "room", "ei", "eieren", "kwark",
		"creme fraiche", "crème fraîche", "mozzarella", "parmezaan", "feta",
	}},
	{"Brood & Bakkerij", []string{
		"brood", "broodje", "croissant", "tortilla", "wrap", "pita", "bagel",
	}},
	{"Diepvries", []string{
		"diepvries", "bevroren",
	}},
	{"Dranken", []string{
		"water", "sap", "wijn", "bier", "cola", "koffie", "thee",
	}},
	{"Houdbaar", []string{
		"pasta", "rijst", "bloem", "suiker", "zout", "peper", "olie",
		"olijfolie", "zonnebloemolie", "azijn",
		"bouillon", "blik", "bonen", "linzen", "kikkererwten", "couscous",
		"noedels", "sojasaus", "honing", "pindakaas", "noten", "meel", "kruiden",
	}},
}

const fallbackCategory = "Overig"

// Categorize assigns a grocery category name from a static keyword table.
// Short keywords like "ui" match on word prefix rather than substring so that
// "suiker" does not land in the vegetable aisle. Unknown ingredients land in
// "Overig".
func Categorize(name string) string {
	lowered := strings.ToLower(name)
	words := strings.Fields(punctuation.ReplaceAllString(lowered, " "))

	for _, entry := range categoryKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(kw, " ") {
				if strings.Contains(lowered, kw) {
					return entry.Category
				}
				continue
			}
			for _, w := range words {
				if strings.HasPrefix(w, kw) {
					return entry.Category
				}
			}
		}
	}
	return fallbackCategory
}
