package feed

import "strings"

type rule struct {
	keywords []string
	category string
}

// Ordered rule list; the first match wins, so categorization is
// reproducible across syncs.
var rules = []rule{
	{[]string{"newborn", "infant", "swaddle", "blanket"}, "Newborn Essentials"},
	{[]string{"toy", "rattle", "wooden", "play"}, "Wooden Toys"},
	{[]string{"cultural", "traditional", "ethnic", "ankara", "dirac"}, "Cultural Baby Wear"},
	{[]string{"mom", "mother", "mommy", "matching"}, "Mom & Baby Sets"},
	{[]string{"feed", "bottle", "nursing", "sippy"}, "Feeding & Nursing"},
	{[]string{"learn", "educational", "montessori"}, "Educational Toys"},
}

const defaultCategory = "Baby Essentials"

func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return defaultCategory
}
