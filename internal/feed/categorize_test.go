package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		category string
	}{
		{"Wooden Rattle Toy", "Wooden Toys"},
		{"Newborn Swaddle Pack", "Newborn Essentials"},
		{"Organic Cotton Blanket", "Newborn Essentials"},
		{"Ankara Print Romper", "Cultural Baby Wear"},
		{"Mommy and Me Outfit", "Mom & Baby Sets"},
		{"Silicone Feeding Bottle", "Feeding & Nursing"},
		{"Montessori Learning Board", "Educational Toys"},
		{"Socks 3-Pack", "Baby Essentials"},
		{"", "Baby Essentials"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.category, Categorize(tc.name), "name %q", tc.name)
	}
}

func TestCategorizeRuleOrder(t *testing.T) {
	t.Parallel()

	// "newborn" is checked before "toy": the first matching rule wins
	assert.Equal(t, "Newborn Essentials", Categorize("Newborn Toy Set"))
	// "toy" is checked before "educational"
	assert.Equal(t, "Wooden Toys", Categorize("Educational Toy"))
	// case insensitive
	assert.Equal(t, "Wooden Toys", Categorize("WOODEN RATTLE"))
}
