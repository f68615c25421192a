package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderBasic formats a plain-text recipe card from a title and a scaled
// ingredient list. The method steps are a fixed template: the catalog
// recipes are simple enough that a generic prep/cook/serve outline holds.
func RenderBasic(title string, ingredients []ScaledIngredient, maxMinutes int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Estimated time: %d min\n\n", maxMinutes)
	b.WriteString("Ingredients:\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s: %s g\n", ing.Name, strconv.FormatFloat(ing.Grams, 'f', -1, 64))
	}
	b.WriteString("\nMethod:\n")
	b.WriteString("1) Prep the ingredients (wash, chop, weigh).\n")
	b.WriteString("2) Cook the protein component (if any) with spices and a drizzle of oil.\n")
	b.WriteString("3) Cook the starch component (rice/quinoa) and fold in the vegetables.\n")
	b.WriteString("4) Season to taste, add herbs, and serve.\n")
	b.WriteString("\nNote: spices, herbs, lemon and vinegar count as pantry staples and are excluded from the totals.")
	return b.String()
}
