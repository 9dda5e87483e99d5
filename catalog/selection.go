package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/atelier/pkg/validator"
)

// maxColorLen bounds the free-form color string echoed into the preview.
const maxColorLen = 32

// Selection is a customization studio choice. It is never rejected: unknown
// values fall back to the catalog defaults.
type Selection struct {
	FabricID string `yaml:"fabric_id"`
	Color    string `yaml:"color"`
	Cut      string `yaml:"cut"`
	Style    string `yaml:"style"`
}

// Normalize replaces unknown or empty values with the defaults and reports which
// fields were replaced, in field order.
func (c *Catalog) Normalize(sel Selection) (Selection, []string) {
	fabricIDs := make([]string, 0, len(c.Fabrics))
	for _, f := range c.Fabrics {
		fabricIDs = append(fabricIDs, f.ID)
	}
	cutIDs := make([]string, 0, len(c.Cuts))
	for _, cut := range c.Cuts {
		cutIDs = append(cutIDs, cut.ID)
	}

	sel.Color = strings.TrimSpace(sel.Color)

	var replaced []string
	fields := []struct {
		rule     validator.Rule
		value    *string
		fallback string
	}{
		{validator.OneOfString("fabric", sel.FabricID, fabricIDs), &sel.FabricID, c.Defaults.FabricID},
		{colorRule(sel.Color), &sel.Color, c.Defaults.Color},
		{validator.OneOfString("cut", sel.Cut, cutIDs), &sel.Cut, c.Defaults.Cut},
		{validator.OneOfString("style", sel.Style, c.Styles), &sel.Style, c.Defaults.Style},
	}
	for _, f := range fields {
		if !f.rule.Check() {
			*f.value = f.fallback
			replaced = append(replaced, f.rule.Error.Field)
		}
	}
	return sel, replaced
}

func colorRule(color string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return color != "" &&
				utf8.RuneCountInString(color) <= maxColorLen &&
				validator.NoControlChars("color", color).Check()
		},
		Error: validator.ValidationError{
			Field:          "color",
			Message:        fmt.Sprintf("must be 1 to %d characters", maxColorLen),
			TranslationKey: "validation.color",
		},
	}
}

// Preview is everything the garment visualizer shows for a selection.
type Preview struct {
	Selection Selection
	Fabric    Fabric
	Cut       Cut
}

// Preview normalizes the selection and resolves its fabric and cut.
func (c *Catalog) Preview(sel Selection) Preview {
	sel, _ = c.Normalize(sel)
	fabric, _ := c.Fabric(sel.FabricID)
	cut, _ := c.Cut(sel.Cut)
	return Preview{Selection: sel, Fabric: fabric, Cut: cut}
}

// BagMessage is the confirmation shown after adding the preview to the bag.
func (p Preview) BagMessage() string {
	return fmt.Sprintf("%s %s in %s cut has been added to your bag.", p.Fabric.Name, p.Selection.Style, p.Selection.Cut)
}

// LineItem prices the preview as a bag entry.
func (p Preview) LineItem() LineItem {
	return LineItem{
		Name:     fmt.Sprintf("Custom %s %s", p.Fabric.Name, p.Selection.Style),
		Details:  fmt.Sprintf("Color: %s, Cut: %s", p.Selection.Color, p.Cut.Label),
		Price:    p.Fabric.Price,
		Quantity: 1,
	}
}
