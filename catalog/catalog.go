// Package catalog holds the storefront's static data: fabrics, collections,
// lookbook entries, garment cuts, order history and seeded measurement profiles.
//
// The data ships as an embedded YAML document and is decoded once. Amounts are
// kept in minor units (see Money) so summaries add up exactly.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

type Fabric struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Texture          string `yaml:"texture"`
	Sheen            string `yaml:"sheen"`
	Drape            string `yaml:"drape"`
	ImageURL         string `yaml:"image_url"`
	DetailedImageURL string `yaml:"detailed_image_url"`
	Price            Money  `yaml:"price"`
}

type Collection struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	ImageURL string `yaml:"image_url"`
}

// Link is the studio URL preselecting this collection.
func (c Collection) Link() string {
	return "/customizationstudiopage?collection=" + c.Slug
}

type LookbookEntry struct {
	Title    string `yaml:"title"`
	ImageURL string `yaml:"image_url"`
	Link     string `yaml:"link"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Cut is a garment silhouette with the SVG path used by the visualizer.
type Cut struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type Order struct {
	ID     string    `yaml:"id"`
	Date   time.Time `yaml:"date"`
	Items  string    `yaml:"items"`
	Total  Money     `yaml:"total"`
	Status string    `yaml:"status"`
}

// Account is the demo visitor's personal information.
type Account struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// LineItem is one priced row of an order summary.
type LineItem struct {
	Name     string `yaml:"name"`
	Details  string `yaml:"details"`
	Price    Money  `yaml:"price"`
	Quantity int    `yaml:"quantity"`
}

// Total is price times quantity; a zero quantity counts as one.
func (li LineItem) Total() Money {
	return li.Price.Mul(max(li.Quantity, 1))
}

type Checkout struct {
	Item     LineItem `yaml:"item"`
	Shipping Money    `yaml:"shipping"`
}

// Catalog is the decoded storefront data.
type Catalog struct {
	Fabrics     []Fabric             `yaml:"fabrics"`
	Collections []Collection         `yaml:"collections"`
	Lookbook    []LookbookEntry      `yaml:"lookbook"`
	Features    []Feature            `yaml:"features"`
	Cuts        []Cut                `yaml:"cuts"`
	Styles      []string             `yaml:"styles"`
	Defaults    Selection            `yaml:"defaults"`
	Orders      []Order              `yaml:"orders"`
	Profiles    []MeasurementProfile `yaml:"profiles"`
	Account     Account              `yaml:"account"`
	Checkout    Checkout             `yaml:"checkout"`
}

// Parse decodes and checks a catalog document. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	for i := range c.Profiles {
		c.Profiles[i].Seeded = true
	}
	return &c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, decoded on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embedded)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for program start-up; it panics on a broken embed.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) check() error {
	switch {
	case len(c.Fabrics) == 0:
		return fmt.Errorf("%w: no fabrics", ErrInvalidCatalog)
	case len(c.Cuts) == 0:
		return fmt.Errorf("%w: no cuts", ErrInvalidCatalog)
	case len(c.Styles) == 0:
		return fmt.Errorf("%w: no styles", ErrInvalidCatalog)
	}
	if _, err := c.Fabric(c.Defaults.FabricID); err != nil {
		return fmt.Errorf("%w: default fabric %q", ErrInvalidCatalog, c.Defaults.FabricID)
	}
	if _, ok := c.Cut(c.Defaults.Cut); !ok {
		return fmt.Errorf("%w: default cut %q", ErrInvalidCatalog, c.Defaults.Cut)
	}
	if !slices.Contains(c.Styles, c.Defaults.Style) {
		return fmt.Errorf("%w: default style %q", ErrInvalidCatalog, c.Defaults.Style)
	}
	if c.Checkout.Item.Price.Currency != c.Checkout.Shipping.Currency {
		return fmt.Errorf("%w: checkout item and shipping currencies differ", ErrInvalidCatalog)
	}
	return nil
}

// Fabric looks a fabric up by id.
func (c *Catalog) Fabric(id string) (Fabric, error) {
	for _, f := range c.Fabrics {
		if f.ID == id {
			return f, nil
		}
	}
	return Fabric{}, fmt.Errorf("%w: %s", ErrFabricNotFound, id)
}

// Cut looks a cut up by id.
func (c *Catalog) Cut(id string) (Cut, bool) {
	for _, cut := range c.Cuts {
		if cut.ID == id {
			return cut, true
		}
	}
	return Cut{}, false
}

// Collection looks a collection up by slug.
func (c *Catalog) Collection(slug string) (Collection, bool) {
	for _, col := range c.Collections {
		if col.Slug == slug {
			return col, true
		}
	}
	return Collection{}, false
}

// Profile returns a seeded measurement profile by id.
func (c *Catalog) Profile(id string) (MeasurementProfile, bool) {
	for _, p := range c.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return MeasurementProfile{}, false
}
