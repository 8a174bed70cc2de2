// Package catalog holds the bundled reference data of the shop: frames and
// their price tables, the collage gallery, and the frame-customization image
// tables. Everything here is loaded once at startup and read-only afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"artistic-unity/internal/domain"
	apperrors "artistic-unity/internal/errors"
)

//go:embed catalog.yaml
var catalogYAML []byte

type frameEntry struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Category    string         `yaml:"category"`
	Images      []string       `yaml:"images"`
	Prices      map[string]int `yaml:"prices"`
	Description string         `yaml:"description"`
}

type sizePriceEntry struct {
	Size  string `yaml:"size"`
	Price int    `yaml:"price"`
}

type collageEntry struct {
	Size       string              `yaml:"size"`
	Categories map[string][]string `yaml:"categories"`
}

// subtypeBuckets is sub-type -> structural size bucket -> orientation -> refs.
type subtypeBuckets map[string]map[string]map[string][]string

type customizationData struct {
	Mount    subtypeBuckets      `yaml:"mount"`
	General  subtypeBuckets      `yaml:"general"`
	Floating map[string][]string `yaml:"floating"`
	Display  []string            `yaml:"display"`
	Compound []string            `yaml:"compound"`
	Emboss   []string            `yaml:"emboss"`
}

type catalogFile struct {
	Frames            []frameEntry      `yaml:"frames"`
	CollageCategories []string          `yaml:"collageCategories"`
	CollageSizes      []sizePriceEntry  `yaml:"collageSizes"`
	CollageImages     []collageEntry    `yaml:"collageImages"`
	Customization     customizationData `yaml:"customization"`
}

type Catalog struct {
	frames            []domain.Frame
	frameByID         map[string]domain.Frame
	collageCategories []string
	collageSizes      []domain.SizePrice
	collageEntries    []collageEntry
	custom            customizationData
	sizeRank          map[string]int
}

// Load parses the embedded catalog, validates its price tables and decides
// each frame's subtype once, so later lookups never re-derive it from the
// display name.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{
		frameByID:         make(map[string]domain.Frame, len(file.Frames)),
		collageCategories: file.CollageCategories,
		collageEntries:    file.CollageImages,
		custom:            file.Customization,
		sizeRank:          make(map[string]int, len(file.CollageSizes)),
	}

	for i, sp := range file.CollageSizes {
		c.collageSizes = append(c.collageSizes, domain.SizePrice{Size: sp.Size, Price: sp.Price})
		c.sizeRank[sp.Size] = i
	}

	for _, fe := range file.Frames {
		category := domain.FrameCategory(fe.Category)
		subtype, err := subtypeFor(category, fe.Name)
		if err != nil {
			return nil, err
		}
		for size, price := range fe.Prices {
			if price <= 0 {
				return nil, fmt.Errorf("frame %s: size %q has non-positive price %d", fe.ID, size, price)
			}
		}
		frame := domain.Frame{
			ID:          fe.ID,
			Name:        fe.Name,
			Category:    category,
			Subtype:     subtype,
			Description: fe.Description,
			Images:      fe.Images,
			Prices:      fe.Prices,
		}
		if _, dup := c.frameByID[frame.ID]; dup {
			return nil, fmt.Errorf("duplicate frame id %q", frame.ID)
		}
		c.frames = append(c.frames, frame)
		c.frameByID[frame.ID] = frame
	}

	return c, nil
}

func subtypeFor(category domain.FrameCategory, name string) (domain.FrameSubtype, error) {
	n := strings.ToLower(name)
	switch category {
	case domain.CategoryGeneral:
		if strings.Contains(n, "mount") {
			return domain.SubtypeMount, nil
		}
		return domain.SubtypeTraditional, nil
	case domain.CategoryModern:
		switch {
		case strings.Contains(n, "floating"):
			return domain.SubtypeFloating, nil
		case strings.Contains(n, "display"):
			return domain.SubtypeDisplay, nil
		case strings.Contains(n, "rotating"):
			return domain.SubtypeRotating, nil
		}
	case domain.CategoryBorderless:
		switch {
		case strings.Contains(n, "compound"):
			return domain.SubtypeCompound, nil
		case strings.Contains(n, "emboss"):
			return domain.SubtypeEmboss, nil
		case strings.Contains(n, "plymount"):
			return domain.SubtypePlymount, nil
		}
	}
	return "", fmt.Errorf("no subtype for frame %q in category %q", name, category)
}

func (c *Catalog) Frames() []domain.Frame {
	return c.frames
}

func (c *Catalog) FrameByID(id string) (domain.Frame, error) {
	frame, ok := c.frameByID[id]
	if !ok {
		return domain.Frame{}, apperrors.NewNotFoundError(fmt.Sprintf("frame %q not found", id))
	}
	return frame, nil
}

func (c *Catalog) CollageCategories() []string {
	return c.collageCategories
}

func (c *Catalog) CollageSizes() []domain.SizePrice {
	return c.collageSizes
}

// AvailableSizes lists a frame's regular priced sizes in the catalog's
// canonical size order. The Special sentinel never appears in the listing;
// it is surfaced through Frame.HasSpecialSize instead.
func (c *Catalog) AvailableSizes(frame domain.Frame) []domain.SizePrice {
	sizes := make([]domain.SizePrice, 0, len(frame.Prices))
	for size, price := range frame.Prices {
		if size == domain.SpecialSize {
			continue
		}
		sizes = append(sizes, domain.SizePrice{Size: size, Price: price})
	}
	sort.Slice(sizes, func(i, j int) bool {
		ri, iOK := c.sizeRank[sizes[i].Size]
		rj, jOK := c.sizeRank[sizes[j].Size]
		if iOK && jOK {
			return ri < rj
		}
		if iOK != jOK {
			return iOK
		}
		return sizes[i].Size < sizes[j].Size
	})
	return sizes
}

// PriceFor resolves the unit price of a frame at a size. The Special
// sentinel uses the frame's dedicated special price. A size the frame does
// not define is unpriced, never free.
func PriceFor(frame domain.Frame, size string) (int, error) {
	price, ok := frame.Prices[size]
	if !ok {
		return 0, apperrors.NewUnpricedError(frame.ID, size)
	}
	return price, nil
}
