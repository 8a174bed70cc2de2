package domain

type FrameCategory string

const (
	CategoryGeneral    FrameCategory = "General"
	CategoryBorderless FrameCategory = "Borderless"
	CategoryModern     FrameCategory = "Modern"
)

// FrameSubtype is decided once when the catalog is loaded, so that renaming
// a product cannot silently change which customization images it resolves to.
type FrameSubtype string

const (
	SubtypeMount       FrameSubtype = "Mount"
	SubtypeTraditional FrameSubtype = "Traditional"
	SubtypePlymount    FrameSubtype = "Plymount"
	SubtypeEmboss      FrameSubtype = "Emboss"
	SubtypeCompound    FrameSubtype = "Compound"
	SubtypeRotating    FrameSubtype = "Rotating"
	SubtypeFloating    FrameSubtype = "Floating"
	SubtypeDisplay     FrameSubtype = "Display"
)

// SpecialSize is the sentinel price key for frames that offer a custom size
// at a dedicated price.
const SpecialSize = "Special"

type Frame struct {
	ID          string
	Name        string
	Category    FrameCategory
	Subtype     FrameSubtype
	Description string
	Images      []string
	Prices      map[string]int
}

func (f Frame) HasSpecialSize() bool {
	_, ok := f.Prices[SpecialSize]
	return ok
}

// SizePrice is one row of a frame's regular size listing.
type SizePrice struct {
	Size  string
	Price int
}
