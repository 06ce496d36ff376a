package domain

// EntityKind identifies which canonical-entity collection a value belongs to.
type EntityKind string

const (
	KindBrand    EntityKind = "brand"
	KindPerfumer EntityKind = "perfumer"
	KindNote     EntityKind = "note"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case KindBrand, KindPerfumer, KindNote:
		return true
	}
	return false
}

// Kinds lists all entity kinds, in the order they are discovered.
func Kinds() []EntityKind {
	return []EntityKind{KindBrand, KindPerfumer, KindNote}
}

// Gender is the target audience of a fragrance.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	}
	return false
}

// NoteLayer is one of the four pyramid positions a note can occupy on a record.
type NoteLayer string

const (
	NoteLayerTop        NoteLayer = "top"
	NoteLayerHeart      NoteLayer = "heart"
	NoteLayerBase       NoteLayer = "base"
	NoteLayerAdditional NoteLayer = "additional"
)

func (l NoteLayer) String() string { return string(l) }

func (l NoteLayer) IsValid() bool {
	switch l {
	case NoteLayerTop, NoteLayerHeart, NoteLayerBase, NoteLayerAdditional:
		return true
	}
	return false
}

// NoteLayers lists the four layers in pyramid order.
func NoteLayers() []NoteLayer {
	return []NoteLayer{NoteLayerTop, NoteLayerHeart, NoteLayerBase, NoteLayerAdditional}
}

// SortPolicy is the closed set of catalog orderings a caller may request.
// Relevance boosts exact name/brand matches to the front and falls back to
// the popular ordering as the secondary key.
type SortPolicy string

const (
	SortAZ        SortPolicy = "a-z"
	SortZA        SortPolicy = "z-a"
	SortPopular   SortPolicy = "popular"
	SortUnpopular SortPolicy = "unpopular"
	SortNewest    SortPolicy = "newest"
	SortRelevance SortPolicy = "relevance"
)

func (p SortPolicy) String() string { return string(p) }

func (p SortPolicy) IsValid() bool {
	switch p {
	case SortAZ, SortZA, SortPopular, SortUnpopular, SortNewest, SortRelevance:
		return true
	}
	return false
}
