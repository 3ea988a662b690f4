package vectorstore

// Metadata is the fixed set of per-medicine display fields stored alongside
// each vector. The field set is closed and known, so it is modeled as a
// struct rather than an open-ended map; the JSON tags double as the
// on-disk payload keys. Values are always strings — a missing source field
// is stored as "".
type Metadata struct {
	Name             string `json:"name"`
	Contains         string `json:"contains"`
	SideEffects      string `json:"side_effects"`
	HowToUse         string `json:"how_to_use"`
	SafetyAdvice     string `json:"safety_advice"`
	TherapeuticClass string `json:"therapeutic_class"`
	HabitForming     string `json:"habit_forming"`
}

// Payload metadata keys, shared by both backends.
const (
	keyName             = "name"
	keyContains         = "contains"
	keySideEffects      = "side_effects"
	keyHowToUse         = "how_to_use"
	keySafetyAdvice     = "safety_advice"
	keyTherapeuticClass = "therapeutic_class"
	keyHabitForming     = "habit_forming"
)

// ToMap flattens the metadata into the stored payload representation.
func (m Metadata) ToMap() map[string]string {
	return map[string]string{
		keyName:             m.Name,
		keyContains:         m.Contains,
		keySideEffects:      m.SideEffects,
		keyHowToUse:         m.HowToUse,
		keySafetyAdvice:     m.SafetyAdvice,
		keyTherapeuticClass: m.TherapeuticClass,
		keyHabitForming:     m.HabitForming,
	}
}

// MetadataFromMap rebuilds a Metadata from a stored payload.
// Unknown keys are ignored and missing keys yield "".
func MetadataFromMap(payload map[string]string) Metadata {
	return Metadata{
		Name:             payload[keyName],
		Contains:         payload[keyContains],
		SideEffects:      payload[keySideEffects],
		HowToUse:         payload[keyHowToUse],
		SafetyAdvice:     payload[keySafetyAdvice],
		TherapeuticClass: payload[keyTherapeuticClass],
		HabitForming:     payload[keyHabitForming],
	}
}

// Document is one indexable medicine entry: a unique id, the composed
// searchable text, and the display metadata.
type Document struct {
	ID       string
	Content  string
	Metadata Metadata
}

// QueryResult holds the outcome of a k-nearest-neighbor query as
// index-aligned parallel slices, ordered by non-decreasing distance.
type QueryResult struct {
	IDs       []string
	Documents []string
	Metadatas []Metadata
	Distances []float32
}

// Len returns the number of results.
func (r QueryResult) Len() int {
	return len(r.IDs)
}
