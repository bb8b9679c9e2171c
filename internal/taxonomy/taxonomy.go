package taxonomy

// Principle is one recognized ethical dimension a scenario may implicate.
type Principle struct {
	ID          string
	Description string
}

// registry is the package-level principle registry, keyed by ID.
var registry map[string]*Principle

// indexByID maps each principle ID to its canonical position.
// The position is the multi-label encoding index and must be stable
// across training and inference.
var indexByID map[string]int

func init() {
	registry = make(map[string]*Principle, len(seedPrinciples))
	indexByID = make(map[string]int, len(seedPrinciples))
	for i := range seedPrinciples {
		p := &seedPrinciples[i]
		registry[p.ID] = p
		indexByID[p.ID] = i
	}
}

// Count returns the number of principles in the taxonomy.
func Count() int {
	return len(seedPrinciples)
}

// Get returns a principle by ID, or nil if not found.
func Get(id string) *Principle {
	return registry[id]
}

// IsValid reports whether id names a principle in the taxonomy.
func IsValid(id string) bool {
	_, ok := registry[id]
	return ok
}

// Index returns the canonical position of id, or -1 if not found.
func Index(id string) int {
	i, ok := indexByID[id]
	if !ok {
		return -1
	}
	return i
}

// All returns every principle in canonical order.
func All() []Principle {
	result := make([]Principle, len(seedPrinciples))
	copy(result, seedPrinciples)
	return result
}

// IDs returns every principle ID in canonical order.
func IDs() []string {
	ids := make([]string, len(seedPrinciples))
	for i := range seedPrinciples {
		ids[i] = seedPrinciples[i].ID
	}
	return ids
}
