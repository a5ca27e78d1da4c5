package source

// StringID identifies an interned string.
type StringID uint32

// NoStringID is reserved for the empty string.
const NoStringID StringID = 0

// Interner deduplicates strings and counts how often each was seen.
// It is not safe for concurrent use.
type Interner struct {
	byID   []string            // индекс -> строка (byID[0] = "" для NoStringID)
	counts []int               // индекс -> сколько раз встречалась
	index  map[string]StringID // строка -> ID
}

func NewInterner() *Interner {
	return &Interner{
		byID:   []string{""},
		counts: []int{0},
		index:  map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID of s, adding it on first sight, and bumps its count.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		i.counts[id]++
		return id
	}

	// Собственная копия, чтобы не держать исходный буфер.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.counts = append(i.counts, 1)
	i.index[cpy] = id
	return id
}

// Lookup returns the string for id.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// Count returns how many times the string with this id was interned.
func (i *Interner) Count(id StringID) int {
	if int(id) >= len(i.counts) {
		return 0
	}
	return i.counts[id]
}

// Len returns the number of distinct strings, NoStringID included.
func (i *Interner) Len() int {
	return len(i.byID)
}
