package domain

// PersonStatus represents a person's current availability.
type PersonStatus string

const (
	PersonStatusAvailable PersonStatus = "available"
	PersonStatusBusy      PersonStatus = "busy"
	PersonStatusOffline   PersonStatus = "offline"
)

var personStatusLabels = map[PersonStatus]string{
	PersonStatusAvailable: "Disponible",
	PersonStatusBusy:      "Occupé",
	PersonStatusOffline:   "Hors ligne",
}

// Valid reports whether s is a known availability status.
func (s PersonStatus) Valid() bool {
	_, ok := personStatusLabels[s]
	return ok
}

// Label returns the display label for s.
func (s PersonStatus) Label() string {
	if label, ok := personStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Person is a staff member eligible to receive intervention tickets.
// The directory defines people once at startup; they are never mutated.
type Person struct {
	ID         string       `json:"id" yaml:"id"`
	Name       string       `json:"name" yaml:"name"`
	Role       string       `json:"role" yaml:"role"`
	Department string       `json:"department" yaml:"department"`
	Status     PersonStatus `json:"status" yaml:"status"`
}
