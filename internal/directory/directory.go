// Package directory supplies the fixed, read-only roster of people that
// tickets are filed against.
package directory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/intervention-desk/internal/domain"
	apperrors "github.com/spec-kit/intervention-desk/pkg/util"
)

// Directory holds the roster loaded at startup. It is never mutated.
type Directory struct {
	people []domain.Person
	byID   map[string]domain.Person
}

// New builds a directory over the built-in roster.
func New() *Directory {
	return fromPeople(defaultRoster)
}

// Load builds a directory from a YAML roster file, falling back to the
// built-in roster when path is empty.
func Load(path string) (*Directory, error) {
	if path == "" {
		return New(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	var roster struct {
		People []domain.Person `yaml:"people"`
	}
	if err := yaml.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}
	if len(roster.People) == 0 {
		return nil, fmt.Errorf("roster file %s contains no people", path)
	}
	for _, p := range roster.People {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("roster entry missing id or name")
		}
		if p.Status != "" && !p.Status.Valid() {
			return nil, fmt.Errorf("roster entry %s has unknown status %q", p.ID, p.Status)
		}
	}
	return fromPeople(roster.People), nil
}

func fromPeople(people []domain.Person) *Directory {
	byID := make(map[string]domain.Person, len(people))
	for _, p := range people {
		if p.Status == "" {
			p.Status = domain.PersonStatusAvailable
		}
		byID[p.ID] = p
	}
	out := make([]domain.Person, 0, len(people))
	for _, p := range people {
		out = append(out, byID[p.ID])
	}
	return &Directory{people: out, byID: byID}
}

// List returns the roster in definition order.
func (d *Directory) List() []domain.Person {
	out := make([]domain.Person, len(d.people))
	copy(out, d.people)
	return out
}

// GetByID looks up a person by id.
func (d *Directory) GetByID(id string) (*domain.Person, error) {
	p, ok := d.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("person", map[string]any{"id": id})
	}
	return &p, nil
}

// Size returns the number of people in the roster.
func (d *Directory) Size() int {
	return len(d.people)
}

var defaultRoster = []domain.Person{
	{ID: "1", Name: "Ahmed Bennani", Role: "Chef de Développement Commercial", Department: "Développement Commercial", Status: domain.PersonStatusAvailable},
	{ID: "2", Name: "Fatima Alaoui", Role: "Responsable Clientèle Entreprises", Department: "Développement Commercial", Status: domain.PersonStatusBusy},
	{ID: "3", Name: "Mohamed Ouali", Role: "Chargé de Développement", Department: "Développement Commercial", Status: domain.PersonStatusAvailable},
	{ID: "4", Name: "Aicha Tazi", Role: "Analyste Commercial", Department: "Développement Commercial", Status: domain.PersonStatusAvailable},
	{ID: "5", Name: "Youssef Idrissi", Role: "Conseiller Commercial Senior", Department: "Développement Commercial", Status: domain.PersonStatusOffline},
	{ID: "6", Name: "Khadija Benjelloun", Role: "Gestionnaire Grands Comptes", Department: "Développement Commercial", Status: domain.PersonStatusAvailable},
	{ID: "7", Name: "Rachid Sekkat", Role: "Chargé d'Affaires", Department: "Développement Commercial", Status: domain.PersonStatusBusy},
	{ID: "8", Name: "Malika Fassi", Role: "Responsable Marketing", Department: "Développement Commercial", Status: domain.PersonStatusAvailable},
	{ID: "9", Name: "Omar Berrada", Role: "Conseiller Commercial", Department: "Développement Commercial", Status: domain.PersonStatusAvailable},
	{ID: "10", Name: "Zineb Naciri", Role: "Analyste Marché", Department: "Développement Commercial", Status: domain.PersonStatusAvailable},
	{ID: "11", Name: "Hassan Lamrani", Role: "Responsable Partenariats", Department: "Développement Commercial", Status: domain.PersonStatusBusy},
	{ID: "12", Name: "Samira Kettani", Role: "Chargée Communication", Department: "Développement Commercial", Status: domain.PersonStatusAvailable},
}
