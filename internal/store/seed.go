package store

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/intervention-desk/internal/domain"
)

// demoSeedSource fixes the PRNG so repeated seeding of a fresh store yields
// the same shaped data set.
const demoSeedSource int64 = 0x52414445 // "RADE"

const demoTicketCount = 24

var demoDescriptions = []string{
	"Mise à jour du dossier client Atlas Industrie",
	"Relance de l'offre commerciale trimestrielle",
	"Préparation du rendez-vous grands comptes",
	"Analyse du portefeuille partenaires",
	"Correction des coordonnées de facturation",
	"Suivi de la campagne de prospection",
	"Validation du contrat cadre régional",
	"Revue des objectifs commerciaux mensuels",
	"Intervention sur le reporting hebdomadaire",
	"Assistance à la présentation client",
}

var demoComments = []string{
	"",
	"À traiter avant la fin de la semaine.",
	"Voir les notes de la dernière réunion.",
	"Le client attend un retour rapide.",
	"",
}

// SeedDemo populates an empty store with a deterministic demo data set
// spanning the last eight weeks. It is a no-op when the store already
// holds tickets. Returns the number of tickets written.
func (s *TicketStore) SeedDemo(ctx context.Context, people []domain.Person) (int, error) {
	if len(people) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.load(ctx); len(existing) > 0 {
		return 0, nil
	}

	rng := rand.New(rand.NewSource(demoSeedSource))
	now := s.now().UTC()

	tickets := make([]domain.Ticket, 0, demoTicketCount)
	for i := 0; i < demoTicketCount; i++ {
		person := people[rng.Intn(len(people))]
		createdAt := now.Add(-time.Duration(rng.Intn(8*7*24)) * time.Hour)
		tickets = append(tickets, domain.Ticket{
			ID:          s.newID(),
			UserID:      person.ID,
			UserName:    person.Name,
			Description: demoDescriptions[rng.Intn(len(demoDescriptions))],
			Comment:     demoComments[rng.Intn(len(demoComments))],
			Status:      domain.TicketStatuses[rng.Intn(len(domain.TicketStatuses))],
			Priority:    domain.TicketPriorities[rng.Intn(len(domain.TicketPriorities))],
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		})
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})

	if err := s.save(ctx, tickets); err != nil {
		return 0, err
	}
	s.logger.Info("seeded demo tickets", zap.Int("count", len(tickets)))
	return len(tickets), nil
}
