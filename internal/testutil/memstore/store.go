// Package memstore implementa en memoria todos los puertos de repositorio y los TxRunner,
// con las mismas restricciones de unicidad que el esquema PostgreSQL. Solo para tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

type pair struct{ a, b string }

type state struct {
	users        map[string]entity.User
	spas         map[string]entity.Spa
	services     map[string]entity.Service
	materials    map[string]entity.Material
	spaServices  map[pair]entity.SpaService
	spaMaterials map[pair]entity.SpaMaterial
	reviews      map[string]entity.Review
}

func newState() state {
	return state{
		users:        map[string]entity.User{},
		spas:         map[string]entity.Spa{},
		services:     map[string]entity.Service{},
		materials:    map[string]entity.Material{},
		spaServices:  map[pair]entity.SpaService{},
		spaMaterials: map[pair]entity.SpaMaterial{},
		reviews:      map[string]entity.Review{},
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.spas {
		c.spas[k] = v
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.materials {
		c.materials[k] = v
	}
	for k, v := range s.spaServices {
		c.spaServices[k] = v
	}
	for k, v := range s.spaMaterials {
		c.spaMaterials[k] = v
	}
	for k, v := range s.reviews {
		c.reviews[k] = v
	}
	return c
}

// Store base de datos en memoria. Las transacciones se serializan y se revierten si fn falla.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   state
	seq  time.Time
}

// New crea un store vacío.
func New() *Store {
	return &Store{st: newState(), seq: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Users puerto UserRepository.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Spas puerto SpaRepository.
func (s *Store) Spas() repository.SpaRepository { return spaRepo{s} }

// Services puerto ServiceRepository.
func (s *Store) Services() repository.ServiceRepository { return serviceRepo{s} }

// Materials puerto MaterialRepository.
func (s *Store) Materials() repository.MaterialRepository { return materialRepo{s} }

// SpaServices puerto SpaServiceRepository.
func (s *Store) SpaServices() repository.SpaServiceRepository { return spaServiceRepo{s} }

// SpaMaterials puerto SpaMaterialRepository.
func (s *Store) SpaMaterials() repository.SpaMaterialRepository { return spaMaterialRepo{s} }

// Reviews puerto ReviewRepository.
func (s *Store) Reviews() repository.ReviewRepository { return reviewRepo{s} }

// Reports puerto ReportRepository.
func (s *Store) Reports() repository.ReportRepository { return reportRepo{s} }

// RunReview implementa review.ReviewTxRunner.
func (s *Store) RunReview(ctx context.Context, fn func(repository.ReviewRepository, repository.SpaRepository) error) error {
	return s.run(func() error { return fn(s.Reviews(), s.Spas()) })
}

// RunCatalog implementa usecase.CatalogTxRunner.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	repository.ServiceRepository,
	repository.MaterialRepository,
	repository.SpaServiceRepository,
	repository.SpaMaterialRepository,
) error) error {
	return s.run(func() error { return fn(s.Services(), s.Materials(), s.SpaServices(), s.SpaMaterials()) })
}

func (s *Store) run(fn func() error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// ReviewCount total de filas de reseñas, activas o no.
func (s *Store) ReviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.reviews)
}

// SpaServiceRows filas de spa_servicios, activas o no.
func (s *Store) SpaServiceRows() []entity.SpaService {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.SpaService, 0, len(s.st.spaServices))
	for _, v := range s.st.spaServices {
		out = append(out, v)
	}
	return out
}

// tick devuelve instantes crecientes para ordenar de forma determinista por fecha.
func (s *Store) tick() time.Time {
	s.seq = s.seq.Add(time.Second)
	return s.seq
}

func fold(v string) string { return strings.ToLower(strings.TrimSpace(v)) }

func sortByName[T any](list []*T, name func(*T) string) {
	sort.Slice(list, func(i, j int) bool { return name(list[i]) < name(list[j]) })
}
