package service

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"mortgage-registry/domain"
	"mortgage-registry/repository"
)

// RegistryService owns the client list for the lifetime of the process.
// The snapshot rows are derived from the list on every read, so both stay
// index aligned. Sorting reorders the list itself.
type RegistryService struct {
	mu        sync.Mutex
	repo      repository.ClientRepository
	mortgages *MortgageService
	log       *logrus.Logger
	lastID    int
}

// NewRegistryService creates a registry on top of repo. Ids continue after
// the highest id already stored.
func NewRegistryService(
	repo repository.ClientRepository,
	mortgages *MortgageService,
	log *logrus.Logger,
) *RegistryService {
	s := &RegistryService{repo: repo, mortgages: mortgages, log: log}
	for _, c := range repo.List() {
		if c.ID > s.lastID {
			s.lastID = c.ID
		}
	}
	return s
}

// Add validates input, computes its mortgage and registers a new client.
// Ids are never reused, even after deletions.
func (s *RegistryService) Add(input domain.MortgageInput) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mortgage, err := s.mortgages.Calculate(input)
	if err != nil {
		s.log.WithError(err).Warn("rejected new client")
		return domain.Client{}, err
	}

	client := domain.Client{
		ID:            s.lastID + 1,
		MortgageInput: input,
		Mortgage:      mortgage,
	}
	if err := s.repo.Save(client); err != nil {
		return domain.Client{}, fmt.Errorf("guardar cliente: %w", err)
	}
	s.lastID = client.ID

	s.log.WithField("client_id", client.ID).Info("client added")
	return client, nil
}

func (s *RegistryService) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(id); err != nil {
		s.log.WithField("client_id", id).Info("client to remove not found")
		return err
	}

	s.log.WithField("client_id", id).Info("client removed")
	return nil
}

// Update replaces the four inputs of a client and recomputes its mortgage.
// Nothing is written unless every value passes validation.
func (s *RegistryService) Update(id int, input domain.MortgageInput) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.repo.FindByID(id)
	if err != nil {
		return domain.Client{}, err
	}

	mortgage, err := s.mortgages.Calculate(input)
	if err != nil {
		s.log.WithError(err).WithField("client_id", id).Warn("rejected client update")
		return domain.Client{}, err
	}

	client.MortgageInput = input
	client.Mortgage = mortgage
	if err := s.repo.Replace(client); err != nil {
		return domain.Client{}, fmt.Errorf("actualizar cliente %d: %w", id, err)
	}

	s.log.WithField("client_id", id).Info("client updated")
	return client, nil
}

func (s *RegistryService) Find(id int) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.FindByID(id)
}

func (s *RegistryService) List() []domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.List()
}

func (s *RegistryService) Len() int {
	return len(s.List())
}

// Snapshot returns one row per client, in list order.
func (s *RegistryService) Snapshot() []domain.SnapshotRow {
	return snapshotOf(s.List())
}

// Display renders the mortgage of client id with two decimals.
func (s *RegistryService) Display(id int) (domain.MortgageView, error) {
	client, err := s.Find(id)
	if err != nil {
		return domain.MortgageView{}, err
	}
	return domain.NewMortgageView(client), nil
}

func (s *RegistryService) Schedule(id int) ([]domain.Installment, error) {
	client, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	return AmortizationSchedule(client.MortgageInput)
}

// Sort orders the registry by principal using a bubble sort over the two
// decimal principal shown in the snapshot. Equal principals keep their
// relative order. An unknown direction leaves the registry untouched.
func (s *RegistryService) Sort(direction string) ([]domain.SnapshotRow, error) {
	dir, err := domain.ParseSortDirection(direction)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clients := s.repo.List()
	keys := make([]decimal.Decimal, len(clients))
	for i, row := range snapshotOf(clients) {
		key, err := decimal.NewFromString(row.Principal)
		if err != nil {
			return nil, fmt.Errorf("principal del cliente %d: %w", row.ID, err)
		}
		keys[i] = key
	}

	n := len(clients)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			comparar := keys[j].Sub(keys[j+1])
			if dir == domain.Descending {
				comparar = comparar.Neg()
			}
			if comparar.Sign() > 0 {
				clients[j], clients[j+1] = clients[j+1], clients[j]
				keys[j], keys[j+1] = keys[j+1], keys[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	if err := s.repo.ReplaceAll(clients); err != nil {
		return nil, fmt.Errorf("reordenar clientes: %w", err)
	}

	s.log.WithField("direction", string(dir)).Info("clients sorted")
	return snapshotOf(clients), nil
}

func snapshotOf(clients []domain.Client) []domain.SnapshotRow {
	rows := make([]domain.SnapshotRow, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, domain.NewSnapshotRow(c))
	}
	return rows
}
