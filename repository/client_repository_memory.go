package repository

import (
	"fmt"
	"sync"

	"mortgage-registry/domain"
)

// ClientRepositoryMemory is an in-memory implementation of ClientRepository.
// It lives as long as the process; nothing is written to disk.
type ClientRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.Client
}

// NewClientRepositoryMemory creates a new in-memory client repository.
func NewClientRepositoryMemory() *ClientRepositoryMemory {
	return &ClientRepositoryMemory{
		data: []domain.Client{},
	}
}

// Save appends the client at the end of the list.
func (r *ClientRepositoryMemory) Save(client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(client.ID) != -1 {
		return fmt.Errorf("cliente con ID %d ya existe", client.ID)
	}
	r.data = append(r.data, client)
	return nil
}

// Replace overwrites the stored client in place, keeping its position.
func (r *ClientRepositoryMemory) Replace(client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(client.ID)
	if idx == -1 {
		return &domain.NotFoundError{ID: client.ID}
	}
	r.data[idx] = client
	return nil
}

func (r *ClientRepositoryMemory) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return &domain.NotFoundError{ID: id}
	}
	r.data = append(r.data[:idx], r.data[idx+1:]...)
	return nil
}

func (r *ClientRepositoryMemory) FindByID(id int) (domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return domain.Client{}, &domain.NotFoundError{ID: id}
	}
	return r.data[idx], nil
}

// List returns a copy so callers cannot mutate the stored order.
func (r *ClientRepositoryMemory) List() []domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Client, len(r.data))
	copy(out, r.data)
	return out
}

// ReplaceAll swaps the stored list for a permutation of it.
func (r *ClientRepositoryMemory) ReplaceAll(clients []domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(clients) != len(r.data) {
		return fmt.Errorf("se esperaban %d clientes, se recibieron %d", len(r.data), len(clients))
	}
	for _, c := range clients {
		if r.indexOf(c.ID) == -1 {
			return &domain.NotFoundError{ID: c.ID}
		}
	}

	next := make([]domain.Client, len(clients))
	copy(next, clients)
	r.data = next
	return nil
}

// indexOf does a linear scan; callers hold the lock.
func (r *ClientRepositoryMemory) indexOf(id int) int {
	for i, c := range r.data {
		if c.ID == id {
			return i
		}
	}
	return -1
}
