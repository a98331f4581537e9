package repository

import "mortgage-registry/domain"

// ClientRepository keeps clients in display order.
type ClientRepository interface {
	Save(client domain.Client) error
	Replace(client domain.Client) error
	Delete(id int) error
	FindByID(id int) (domain.Client, error)
	List() []domain.Client
	ReplaceAll(clients []domain.Client) error
}
