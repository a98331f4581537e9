// Package command maps parsed operator commands onto the client registry.
// Input sourcing and text formatting belong to the caller.
package command

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"mortgage-registry/domain"
	"mortgage-registry/service"
)

// Name identifies a registry command.
type Name string

const (
	Add      Name = "add"
	Show     Name = "show"
	Delete   Name = "delete"
	Edit     Name = "edit"
	Sort     Name = "sort"
	List     Name = "list"
	Schedule Name = "schedule"
	Exit     Name = "exit"
)

// menuOptions follows the numbering of the operator menu.
var menuOptions = map[string]Name{
	"1": Add,
	"2": Show,
	"3": Delete,
	"4": Edit,
	"5": Sort,
	"6": List,
	"7": Schedule,
	"8": Exit,
}

// ParseMenuOption resolves a menu number or a command name.
func ParseMenuOption(raw string) (Name, error) {
	opt := strings.ToLower(strings.TrimSpace(raw))
	if name, ok := menuOptions[opt]; ok {
		return name, nil
	}
	switch Name(opt) {
	case Add, Show, Delete, Edit, Sort, List, Schedule, Exit:
		return Name(opt), nil
	case "salir":
		return Exit, nil
	}
	return "", &domain.InvalidOptionError{Option: raw}
}

// Command is an already validated request. Only the fields relevant to Name
// are read.
type Command struct {
	Name      Name
	ID        int
	Input     domain.MortgageInput
	Direction string
}

// Result carries structured output; formatting is left to the caller.
type Result struct {
	Message  string
	Client   *domain.Client
	View     *domain.MortgageView
	Rows     []domain.SnapshotRow
	Schedule []domain.Installment
	Exit     bool
}

// Dispatcher routes commands to the registry.
type Dispatcher struct {
	registry *service.RegistryService
	log      *logrus.Logger
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *service.RegistryService, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, log: log}
}

// Dispatch runs cmd against the registry. Every error is recoverable and
// leaves the registry in its previous state.
func (d *Dispatcher) Dispatch(cmd Command) (Result, error) {
	d.log.WithField("command", string(cmd.Name)).Debug("dispatching command")

	switch cmd.Name {
	case Add:
		client, err := d.registry.Add(cmd.Input)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Message: fmt.Sprintf("Cliente con ID %d añadido correctamente.", client.ID),
			Client:  &client,
		}, nil

	case Show:
		client, err := d.registry.Find(cmd.ID)
		if err != nil {
			return Result{}, err
		}
		view := domain.NewMortgageView(client)
		return Result{Client: &client, View: &view}, nil

	case Delete:
		if err := d.registry.Remove(cmd.ID); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf("Cliente con ID %d eliminado correctamente.", cmd.ID)}, nil

	case Edit:
		client, err := d.registry.Update(cmd.ID, cmd.Input)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Message: fmt.Sprintf("Cliente con ID %d actualizado correctamente.", client.ID),
			Client:  &client,
		}, nil

	case Sort:
		rows, err := d.registry.Sort(cmd.Direction)
		if err != nil {
			return Result{}, err
		}
		return Result{Message: "Clientes ordenados:", Rows: rows}, nil

	case List:
		return Result{Rows: d.registry.Snapshot()}, nil

	case Schedule:
		schedule, err := d.registry.Schedule(cmd.ID)
		if err != nil {
			return Result{}, err
		}
		return Result{Schedule: schedule}, nil

	case Exit:
		return Result{Message: "Saliendo del programa...", Exit: true}, nil
	}

	return Result{}, &domain.InvalidOptionError{Option: string(cmd.Name)}
}
