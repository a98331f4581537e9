// Package shell is the interactive front end of the registry: it prompts the
// operator, validates raw input and prints dispatcher results.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"mortgage-registry/command"
	"mortgage-registry/domain"
)

const menu = `Seleccione una opción:
  1. Añadir cliente
  2. Mostrar datos de un cliente
  3. Borrar cliente
  4. Editar cliente
  5. Ordenar clientes
  6. Listar clientes
  7. Tabla de amortización
  8. Salir
> `

const invalidValuesAlert = "Error: Por favor ingrese valores válidos."

// errInputClosed signals EOF in the middle of a prompt.
var errInputClosed = errors.New("entrada cerrada")

// Shell drives the operator menu over line based input.
type Shell struct {
	in         *bufio.Reader
	out        io.Writer
	dispatcher *command.Dispatcher
	log        *logrus.Logger
}

// New creates a shell reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, dispatcher *command.Dispatcher, log *logrus.Logger) *Shell {
	return &Shell{
		in:         bufio.NewReader(in),
		out:        out,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Run loops until the operator exits or the input ends.
func (s *Shell) Run() error {
	for {
		raw, err := s.prompt(menu)
		if err != nil {
			return s.closed(err)
		}

		name, err := command.ParseMenuOption(raw)
		if err != nil {
			s.println("Opción no válida.")
			continue
		}

		exit, err := s.handle(name)
		if err != nil {
			return s.closed(err)
		}
		if exit {
			return nil
		}
	}
}

func (s *Shell) handle(name command.Name) (bool, error) {
	cmd := command.Command{Name: name}

	switch name {
	case command.Add:
		input, ok, err := s.readInput(domain.MortgageInput{}, false)
		if err != nil || !ok {
			return false, err
		}
		cmd.Input = input

	case command.Show, command.Delete, command.Schedule:
		id, ok, err := s.readID(name)
		if err != nil || !ok {
			return false, err
		}
		cmd.ID = id

	case command.Edit:
		id, ok, err := s.readID(name)
		if err != nil || !ok {
			return false, err
		}
		current, err := s.dispatcher.Dispatch(command.Command{Name: command.Show, ID: id})
		if err != nil {
			s.report(err)
			return false, nil
		}
		input, ok, err := s.readInput(current.Client.MortgageInput, true)
		if err != nil || !ok {
			return false, err
		}
		cmd.ID = id
		cmd.Input = input

	case command.Sort:
		dir, err := s.prompt("¿Ordenar por monto del crédito hipotecario? (ascendente/descendente): ")
		if err != nil {
			return false, err
		}
		cmd.Direction = dir
	}

	res, err := s.dispatcher.Dispatch(cmd)
	if err != nil {
		if name == command.Sort && errors.Is(err, domain.ErrInvalidOption) {
			s.println("Opción no válida. No se realizó el ordenamiento.")
			return false, nil
		}
		s.report(err)
		return false, nil
	}

	s.render(res)
	return res.Exit, nil
}

// readInput asks for the four loan values. ok is false when a value was
// rejected; nothing is forwarded in that case.
func (s *Shell) readInput(current domain.MortgageInput, editing bool) (domain.MortgageInput, bool, error) {
	prompts := []struct {
		label   string
		current float64
	}{
		{"la cuota inicial", current.DownPayment},
		{"el valor de la casa", current.TotalCost},
		{"la tasa de interés (anual en porcentaje)", current.AnnualRatePercent},
		{"el plazo en años", current.TermYears},
	}

	values := make([]float64, len(prompts))
	valid := true
	for i, p := range prompts {
		text := fmt.Sprintf("Ingrese %s: ", p.label)
		if editing {
			text = fmt.Sprintf("Ingrese %s (actual: %s): ", p.label, strconv.FormatFloat(p.current, 'f', -1, 64))
		}
		raw, err := s.prompt(text)
		if err != nil {
			return domain.MortgageInput{}, false, err
		}
		v, ok := parseAmount(raw)
		if !ok {
			valid = false
		}
		values[i] = v
	}

	if !valid {
		s.println(invalidValuesAlert)
		return domain.MortgageInput{}, false, nil
	}

	return domain.MortgageInput{
		DownPayment:       values[0],
		TotalCost:         values[1],
		AnnualRatePercent: values[2],
		TermYears:         values[3],
	}, true, nil
}

func (s *Shell) readID(name command.Name) (int, bool, error) {
	verbs := map[command.Name]string{
		command.Show:     "mostrar",
		command.Delete:   "borrar",
		command.Edit:     "editar",
		command.Schedule: "amortizar",
	}
	raw, err := s.prompt(fmt.Sprintf("Ingrese el ID del cliente a %s: ", verbs[name]))
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		s.println("ID inválido.")
		return 0, false, nil
	}
	return id, true, nil
}

// parseAmount accepts finite, non-negative decimal numbers only.
func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

func (s *Shell) render(res command.Result) {
	if res.Message != "" {
		s.println(res.Message)
	}
	if res.View != nil {
		fmt.Fprintf(s.out, "Cliente %d:\n", res.View.ClientID)
		fmt.Fprintf(s.out, "  El valor del préstamo es: %s\n", res.View.Principal)
		fmt.Fprintf(s.out, "  El valor del interés es: %s\n", res.View.TotalInterest)
		fmt.Fprintf(s.out, "  El valor de la cuota mensual es: %s\n", res.View.MonthlyPayment)
	}
	if res.Rows != nil {
		s.renderRows(res.Rows)
	}
	if res.Schedule != nil {
		s.renderSchedule(res.Schedule)
	}
}

func (s *Shell) renderRows(rows []domain.SnapshotRow) {
	if len(rows) == 0 {
		s.println("No hay clientes registrados.")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ID\tInterés total\tPréstamo\t")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t\n", r.ID, r.TotalInterest, r.Principal)
	}
	w.Flush()
}

func (s *Shell) renderSchedule(schedule []domain.Installment) {
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Mes\tCuota\tInterés\tCapital\tSaldo\t")
	for _, inst := range schedule {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			inst.Month,
			domain.FormatAmount(inst.Payment),
			domain.FormatAmount(inst.Interest),
			domain.FormatAmount(inst.Principal),
			domain.FormatAmount(inst.Balance),
		)
	}
	w.Flush()
}

func (s *Shell) report(err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		s.println(invalidValuesAlert)
	case errors.Is(err, domain.ErrNotFound):
		s.println("Cliente no encontrado.")
	case errors.Is(err, domain.ErrInvalidOption):
		s.println("Opción no válida.")
	default:
		s.log.WithError(err).Error("command failed")
		s.println("Error: " + err.Error())
	}
}

func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("leer entrada: %w", err)
		}
		// la última línea puede llegar sin salto final
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		s.log.Debug("input closed, leaving shell")
		return nil
	}
	return err
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}
