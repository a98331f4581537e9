package shell

import (
	"bytes"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-registry/command"
	"mortgage-registry/repository"
	"mortgage-registry/service"
)

func run(t *testing.T, lines ...string) (string, *service.RegistryService) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	mortgages := service.NewMortgageService(repository.NewMemoryCache(), logger)
	registry := service.NewRegistryService(repository.NewClientRepositoryMemory(), mortgages, logger)
	dispatcher := command.NewDispatcher(registry, logger)

	var out bytes.Buffer
	sh := New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, dispatcher, logger)
	require.NoError(t, sh.Run())
	return out.String(), registry
}

func TestShell_AddAndShow(t *testing.T) {
	out, registry := run(t,
		"1", "20000", "120000", "6", "30",
		"2", "1",
		"8",
	)

	assert.Contains(t, out, "Cliente con ID 1 añadido correctamente.")
	assert.Contains(t, out, "El valor del préstamo es: 100000.00")
	assert.Contains(t, out, "El valor del interés es: 115838.19")
	assert.Contains(t, out, "El valor de la cuota mensual es: 599.55")
	assert.Contains(t, out, "Saliendo del programa...")
	assert.Equal(t, 1, registry.Len())
}

func TestShell_RejectsInvalidNumbers(t *testing.T) {
	out, registry := run(t,
		"1", "abc", "120000", "6", "30",
		"1", "1000", "NaN", "6", "30",
		"1", "1000", "5000", "-6", "30",
		"8",
	)

	assert.Equal(t, 3, strings.Count(out, invalidValuesAlert))
	assert.Equal(t, 0, registry.Len())
}

func TestShell_ZeroTermIsRejectedByCore(t *testing.T) {
	out, registry := run(t, "1", "0", "1000", "5", "0", "8")

	assert.Contains(t, out, invalidValuesAlert)
	assert.Equal(t, 0, registry.Len())
}

func TestShell_EditShowsCurrentValues(t *testing.T) {
	out, registry := run(t,
		"1", "20000", "120000", "6", "30",
		"4", "1", "70000", "120000", "6", "30",
		"8",
	)

	assert.Contains(t, out, "(actual: 20000)")
	assert.Contains(t, out, "Cliente con ID 1 actualizado correctamente.")
	c, err := registry.Find(1)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, c.Mortgage.Principal)
}

func TestShell_EditInvalidLeavesClient(t *testing.T) {
	out, registry := run(t,
		"1", "20000", "120000", "6", "30",
		"4", "1", "-5", "120000", "6", "30",
		"8",
	)

	assert.Contains(t, out, invalidValuesAlert)
	c, err := registry.Find(1)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, c.DownPayment)
}

func TestShell_DeleteAndMissing(t *testing.T) {
	out, registry := run(t,
		"1", "0", "1000", "5", "1",
		"3", "1",
		"3", "1",
		"2", "x",
		"8",
	)

	assert.Contains(t, out, "Cliente con ID 1 eliminado correctamente.")
	assert.Contains(t, out, "Cliente no encontrado.")
	assert.Contains(t, out, "ID inválido.")
	assert.Equal(t, 0, registry.Len())
}

func TestShell_Sort(t *testing.T) {
	out, registry := run(t,
		"1", "0", "50000", "5", "10",
		"1", "0", "30000", "5", "10",
		"5", "ASCENDENTE",
		"5", "de lado",
		"8",
	)

	assert.Contains(t, out, "Clientes ordenados:")
	assert.Contains(t, out, "Opción no válida. No se realizó el ordenamiento.")
	rows := registry.Snapshot()
	assert.Equal(t, 2, rows[0].ID)
	assert.Less(t, strings.Index(out, "30000.00"), strings.Index(out, "50000.00"))
}

func TestShell_ListAndSchedule(t *testing.T) {
	out, _ := run(t,
		"6",
		"1", "0", "1200", "0", "1",
		"6",
		"7", "1",
		"8",
	)

	assert.Contains(t, out, "No hay clientes registrados.")
	assert.Contains(t, out, "Préstamo")
	assert.Contains(t, out, "1200.00")
	assert.Contains(t, out, "Saldo")
	assert.Contains(t, out, "100.00")
}

func TestShell_InvalidOptionAndEOF(t *testing.T) {
	out, _ := run(t, "9", "hola")

	assert.Equal(t, 2, strings.Count(out, "Opción no válida."))
	assert.NotContains(t, out, "Saliendo")
}

func TestParseAmount(t *testing.T) {
	v, ok := parseAmount(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	for _, raw := range []string{"", "-1", "NaN", "Inf", "1,5"} {
		_, ok := parseAmount(raw)
		assert.False(t, ok, raw)
	}
}

func TestShell_OversizedLineKeepsLooping(t *testing.T) {
	out, registry := run(t,
		strings.Repeat("9", 100*1024),
		"1", "20000", "120000", "6", "30",
		"8",
	)

	assert.Contains(t, out, "Opción no válida.")
	assert.Contains(t, out, "Cliente con ID 1 añadido correctamente.")
	assert.Contains(t, out, "Saliendo del programa...")
	assert.Equal(t, 1, registry.Len())
}

func TestShell_LastLineWithoutNewline(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	mortgages := service.NewMortgageService(repository.NewMemoryCache(), logger)
	registry := service.NewRegistryService(repository.NewClientRepositoryMemory(), mortgages, logger)
	dispatcher := command.NewDispatcher(registry, logger)

	var out bytes.Buffer
	sh := New(strings.NewReader("1\r\n20000\r\n120000\r\n6\r\n30\r\n8"), &out, dispatcher, logger)

	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "Saliendo del programa...")
	assert.Equal(t, 1, registry.Len())
}
