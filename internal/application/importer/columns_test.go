package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveirafjdo-web/Mega/internal/domain"
)

func TestResolveColumns_OrdemDePreferencia(t *testing.T) {
	fields := []Field{
		{Name: "nome", Candidates: []string{"Nome", "Título"}},
	}

	cols, err := ResolveColumns([]string{"Título"}, fields)
	require.NoError(t, err)
	assert.Equal(t, "Título", cols["nome"])

	// Presentes os dois, vence o primeiro candidato.
	cols, err = ResolveColumns([]string{"Título", "Nome"}, fields)
	require.NoError(t, err)
	assert.Equal(t, "Nome", cols["nome"])
}

func TestResolveColumns_CaseInsensitiveEEspacos(t *testing.T) {
	fields := []Field{{Name: "sku", Candidates: []string{"SKU"}, Required: true}}
	cols, err := ResolveColumns([]string{"  sku  ", "Nome"}, fields)
	require.NoError(t, err)
	assert.Equal(t, "  sku  ", cols["sku"])
}

func TestResolveColumns_ObrigatoriaAusente(t *testing.T) {
	fields := []Field{{Name: "numero", Candidates: []string{"N.º de venda"}, Required: true}}
	_, err := ResolveColumns([]string{"SKU", "Nome"}, fields)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), "N.º de venda")
}

func TestResolveColumns_OpcionalAusenteNaoErra(t *testing.T) {
	fields := []Field{{Name: "preco", Candidates: []string{"Preço"}}}
	cols, err := ResolveColumns([]string{"SKU"}, fields)
	require.NoError(t, err)
	_, ok := cols["preco"]
	assert.False(t, ok)
}
