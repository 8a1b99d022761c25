package importer

import (
	"fmt"
	"strings"

	"github.com/oliveirafjdo-web/Mega/internal/domain"
)

// Field declara um campo canônico e os headers candidatos que podem carregá-lo
// na planilha, em ordem de preferência.
type Field struct {
	Name       string
	Candidates []string
	Required   bool
}

// ResolveColumns mapeia cada campo para o header real da planilha. A
// comparação é case-insensitive e ignora espaços nas bordas. Campo obrigatório
// sem header casado aborta com ErrMissingColumn antes de qualquer linha ser
// processada; campos opcionais ausentes simplesmente ficam fora do mapa.
func ResolveColumns(headers []string, fields []Field) (map[string]string, error) {
	lower := make(map[string]string, len(headers))
	for _, h := range headers {
		lower[strings.ToLower(strings.TrimSpace(h))] = h
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		for _, cand := range f.Candidates {
			if h, ok := lower[strings.ToLower(cand)]; ok {
				out[f.Name] = h
				break
			}
		}
		if _, ok := out[f.Name]; !ok && f.Required {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, f.Candidates[0])
		}
	}
	return out, nil
}
