// Package sheet lê e escreve planilhas XLSX (excelize) e os relatórios
// colaterais das importações.
package sheet

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/importer"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
)

// ReadTable lê uma planilha XLSX em um Table. sheetName vazio usa a primeira
// aba; headerRow é a linha (zero-based) do cabeçalho, tudo acima é
// descartado (os exports do Mercado Livre carregam um preâmbulo).
func ReadTable(file io.Reader, filename, sheetName string, headerRow int) (*importer.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFile, ext)
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	} else if idx, _ := f.GetSheetIndex(sheetName); idx < 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrMissingSheet, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("ler aba %q: %w", sheetName, err)
	}
	if len(rows) <= headerRow {
		return nil, domain.ErrEmptySpreadsheet
	}

	headers := make([]string, 0, len(rows[headerRow]))
	for _, h := range rows[headerRow] {
		headers = append(headers, strings.TrimSpace(h))
	}

	t := &importer.Table{Headers: headers}
	for _, raw := range rows[headerRow+1:] {
		row := make(importer.Row, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			var v string
			if i < len(raw) {
				v = raw[i]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			row[h] = v
		}
		if empty {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return nil, domain.ErrEmptySpreadsheet
	}
	return t, nil
}
