package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/techstore-api/internal/application/usecase"
)

var _ usecase.RowSource = (*Sheet)(nil)

// Sheet expone las filas de la primera hoja de un archivo xlsx como matriz de
// strings, con las celdas ya formateadas por excelize.
type Sheet struct {
	file *excelize.File
}

// Open abre un xlsx desde un reader (el archivo subido). El llamador debe
// invocar Close cuando termine.
func Open(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	return &Sheet{file: f}, nil
}

// Rows devuelve todas las filas de la primera hoja, cabecera incluida.
func (s *Sheet) Rows() ([][]string, error) {
	sheets := s.file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el archivo no tiene hojas")
	}
	rows, err := s.file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return rows, nil
}

// Close libera los recursos del archivo.
func (s *Sheet) Close() error {
	return s.file.Close()
}
