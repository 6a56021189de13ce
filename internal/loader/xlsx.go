// =============================================================================
// AI Inventory Consolidator - XLSX Loader
// =============================================================================
//
// Loads one sheet of an agency workbook into a Table. Most agencies put the
// inventory on the first sheet; the per-agency override table can name a
// specific sheet (Justice ships a multi-sheet workbook).
//
// =============================================================================

package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/inventory"
)

// LoadXLSX reads one sheet of an XLSX file into a Table. An empty sheetName
// selects the first sheet. A sheetName naming a sheet the workbook does not
// have is an error; the caller records it as an issue and skips the file.
func LoadXLSX(path, sheetName string) (*inventory.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return &inventory.Table{SourceFile: path}, nil
	}

	return tableFromRows(rows, path), nil
}
