package reference

import (
	"context"
	"fmt"
	"strings"

	"product-alternatives/core/database"
	"product-alternatives/core/table"
	"product-alternatives/core/utils"

	"gorm.io/gorm"
)

// DatabaseSource reads the inventory from a table named like the sheet.
type DatabaseSource struct {
	db *gorm.DB
}

func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

func (s *DatabaseSource) Name() string {
	return KindDatabase
}

// Fetch selects every row of the sheet's table. Columns keep their table order.
func (s *DatabaseSource) Fetch(ctx context.Context, sheet string) (*table.Table, error) {
	columns, err := database.GetTableColumns(ctx, s.db, sheet)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", table.ErrNoHeader, sheet)
	}

	names := make([]string, len(columns))
	quoted := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Field
		quoted[i] = "`" + strings.ReplaceAll(c.Field, "`", "``") + "`"
	}

	query := fmt.Sprintf("SELECT %s FROM `%s`", strings.Join(quoted, ", "), sheet)
	rows, err := s.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", sheet, err)
	}
	defer rows.Close()

	t := table.New(names...)
	values := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", sheet, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = strings.TrimSpace(utils.ToString(v))
		}
		t.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet, err)
	}
	return t, nil
}
