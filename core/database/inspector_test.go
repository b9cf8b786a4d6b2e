package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}))
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return db, mock
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("CUR", "VARCHAR(20)", "NO", "MUL", nil, "").
		AddRow("Opcion", "INT", "YES", "", "0", "")
	mock.ExpectQuery("SHOW COLUMNS FROM `inventario`").WillReturnRows(rows)

	columns, err := GetTableColumns(context.Background(), db, "inventario")
	require.NoError(t, err)
	require.Len(t, columns, 2)

	assert.Equal(t, "cur", columns[0].Field)
	assert.Equal(t, "varchar(20)", columns[0].Type)
	assert.Nil(t, columns[0].Default)
	assert.Equal(t, "opcion", columns[1].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_InvalidName(t *testing.T) {
	db, _ := setupMockDB(t)

	_, err := GetTableColumns(context.Background(), db, "inventario; DROP TABLE x")
	assert.Error(t, err)
}

func TestValidIdentifier(t *testing.T) {
	assert.True(t, ValidIdentifier("inventario"))
	assert.True(t, ValidIdentifier("fomag_2024"))
	assert.False(t, ValidIdentifier("1abc"))
	assert.False(t, ValidIdentifier("a-b"))
	assert.False(t, ValidIdentifier(""))
}
