// Package database handles the optional connection to the inventory database.
//
// It wraps GORM with the MySQL driver. When the reference kind is "database",
// each variant's reference sheet is read from the table of the same name.
//
// # Connect
//
// Connect builds the DSN (with URL encoded credentials and I/O timeouts),
// configures the pool and pings the server. Open is the shared gorm.Open
// wrapper, also used by tests with a sqlmock connection.
//
// # Schema Inspection
//
// GetTableColumns returns the columns of a table via SHOW COLUMNS. The database
// reference source uses it to fix the column order before selecting rows.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Inventory database unavailable", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(ctx, db, "inventario")
package database
