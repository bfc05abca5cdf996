// Package database opens the SQL connection used by the table source.
//
// Connect picks a GORM dialector from Config.Driver (mysql or sqlite) and
// pings the database within the configured timeout. GetTableColumns lists the
// columns of a table in declaration order, through SHOW COLUMNS on MySQL and
// PRAGMA table_info on SQLite; ValidTableName guards every interpolated name.
package database
