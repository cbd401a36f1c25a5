package car

import _ "embed"

// Schema DDL таблицы cars
//
//go:embed schema.sql
var Schema string
