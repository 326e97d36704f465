package store

import _ "embed"

//go:embed schema.sql
var Schema string

const dropSchema = "drop table if exists results"
