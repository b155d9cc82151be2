package schemas

import "embed"

// SchemasFS содержит все JSON-схемы запросов сервиса
//
//go:embed listings
var SchemasFS embed.FS
