// Package schemas embeds the JSON Schemas for the reference data formats.
package schemas

import _ "embed"

// PolicySchemaJSON is the schema for one policy record.
//
//go:embed policy.schema.json
var PolicySchemaJSON string

// InterventionSchemaJSON is the schema for one intervention record.
//
//go:embed intervention.schema.json
var InterventionSchemaJSON string
