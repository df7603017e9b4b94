// Package domain holds the core entities shared between the pipeline, the
// storage layer and the API: capture result records, identifiers found in
// URLs and redirect chain data.
package domain
