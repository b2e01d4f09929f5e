// Package entaudit provides a bulk topical-entity content auditor.
// It fetches web pages (or accepts raw text), extracts salient entities,
// collapses near-duplicate surface forms into canonical entities with
// aggregated scores, and asks a generative model whether the content
// matches its intended topical focus, producing one tabular record per
// input for display or CSV export.
//
// This package contains domain types, pure pipeline algorithms, and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, rod/, gemini/).
package entaudit
