// Package diag defines the finding model shared by the parser, the catalog
// checks, and the CLI.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture parse
//     warnings and catalog findings.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     findings without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g. “also
// documented here”) rather than repeating the diagnostic message.
//
// # Emitting findings
//
// Producers use a diag.Reporter to decouple emission from storage. The parser
// and checker construct a ReportBuilder via NewReportBuilder (or the helper
// functions ReportError/ReportWarning/ReportInfo) and chain WithNote before
// calling Emit. diag.BagReporter aggregates findings into a Bag, which supports
// sorting, deduplication, and severity queries.
//
// Keep the data model deterministic: the CLI serialises findings for golden
// tests, so any new fields must not introduce map-order or time dependence.
package diag
