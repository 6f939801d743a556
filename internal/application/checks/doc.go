// Package checks holds the independent inspection units of a diagnostic
// run. Each check reads one surface of the target project (files, the entry
// module, the dependency manifest, database files, templates, static assets,
// server wiring, permission bits) and writes findings and facts into the
// shared report. Checks never return errors; a failed inspection becomes a
// finding and the check moves on.
package checks
