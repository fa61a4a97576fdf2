// Package sync ingests crane, failure and maintenance rows from a tabular
// source into the record store.
//
// The Manager performs one ingest at a time on behalf of its caller: it reads
// the sheets through a sources.SourceHandler, bulk-replaces the store, drops
// the read cache and publishes the regenerated active alerts. The optional
// failure and maintenance sheets degrade to warnings when they cannot be read;
// the crane sheet is required and a failure to read it leaves the store as it was.
//
// Manager also covers the two auxiliary operations the dashboard exposes:
// TestConnection previews a sheet without touching the store, and
// SyncCraneSpecs patches grade, drive type and unmanned flag of existing cranes.
//
// Scheduling lives in the coordinator subpackage, which runs passes on a timer
// and guarantees that two passes never overlap.
package sync
