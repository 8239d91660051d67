// Package entries provides the persistence layer for knowledge entries.
//
// # Overview
//
// The whole collection is the unit of persistence: Load reads every entry and
// Save replaces every entry. Two implementations exist:
//
//   - JSONFileRepository: a pretty-printed UTF-8 JSON array in one file. A
//     missing file is created as an empty array; an undecodable file is moved
//     to a timestamped .bak path and replaced by an empty array.
//   - SQLiteRepository: a single-file SQLite database (see OpenSQLite) whose
//     schema is applied with goose.
//
// # Concurrency
//
// Neither implementation locks the backing file. Two processes working on the
// same file can interleave Load and Save and lose updates.
//
// Typical Usage
//
//	repo := entries.NewJSONFileRepository("data/knowledge.json", log)
//	all, _ := repo.Load(ctx)
//	_ = repo.Save(ctx, append(all, e))
package entries
