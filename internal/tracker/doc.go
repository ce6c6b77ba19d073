// Package tracker turns browser bookmark trees into stored rows.
//
// # Architecture
//
// A sync run is one pass through a fixed pipeline, once per browser:
//
//	Source → *browsers.Node tree → Flatten → Record → Reconcile → Change → store upsert
//
// The Source interface hides where bookmarks come from (a JSON file, a
// sqlite database); Flatten lifts the tree into flat records annotated
// with folder paths; the Reconciler compares each record against the
// stored row with the same identity and decides insert, update or
// unchanged; the Syncer drives all of it and writes the changes.
//
// A bookmark's identity is (browser, url, folder path). The same URL in
// two folders is two entries. Sync is additive: rows are never deleted
// when a bookmark disappears from a browser.
//
// # Failure Semantics
//
// A browser that cannot be located or parsed is skipped and the run
// continues with the others. A store failure ends the run; upserts
// already committed stay in place, and the next run picks up from the
// stored state.
package tracker
