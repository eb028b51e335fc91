// Package kvstore is the durable key-value store the session layer keeps its
// state in: string keys mapped to string (JSON) values.
//
// Two implementations are provided: SQLiteStore, backed by the kv_store
// table, and MemoryStore for ephemeral runs and tests. Both guarantee that
// every write made inside one Update call is applied atomically, and that a
// read observes the most recent completed write.
//
// A missing key is reported as ok == false with a nil error.
package kvstore
