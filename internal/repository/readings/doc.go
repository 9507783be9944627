// Package readings records every sampled reading to durable storage.
//
// FileLog appends fixed-format text lines, Archive inserts rows into a sqlite
// database and Multi fans a record out to several sinks. Every sink opens and
// closes its storage within a single Append call.
package readings
