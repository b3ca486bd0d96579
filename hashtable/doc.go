// Package hashtable implements a fixed-capacity hash table keyed by product
// code, using double hashing for collision resolution and lazy deletion.
//
// Every operation that needs more than one probe to terminate appends a
// structured record to the table's collision log, including the full probe
// sequence and the arithmetic that produced it. The log is append-only and
// lives as long as the table.
//
// The table is not safe for concurrent use; callers that share a table
// across goroutines must serialize access themselves.
package hashtable
