// Package resource bounds the work an index does on behalf of its callers:
// snapshot buffer memory, concurrent batch workers, and snapshot I/O throughput.
//
// A nil *Controller is valid and imposes no limits.
package resource
