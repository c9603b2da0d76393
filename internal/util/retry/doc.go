// Package retry retries remote artifact uploads with exponential backoff.
//
// Local filesystem writes are never retried; only [Do] callers talking to
// object storage use it. Errors wrapped with [Permanent] stop the loop at once.
package retry
