// Package httpx builds JSON request entities, sends them, and writes
// structured errors as JSON responses.
package httpx
