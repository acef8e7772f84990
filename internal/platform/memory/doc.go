// Package memory provides an in-process implementation of the store
// interfaces. It is used for local runs without a database and as the
// backing store in API tests.
package memory
