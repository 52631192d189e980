// Package store defines the persistence interfaces for the learner-progress
// engine and the sentinel errors shared by all implementations. The engine
// owns all entity instances: store methods return copies, never references
// into stored state, so callers cannot mutate engine state from outside.
//
// Two implementations exist: platform/memstore (the default, in-memory for
// the process lifetime) and platform/postgres (the replaceable durable
// backend).
package store
