// Package services contains the client's application services: session
// management (local-roster and remote login, restore, logout), the exercise
// catalog with its degrade-gracefully fallback policy, the write-through
// favourites store, and the theme preference.
//
// Services own the in-memory state the UI renders; the storage repository is
// the durable source of truth they reconcile with.
package services
