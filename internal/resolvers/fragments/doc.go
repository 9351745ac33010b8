// Package fragments resolves frag:// addresses against a fragment store.
//
// The provider returned for frag://ACCESSION reads through to the store on
// every call, so fragments deposited after resolution become visible. A
// region is served only when a single stored span fully contains it.
package fragments
