// Package httpcache implements a resolver that downloads remote records,
// keeps them in an on-disk cache and memoizes parsed providers.
//
// A Locator supplies the scheme-specific parts: which schemes are handled,
// how a parsed address is canonicalised and which URL serves it. Resolution
// proceeds as memo lookup, then cache file, then download. A cache file that
// fails to parse is logged as a warning, removed and downloaded once more;
// a second parse failure is a parse error. Network failures are reported
// without retry.
//
// Downloads are streamed in fixed-size chunks to a uniquely named temporary
// file in the cache directory, synced and renamed into place, so readers in
// other processes never observe a partial cache file.
//
// # Thread Safety
//
// A single mutex guards each Resolver for the whole of Resolve. Concurrent
// calls are serialized even for different addresses, which keeps the memo
// and the cache files free of races within a process at the cost of
// parallel downloads.
package httpcache
