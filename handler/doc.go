// Package handler delivers rendered log records to their
// destinations.
//
// A Handler receives one record per log call and owns its own
// reusable textbuf.Buffer, seeded with small inline storage so short
// lines never allocate. Handlers serialize their sink writes with a
// mutex; record building stays call-local, so the mutex is the only
// cross-call synchronization in the logging path.
//
// Write failures are deliberately discarded. Logging is observability,
// not a correctness-critical path: an instrumented program must never
// fail differently because its log output did.
//
// Handlers may additionally implement FailHandler to take over fatal
// output, the one place log output is guaranteed, as much as possible,
// to reach the user before the process exits. The console handler's
// fatal path prints a banner on every platform and, on Windows, raises
// an error dialog with the block-form rendering.
package handler
