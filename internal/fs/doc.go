// Package fs provides the filesystem abstraction behind blobstore.LocalStore.
//
//   - [FileSystem]: the operations LocalStore performs (open, rename, remove, ...)
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test utility that injects write, sync, close and rename failures
//
// Production code uses fs.Default (which is [LocalFS]). Tests wrap it:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailAfterBytes: 16})
//
// Operations take no context.Context: local syscalls are short and cannot be
// interrupted. Callers check their context between operations.
package fs
