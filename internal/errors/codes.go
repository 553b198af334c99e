package errors

// Error codes for keymatch. The 1xx block covers configuration and
// environment, the 3xx block the indexed engine.
const (
	// ErrCodeConfigInvalid indicates a malformed or inconsistent config.
	ErrCodeConfigInvalid = "ERR_101_CONFIG_INVALID"

	// ErrCodeCacheDir indicates the index cache directory could not be
	// created or locked.
	ErrCodeCacheDir = "ERR_102_CACHE_DIR"

	// ErrCodeQuerySyntax indicates the index provider rejected the MATCH
	// expression. Recoverable: the caller may re-escape or re-quote the
	// query and retry.
	ErrCodeQuerySyntax = "ERR_301_QUERY_SYNTAX"

	// ErrCodeIndexIO indicates an index storage failure (I/O error,
	// corruption). Propagated unmodified, never retried here.
	ErrCodeIndexIO = "ERR_302_INDEX_IO"

	// ErrCodeIndexBuild indicates the index could not be built.
	ErrCodeIndexBuild = "ERR_303_INDEX_BUILD"
)

// retryableCodes are errors the caller may reasonably retry after
// adjusting the input.
var retryableCodes = map[string]bool{
	ErrCodeQuerySyntax: true,
}

func isRetryableCode(code string) bool {
	return retryableCodes[code]
}
