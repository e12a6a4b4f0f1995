package domain

// FetchResult is the outcome of a successful invocation. It is constructed
// once and echoes the resolved inputs back to the caller.
type FetchResult struct {
	Changed bool   `json:"changed"`
	URL     string `json:"url"`
	Dest    string `json:"dest"`
}
