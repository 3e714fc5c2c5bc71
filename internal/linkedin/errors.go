package linkedin

import "fmt"

// InvalidArgumentError signals caller-supplied data which failed validation.
// It is always raised before any network call is made.
type InvalidArgumentError struct {
	Msg string
}

func (e InvalidArgumentError) Error() string {
	return e.Msg
}

// requiredArg is the shared failure for a required field which is blank
// after trimming.
func requiredArg(field string) error {
	return InvalidArgumentError{Msg: field + " is required"}
}

// AuthRejectedError signals an upstream 401/403. The message deliberately
// omits the response body and instead points at credential refresh.
type AuthRejectedError struct {
	Status int
}

func (e AuthRejectedError) Error() string {
	return fmt.Sprintf("linkedin rejected the request (status %d), ensure LINKEDIN_ACCESS_TOKEN is valid and has the required scopes, or re-run with '-auth' to refresh it", e.Status)
}

// UpstreamError signals any other non-2xx response. Snippet holds at most
// snippetMaxLen characters of the response body, flattened to a single line.
type UpstreamError struct {
	Status  int
	Snippet string
}

func (e UpstreamError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("linkedin request failed (status %d)", e.Status)
	}
	return fmt.Sprintf("linkedin request failed (status %d), response: %v", e.Status, e.Snippet)
}
