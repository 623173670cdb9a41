package middleware

import "net/http"

// SubmissionHeader is set on every response when a submission ID is configured
const SubmissionHeader = "X-CSE356"

// Submission tags every response with the configured submission ID. An
// empty ID disables the header.
func Submission(id string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if id == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(SubmissionHeader, id)
			next.ServeHTTP(w, r)
		})
	}
}
