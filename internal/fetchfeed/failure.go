// ABOUTME: Failure classification for the fetch-feed pipeline
// ABOUTME: Maps pipeline errors to kinds, exit codes and the JSON failure payload

package fetchfeed

import (
	"encoding/json"
	"errors"

	"github.com/jdichev/forest/internal/fetch"
	"github.com/jdichev/forest/internal/parse"
)

// Failure kinds reported in failure payloads.
const (
	KindTransport = "transport"
	KindBodyRead  = "body_read"
	KindFeedParse = "feed_parse"
	KindInternal  = "internal"
)

// Classify maps an error from the pipeline to its failure kind.
func Classify(err error) string {
	switch {
	case errors.Is(err, fetch.ErrTransport):
		return KindTransport
	case errors.Is(err, fetch.ErrBodyRead):
		return KindBodyRead
	case errors.Is(err, parse.ErrFeedParse):
		return KindFeedParse
	default:
		return KindInternal
	}
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	switch Classify(err) {
	case KindTransport:
		return 2
	case KindBodyRead:
		return 3
	case KindFeedParse:
		return 4
	default:
		return 1
	}
}

// Failure is the machine-checkable payload emitted instead of a document.
type Failure struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// NewFailure builds the failure payload for err.
func NewFailure(err error) Failure {
	return Failure{Error: err.Error(), Kind: Classify(err)}
}

// JSON returns the payload as a single-line JSON object.
func (f Failure) JSON() string {
	data, err := json.Marshal(f)
	if err != nil {
		return `{"error":"failed to encode failure","kind":"internal"}`
	}
	return string(data)
}
