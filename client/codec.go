package client

import (
	"encoding/json"
	"io"
	"net/http"
)

// envelope is the wrapper every non-204 response uses: {"data": ...} on
// success, {"error": "..."} on failure.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

// decodeResponse unwraps the response envelope into out, normalizing every
// failure into an *APIError. A 204 yields the void result no matter what the
// body contains. Pass a nil out for operations with no result.
func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		message := ""
		if err := json.Unmarshal(raw, &env); err == nil {
			message = env.Error
		}
		return newHTTPError(resp.StatusCode, message)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return newDecodeError(err, "failed to parse response envelope")
	}

	if out == nil {
		return nil
	}
	if env.Data == nil {
		return newDecodeError(nil, "response envelope is missing the data field")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return newDecodeError(err, "failed to decode response data")
	}
	return nil
}
