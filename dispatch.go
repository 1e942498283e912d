package melodine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Nil is the deserialization target for endpoints whose successful response
// body is empty. It lets such calls run through the same typed pipeline as
// everything else.
type Nil struct{}

// requestSpec is the validated description of one API call: method, path
// under the versioned root, query parameters (only the ones explicitly set)
// and an optional body. Built fresh per call, consumed by dispatch, never
// persisted.
type requestSpec struct {
	method string
	path   string
	query  url.Values
	body   any    // JSON-encoded when non-nil
	raw    []byte // sent verbatim; used by the cover image upload
}

func newSpec(method, path string) requestSpec {
	return requestSpec{method: method, path: path, query: url.Values{}}
}

// set adds a query parameter; empty values are dropped so that only
// non-default parameters reach the wire.
func (r *requestSpec) set(key, value string) {
	if value != "" {
		r.query.Set(key, value)
	}
}

func (r *requestSpec) setInt(key string, value int) {
	r.query.Set(key, strconv.Itoa(value))
}

func (r *requestSpec) setBool(key string, value bool) {
	r.query.Set(key, strconv.FormatBool(value))
}

// setBounded adds a clamped numeric parameter when it was explicitly set.
func (r *requestSpec) setBounded(key string, b *Bounded) {
	if b != nil {
		r.setInt(key, b.Value())
	}
}

// joinIDs renders an id list the way the API wants it: comma separated.
func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// dispatch is the single execution path every endpoint call funnels
// through: refresh the token if it is near expiry, send the request with
// bearer auth, and map the response to either a typed payload or an error.
// There is no reactive retry on 401; the proactive expiry check is the only
// refresh trigger.
func dispatch[T any](ctx context.Context, c *Client, spec requestSpec) (T, error) {
	var zero T

	if err := c.store.refreshIfNeeded(ctx); err != nil {
		return zero, err
	}
	tok := c.store.current()

	endpoint := c.baseURL + spec.path
	if encoded := spec.query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var body io.Reader
	jsonBody := false
	switch {
	case spec.body != nil:
		encoded, err := json.Marshal(spec.body)
		if err != nil {
			return zero, fmt.Errorf("melodine: encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
		jsonBody = true
	case spec.raw != nil:
		body = bytes.NewReader(spec.raw)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, endpoint, body)
	if err != nil {
		return zero, fmt.Errorf("melodine: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("Accept", "application/json")
	if jsonBody {
		req.Header.Set("Content-Type", "application/json")
	} else if spec.raw != nil {
		req.Header.Set("Content-Type", "image/jpeg")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, &TransportError{err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &TransportError{err: err}
	}

	c.logger.Debug("request completed",
		"method", spec.method,
		"path", spec.path,
		"status", resp.StatusCode,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, decodeErrorBody(resp.StatusCode, data)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		if _, ok := any(zero).(Nil); ok {
			return zero, nil
		}
		return zero, &ParseError{err: io.ErrUnexpectedEOF}
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, &ParseError{err: err}
	}
	return out, nil
}

// dispatchNil runs calls whose successful response carries no payload.
func dispatchNil(ctx context.Context, c *Client, spec requestSpec) error {
	_, err := dispatch[Nil](ctx, c, spec)
	return err
}

// decodeErrorBody maps a non-2xx response: a body matching the Spotify
// error envelope becomes an APIError, anything else an HTTPError.
func decodeErrorBody(status int, data []byte) error {
	var envelope struct {
		Error struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Message != "" {
		st := envelope.Error.Status
		if st == 0 {
			st = status
		}
		return &APIError{Status: st, Message: envelope.Error.Message}
	}
	return &HTTPError{Status: status}
}
