package adapterimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/log"
	"github.com/morikuni/failure/v2"
)

// maxBodyBytes bounds how much of a response body is read
const maxBodyBytes = 8 << 20

// Options configures a single adapter
type Options struct {
	Env        adapter.Env
	Credential string

	// BaseURL overrides the platform's default base URL
	BaseURL string
}

// base holds what every adapter needs to talk to its platform
type base struct {
	desc       platform.Descriptor
	env        adapter.Env
	credential string
}

func newBase(desc platform.Descriptor, o Options) base {
	if o.BaseURL != "" {
		desc.BaseURL = strings.TrimRight(o.BaseURL, "/")
	}
	desc.CredentialConfigured = o.Credential != ""
	return base{
		desc:       desc,
		env:        o.Env.WithDefaults(),
		credential: o.Credential,
	}
}

func (b *base) Descriptor() platform.Descriptor {
	return b.desc
}

// call describes one HTTP exchange with the platform
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   platform.AuthMode

	// bearer replaces the configured credential in the Authorization header
	bearer string
	// accept overrides the JSON Accept header
	accept string
}

// authorize enforces the credential requirement of an operation
func (b *base) authorize(mode platform.AuthMode) error {
	if mode == platform.AuthRequired && b.credential == "" {
		return failure.New(platform.ErrCredentialMissing,
			failure.Message(fmt.Sprintf("%s API key required", b.desc.Name)),
			failure.Context{
				"platform": b.desc.ID.String(),
			},
		)
	}
	return nil
}

func (b *base) endpoint(path string, query url.Values) (string, error) {
	u, err := url.Parse(b.desc.BaseURL + path)
	if err != nil {
		return "", failure.Wrap(err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// roundTrip performs the exchange and returns the raw response body of a successful call
func (b *base) roundTrip(ctx context.Context, c call) ([]byte, error) {
	if err := b.authorize(c.auth); err != nil {
		return nil, err
	}

	u, err := b.endpoint(c.path, c.query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if c.body != nil {
		data, err := json.Marshal(c.body)
		if err != nil {
			return nil, failure.Wrap(err)
		}
		body = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, b.env.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, c.method, u, body)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	req.Header.Set("User-Agent", b.env.UserAgent)
	if c.accept != "" {
		req.Header.Set("Accept", c.accept)
	} else {
		req.Header.Set("Accept", "application/json")
	}
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case c.bearer != "":
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	case c.auth != platform.AuthNone && b.credential != "":
		req.Header.Set("Authorization", "Bearer "+b.credential)
	}

	resp, err := b.env.HTTPClient.Do(req)
	if err != nil {
		msg := fmt.Sprintf("%s unreachable: %v", b.desc.Name, err)
		if errors.Is(err, context.DeadlineExceeded) {
			msg = fmt.Sprintf("%s timed out after %s", b.desc.Name, b.env.Timeout)
		}
		return nil, failure.New(platform.ErrNetworkFailure,
			failure.Message(msg),
			failure.Context{
				"platform": b.desc.ID.String(),
				"url":      u,
				"error":    err.Error(),
			},
		)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, failure.New(platform.ErrNetworkFailure,
			failure.Message(fmt.Sprintf("%s: reading response failed", b.desc.Name)),
			failure.Context{
				"platform": b.desc.ID.String(),
				"url":      u,
				"error":    err.Error(),
			},
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("Platform returned error status",
			"platform", b.desc.ID,
			"status", resp.StatusCode,
			"body", snippet(data),
		)
		return nil, failure.New(platform.ErrNetworkFailure,
			failure.Message(fmt.Sprintf("%s returned HTTP %d", b.desc.Name, resp.StatusCode)),
			failure.Context{
				"platform":    b.desc.ID.String(),
				"url":         u,
				"status":      resp.Status,
				"status_code": strconv.Itoa(resp.StatusCode),
			},
		)
	}

	return data, nil
}

// do performs the exchange and decodes a JSON payload. An empty body decodes to nil.
func (b *base) do(ctx context.Context, c call) (any, error) {
	data, err := b.roundTrip(ctx, c)
	if err != nil {
		return nil, err
	}
	return b.decode(data)
}

func (b *base) decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, failure.New(platform.ErrMalformedResponse,
			failure.Message(fmt.Sprintf("%s returned invalid JSON", b.desc.Name)),
			failure.Context{
				"platform": b.desc.ID.String(),
				"error":    err.Error(),
			},
		)
	}
	return payload, nil
}

// send performs a publishing call and returns the response as an item
func (b *base) send(ctx context.Context, method, path string, body any, mode platform.AuthMode) (platform.Item, error) {
	payload, err := b.do(ctx, call{
		method: method,
		path:   path,
		body:   body,
		auth:   mode,
	})
	if err != nil {
		return nil, err
	}
	return toItem(payload), nil
}

// probe calls the probe endpoint and discards the body
func (b *base) probe(ctx context.Context, mode platform.AuthMode) error {
	_, err := b.roundTrip(ctx, call{
		method: http.MethodGet,
		path:   b.desc.ProbePath,
		auth:   mode,
	})
	return err
}

// statusOf returns the HTTP status a platform answered with, or zero when the call failed before a response
func statusOf(err error) int {
	ctx, ok := failure.OriginValue(err, failure.KeyContext).(failure.Context)
	if !ok {
		return 0
	}
	code, _ := strconv.Atoi(ctx["status_code"])
	return code
}

func invalidArgument(desc platform.Descriptor, msg string) error {
	return failure.New(platform.ErrInvalidArgument,
		failure.Message(msg),
		failure.Context{
			"platform": desc.ID.String(),
		},
	)
}

func snippet(data []byte) string {
	const max = 200
	s := string(data)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
