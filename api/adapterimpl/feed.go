package adapterimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/elyanlabs/grazer/api/platform"
	"github.com/elyanlabs/grazer/log"
	"github.com/samber/lo"
)

// DefaultLimit is used when a discovery call does not set a limit
const DefaultLimit = 20

// route is one discovery endpoint and the envelope keys of its response
type route struct {
	// path may contain a single %s that is replaced with the board
	path     string
	envelope []string
}

// feed is an adapter whose discovery is a single GET returning an enveloped list
type feed struct {
	base

	route route
	// boards maps a board name to a dedicated endpoint; other boards go through route
	boards       map[string]route
	defaultBoard string

	auth platform.AuthMode

	// limitParam sends the limit as a query parameter, capped by maxLimit when non-zero
	limitParam bool
	maxLimit   int

	// query adds platform specific parameters
	query func(opts platform.DiscoverOptions, q url.Values)
	// decorate enriches each returned item
	decorate func(item platform.Item)
	// token supplies a bearer that replaces the raw credential
	token func(ctx context.Context) (string, error)
	// expire drops a bearer the platform rejected so the next token call exchanges a new one
	expire func(bearer string)
}

func (f *feed) Discover(ctx context.Context, opts platform.DiscoverOptions) ([]platform.Item, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	board := opts.Board
	if board == "" {
		board = f.defaultBoard
	}

	r := f.route
	if br, ok := f.boards[board]; ok {
		r = br
	}
	path := r.path
	if strings.Contains(path, "%s") {
		path = fmt.Sprintf(path, url.PathEscape(board))
	}

	q := url.Values{}
	if f.limitParam {
		l := limit
		if f.maxLimit > 0 && l > f.maxLimit {
			l = f.maxLimit
		}
		q.Set("limit", strconv.Itoa(l))
	}
	if f.query != nil {
		f.query(opts, q)
	}

	data, err := f.authed(ctx, call{
		method: http.MethodGet,
		path:   path,
		query:  q,
		auth:   f.auth,
	})
	if err != nil {
		return nil, err
	}
	payload, err := f.decode(data)
	if err != nil {
		return nil, err
	}

	items, err := unwrapList(f.desc, payload, r.envelope...)
	if err != nil {
		return nil, err
	}
	items = lo.Slice(items, 0, limit)

	if f.decorate != nil {
		for _, item := range items {
			f.decorate(item)
		}
	}
	return items, nil
}

func (f *feed) Probe(ctx context.Context) error {
	_, err := f.authed(ctx, call{
		method: http.MethodGet,
		path:   f.desc.ProbePath,
		auth:   f.auth,
	})
	return err
}

// authed performs c with the bearer from token. A bearer answered with 401 is
// expired and the call is retried once with a freshly exchanged one.
func (f *feed) authed(ctx context.Context, c call) ([]byte, error) {
	bearer, err := f.bearerFor(ctx)
	if err != nil {
		return nil, err
	}
	c.bearer = bearer
	data, err := f.roundTrip(ctx, c)
	if err == nil || bearer == "" || f.expire == nil || statusOf(err) != http.StatusUnauthorized {
		return data, err
	}

	log.Debug("Bearer rejected, exchanging a new one", "platform", f.desc.ID)
	f.expire(bearer)
	if c.bearer, err = f.bearerFor(ctx); err != nil {
		return nil, err
	}
	return f.roundTrip(ctx, c)
}

func (f *feed) bearerFor(ctx context.Context) (string, error) {
	if f.token == nil || f.credential == "" {
		return "", nil
	}
	return f.token(ctx)
}
