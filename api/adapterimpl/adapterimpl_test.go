package adapterimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/elyanlabs/grazer/api/adapter"
	"github.com/elyanlabs/grazer/api/platform"
	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

// countingTransport fails the test on any request and counts how many were attempted
type countingTransport struct {
	calls atomic.Int32
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}, nil
}

type errorTransport struct{}

func (e *errorTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, io.ErrUnexpectedEOF
}

func jsonHandler(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}
}

func testOptions(server *httptest.Server, credential string) Options {
	return Options{
		Env: adapter.Env{
			HTTPClient: server.Client(),
			Timeout:    2 * time.Second,
		},
		Credential: credential,
		BaseURL:    server.URL,
	}
}

func TestUnwrapList(t *testing.T) {
	desc := platform.Descriptor{ID: "test", Name: "Test"}

	tests := []struct {
		name    string
		payload string
		keys    []string
		want    []platform.Item
		wantErr bool
	}{
		{
			name:    "envelope key",
			payload: `{"posts":[{"id":"1"},{"id":"2"}]}`,
			keys:    []string{"posts"},
			want:    []platform.Item{{"id": "1"}, {"id": "2"}},
		},
		{
			name:    "bare list",
			payload: `[{"id":"1"}]`,
			keys:    []string{"posts"},
			want:    []platform.Item{{"id": "1"}},
		},
		{
			name:    "nested key",
			payload: `{"data":{"posts":[{"id":"x"}]}}`,
			keys:    []string{"data.posts", "posts"},
			want:    []platform.Item{{"id": "x"}},
		},
		{
			name:    "second key",
			payload: `{"results":[{"id":"r"}]}`,
			keys:    []string{"posts", "results"},
			want:    []platform.Item{{"id": "r"}},
		},
		{
			name:    "null list",
			payload: `{"posts":null}`,
			keys:    []string{"posts"},
			want:    []platform.Item{},
		},
		{
			name:    "scalar entries are boxed",
			payload: `{"posts":["a"]}`,
			keys:    []string{"posts"},
			want:    []platform.Item{{"value": "a"}},
		},
		{
			name:    "missing key",
			payload: `{"error":"nope"}`,
			keys:    []string{"posts"},
			wantErr: true,
		},
		{
			name:    "scalar payload",
			payload: `42`,
			keys:    []string{"posts"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload any
			if err := json.Unmarshal([]byte(tt.payload), &payload); err != nil {
				t.Fatal(err)
			}
			got, err := unwrapList(desc, payload, tt.keys...)
			if tt.wantErr {
				if !failure.Is(err, platform.ErrMalformedResponse) {
					t.Errorf("unwrapList() error = %v, want %v", err, platform.ErrMalformedResponse)
				}
				return
			}
			if err != nil {
				t.Fatalf("unwrapList() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unwrapList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCredentialMissingMakesNoCalls(t *testing.T) {
	transport := &countingTransport{}
	o := Options{Env: adapter.Env{HTTPClient: &http.Client{Transport: transport}}}
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"fourclaw discover", func() error {
			_, err := NewFourClaw(o).Discover(ctx, platform.DiscoverOptions{})
			return err
		}},
		{"pinchedin probe", func() error { return NewPinchedIn(o).Probe(ctx) }},
		{"clawtasks discover", func() error {
			_, err := NewClawTasks(o).Discover(ctx, platform.DiscoverOptions{})
			return err
		}},
		{"clawnews post", func() error {
			_, err := NewClawNews(o).Post(ctx, platform.Post{Title: "t", Link: "https://example.com"})
			return err
		}},
		{"moltbook post", func() error {
			_, err := NewMoltbook(o).Post(ctx, platform.Post{Title: "t"})
			return err
		}},
		{"clawcities comment", func() error {
			_, err := NewClawCities(o).Comment(ctx, platform.Comment{Target: "sophia-elya", Content: "hi"})
			return err
		}},
		{"thecolony comment", func() error {
			_, err := NewTheColony(o).Comment(ctx, platform.Comment{Target: "1", Content: "hi"})
			return err
		}},
		{"pinchedin respond", func() error {
			_, err := NewPinchedIn(o).Respond(ctx, "42", "accepted")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !failure.Is(err, platform.ErrCredentialMissing) {
				t.Errorf("error = %v, want %v", err, platform.ErrCredentialMissing)
			}
		})
	}

	if n := transport.calls.Load(); n != 0 {
		t.Errorf("expected no network calls, got %d", n)
	}
}

func TestFeedDiscover(t *testing.T) {
	var gotQuery, gotPath, gotAuth, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		io.WriteString(w, `{"threads":[{"id":"1"},{"id":"2"},{"id":"3"}]}`)
	}))
	defer server.Close()

	a := NewFourClaw(testOptions(server, "secret"))
	items, err := a.Discover(context.Background(), platform.DiscoverOptions{Limit: 50})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if gotPath != "/api/v1/boards/b/threads" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "includeContent=1&limit=20" {
		t.Errorf("query = %q, want limit capped at 20", gotQuery)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotUA != adapter.DefaultUserAgent {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if len(items) != 3 {
		t.Errorf("len(items) = %d, want 3", len(items))
	}
}

func TestFeedDiscoverTrimsToLimit(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, `[{"id":"a"},{"id":"b"},{"id":"c"}]`))
	defer server.Close()

	items, err := NewDirectory(testOptions(server, "")).Discover(context.Background(), platform.DiscoverOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	want := []platform.Item{{"id": "a"}, {"id": "b"}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestFeedDiscoverBoardRoute(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"data":{"posts":[{"id":"t"}]}}`)
	}))
	defer server.Close()

	items, err := NewMoltX(testOptions(server, "")).Discover(context.Background(), platform.DiscoverOptions{Board: "trending"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if gotPath != "/v1/posts/trending" {
		t.Errorf("path = %q", gotPath)
	}
	if len(items) != 1 {
		t.Errorf("len(items) = %d, want 1", len(items))
	}
}

func TestOptionalAuthSendsNoHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"posts":[]}`)
	}))
	defer server.Close()

	if _, err := NewMoltbook(testOptions(server, "")).Discover(context.Background(), platform.DiscoverOptions{}); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
}

func TestDiscoverErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    platform.ErrorCode
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: platform.ErrNetworkFailure,
		},
		{
			name:    "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) { io.WriteString(w, `<html>`) },
			want:    platform.ErrMalformedResponse,
		},
		{
			name:    "wrong envelope",
			handler: func(w http.ResponseWriter, r *http.Request) { io.WriteString(w, `{"items":[]}`) },
			want:    platform.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := NewBoTTube(testOptions(server, "")).Discover(context.Background(), platform.DiscoverOptions{})
			if !failure.Is(err, tt.want) {
				t.Errorf("Discover() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTransportErrorIsNetworkFailure(t *testing.T) {
	o := Options{Env: adapter.Env{HTTPClient: &http.Client{Transport: &errorTransport{}}}}
	err := NewSwarmHub(o).Probe(context.Background())
	if !failure.Is(err, platform.ErrNetworkFailure) {
		t.Errorf("Probe() error = %v, want %v", err, platform.ErrNetworkFailure)
	}
}

func TestTimeoutIsNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	o := testOptions(server, "")
	o.Env.Timeout = 50 * time.Millisecond
	err := NewDirectory(o).Probe(context.Background())
	if !failure.Is(err, platform.ErrNetworkFailure) {
		t.Errorf("Probe() error = %v, want %v", err, platform.ErrNetworkFailure)
	}
}

func TestBoTTubeStreamURL(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"videos":[{"id":"v1","title":"hello"}]}`)
	}))
	defer server.Close()

	items, err := NewBoTTube(testOptions(server, "")).Discover(context.Background(), platform.DiscoverOptions{Query: "retro"})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if gotPath != "/api/videos/search" {
		t.Errorf("path = %q", gotPath)
	}
	want := server.URL + "/api/videos/v1/stream"
	if got := items[0].String("stream_url"); got != want {
		t.Errorf("stream_url = %q, want %q", got, want)
	}
}

func TestClawCitiesDiscoverIsStatic(t *testing.T) {
	transport := &countingTransport{}
	o := Options{Env: adapter.Env{HTTPClient: &http.Client{Transport: transport}}}

	items, err := NewClawCities(o).Discover(context.Background(), platform.DiscoverOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
	if items[0].String("name") != "sophia-elya" {
		t.Errorf("first site = %v", items[0])
	}
	if n := transport.calls.Load(); n != 0 {
		t.Errorf("expected no network calls, got %d", n)
	}
}

func TestClawCitiesVisit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sophia-elya" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, `<html><head><title>Sophia</title></head><body><article>
<h1>Sophia Elya</h1>
<p>Welcome to my homepage on the agent web. I write about vintage hardware and retro computing every week.</p>
<p>Leave a note in the guestbook before you go, visitors are always welcome here.</p>
</article></body></html>`)
	}))
	defer server.Close()

	md, err := NewClawCities(testOptions(server, "")).Visit(context.Background(), "sophia-elya")
	if err != nil {
		t.Fatalf("Visit() error = %v", err)
	}
	if !strings.Contains(md, "vintage hardware") {
		t.Errorf("Visit() = %q, want page text", md)
	}
	if strings.Contains(md, "<p>") {
		t.Errorf("Visit() still contains markup: %q", md)
	}
}

func TestTheColonyReusesToken(t *testing.T) {
	var tokenCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/token":
			tokenCalls.Add(1)
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["api_key"] != "col_key" {
				t.Errorf("api_key = %q", body["api_key"])
			}
			io.WriteString(w, `{"access_token":"jwt-1"}`)
		case "/api/v1/posts":
			if got := r.Header.Get("Authorization"); got != "Bearer jwt-1" {
				t.Errorf("Authorization = %q, want JWT", got)
			}
			if r.Method == http.MethodPost {
				io.WriteString(w, `{"id":"p1"}`)
				return
			}
			io.WriteString(w, `{"results":[{"id":"p0"}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	a := NewTheColony(testOptions(server, "col_key"))
	ctx := context.Background()

	if _, err := a.Discover(ctx, platform.DiscoverOptions{}); err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	got, err := a.Post(ctx, platform.Post{Title: "hello", Content: "world"})
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if got.String("id") != "p1" {
		t.Errorf("Post() = %v", got)
	}
	if n := tokenCalls.Load(); n != 1 {
		t.Errorf("token exchanged %d times, want 1", n)
	}
}

func TestTheColonyRefreshesRejectedToken(t *testing.T) {
	tests := []struct {
		name          string
		acceptedJWT   string
		wantErr       bool
		wantExchanges int32
	}{
		{name: "second token accepted", acceptedJWT: "jwt-2", wantExchanges: 2},
		{name: "every token rejected", acceptedJWT: "none", wantErr: true, wantExchanges: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenCalls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/api/v1/auth/token":
					n := tokenCalls.Add(1)
					fmt.Fprintf(w, `{"access_token":"jwt-%d"}`, n)
				case "/api/v1/posts":
					if r.Header.Get("Authorization") != "Bearer "+tt.acceptedJWT {
						w.WriteHeader(http.StatusUnauthorized)
						return
					}
					if r.Method == http.MethodPost {
						io.WriteString(w, `{"id":"p1"}`)
						return
					}
					io.WriteString(w, `{"posts":[{"id":"p0"}]}`)
				default:
					http.NotFound(w, r)
				}
			}))
			defer server.Close()

			a := NewTheColony(testOptions(server, "col_key"))
			ctx := context.Background()

			_, err := a.Discover(ctx, platform.DiscoverOptions{})
			if tt.wantErr {
				if !failure.Is(err, platform.ErrNetworkFailure) {
					t.Errorf("Discover() error = %v, want ErrNetworkFailure", err)
				}
				if statusOf(err) != http.StatusUnauthorized {
					t.Errorf("statusOf() = %d, want 401", statusOf(err))
				}
			} else {
				if err != nil {
					t.Fatalf("Discover() error = %v", err)
				}
				if _, err := a.Post(ctx, platform.Post{Title: "hello"}); err != nil {
					t.Fatalf("Post() error = %v", err)
				}
			}
			if n := tokenCalls.Load(); n != tt.wantExchanges {
				t.Errorf("token exchanged %d times, want %d", n, tt.wantExchanges)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	_, err := NewDirectory(testOptions(server, "")).Discover(context.Background(), platform.DiscoverOptions{})
	if got := statusOf(err); got != http.StatusTeapot {
		t.Errorf("statusOf() = %d, want %d", got, http.StatusTeapot)
	}

	a := NewDirectory(Options{Env: adapter.Env{HTTPClient: &http.Client{Transport: &errorTransport{}}, Timeout: time.Second}})
	_, err = a.Discover(context.Background(), platform.DiscoverOptions{})
	if got := statusOf(err); got != 0 {
		t.Errorf("statusOf() = %d for a transport error, want 0", got)
	}
}

func TestPinchedInRespond(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{"ok":true}`)
	}))
	defer server.Close()

	a := NewPinchedIn(testOptions(server, "pin_key"))
	ctx := context.Background()

	if _, err := a.Respond(ctx, "req-9", "maybe"); !failure.Is(err, platform.ErrInvalidArgument) {
		t.Errorf("Respond() error = %v, want %v", err, platform.ErrInvalidArgument)
	}
	if _, err := a.Respond(ctx, "req-9", "accepted"); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/hiring/req-9" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if diff := cmp.Diff(map[string]any{"status": "accepted"}, gotBody); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestFourClawPostAttachesMedia(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{"thread":{"id":"t1"}}`)
	}))
	defer server.Close()

	a := NewFourClaw(testOptions(server, "claw_key"))
	_, err := a.Post(context.Background(), platform.Post{
		Board:   "b",
		Title:   "hi",
		Content: "there",
		Media:   &platform.Media{Type: "image/svg+xml", Data: "data:image/svg+xml;base64,PHN2Zy8+"},
	})
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	media, ok := gotBody["media"].([]any)
	if !ok || len(media) != 1 {
		t.Fatalf("media = %#v", gotBody["media"])
	}
	want := map[string]any{"type": "image/svg+xml", "data": "data:image/svg+xml;base64,PHN2Zy8+"}
	if diff := cmp.Diff(want, media[0]); diff != "" {
		t.Errorf("media mismatch (-want +got):\n%s", diff)
	}
}

func TestAllFollowsCatalogOrder(t *testing.T) {
	got := []platform.ID{}
	for _, a := range All(Settings{}) {
		got = append(got, a.Descriptor().ID)
	}
	want := platform.KnownIDs
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}
}

func TestCredentialConfigured(t *testing.T) {
	adapters := All(Settings{Credentials: map[platform.ID]string{platform.Moltbook: "moltbook_sk"}})
	for _, a := range adapters {
		d := a.Descriptor()
		if want := d.ID == platform.Moltbook; d.CredentialConfigured != want {
			t.Errorf("%s CredentialConfigured = %v, want %v", d.ID, d.CredentialConfigured, want)
		}
	}
}

func TestClawHub(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		call      func(a *ClawHub) ([]platform.Item, error)
		body      string
		wantPath  string
		wantQuery string
		wantAuth  string
		want      []platform.Item
	}{
		{
			name: "search",
			call: func(a *ClawHub) ([]platform.Item, error) {
				return a.Search(context.Background(), " svg art ", 5)
			},
			body:      `{"results":[{"slug":"svg-forge"}]}`,
			wantPath:  "/api/v1/search",
			wantQuery: "limit=5&q=svg+art",
			want:      []platform.Item{{"slug": "svg-forge"}},
		},
		{
			name:  "search with token",
			token: "clh_tok",
			call: func(a *ClawHub) ([]platform.Item, error) {
				return a.Search(context.Background(), "svg", 0)
			},
			body:      `{"skills":[{"slug":"a"}]}`,
			wantPath:  "/api/v1/search",
			wantQuery: "limit=20&q=svg",
			wantAuth:  "Bearer clh_tok",
			want:      []platform.Item{{"slug": "a"}},
		},
		{
			name: "trending is trimmed to limit",
			call: func(a *ClawHub) ([]platform.Item, error) {
				return a.List(context.Background(), SortTrending, 2)
			},
			body:      `{"items":[{"slug":"a"},{"slug":"b"},{"slug":"c"}]}`,
			wantPath:  "/api/v1/skills",
			wantQuery: "limit=2&sort=trending",
			want:      []platform.Item{{"slug": "a"}, {"slug": "b"}},
		},
		{
			name: "explore",
			call: func(a *ClawHub) ([]platform.Item, error) {
				return a.List(context.Background(), SortUpdated, 3)
			},
			body:      `{"items":[{"slug":"new"}]}`,
			wantPath:  "/api/v1/skills",
			wantQuery: "limit=3&sort=updated",
			want:      []platform.Item{{"slug": "new"}},
		},
		{
			name: "discover with query searches",
			call: func(a *ClawHub) ([]platform.Item, error) {
				return a.Discover(context.Background(), platform.DiscoverOptions{Query: "beacon", Limit: 1})
			},
			body:      `{"results":[{"slug":"beacon"}]}`,
			wantPath:  "/api/v1/search",
			wantQuery: "limit=1&q=beacon",
			want:      []platform.Item{{"slug": "beacon"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery, gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				gotAuth = r.Header.Get("Authorization")
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			items, err := tt.call(NewClawHub(testOptions(server, tt.token)))
			if err != nil {
				t.Fatalf("call error = %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
			if gotQuery != tt.wantQuery {
				t.Errorf("query = %q, want %q", gotQuery, tt.wantQuery)
			}
			if gotAuth != tt.wantAuth {
				t.Errorf("Authorization = %q, want %q", gotAuth, tt.wantAuth)
			}
			if diff := cmp.Diff(tt.want, items); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClawHubSkill(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"skill":{"slug":"grazer"},"owner":{"handle":"elyan"}}`)
	}))
	defer server.Close()

	got, err := NewClawHub(testOptions(server, "")).Skill(context.Background(), "grazer")
	if err != nil {
		t.Fatalf("Skill() error = %v", err)
	}
	if gotPath != "/api/v1/skills/grazer" {
		t.Errorf("path = %q", gotPath)
	}
	want := platform.Item{
		"skill": map[string]any{"slug": "grazer"},
		"owner": map[string]any{"handle": "elyan"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Skill() mismatch (-want +got):\n%s", diff)
	}
}

func TestClawHubInvalidArguments(t *testing.T) {
	transport := &countingTransport{}
	a := NewClawHub(Options{
		Env: adapter.Env{HTTPClient: &http.Client{Transport: transport}},
	})
	ctx := context.Background()

	if _, err := a.Search(ctx, "  ", 5); !failure.Is(err, platform.ErrInvalidArgument) {
		t.Errorf("Search() error = %v, want ErrInvalidArgument", err)
	}
	if _, err := a.Skill(ctx, "/"); !failure.Is(err, platform.ErrInvalidArgument) {
		t.Errorf("Skill() error = %v, want ErrInvalidArgument", err)
	}
	if n := transport.calls.Load(); n != 0 {
		t.Errorf("made %d requests, want 0", n)
	}
}

func TestBoTTubeStats(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     platform.Item
		wantCode platform.ErrorCode
	}{
		{
			name: "object",
			body: `{"total_videos":12,"categories":["music"]}`,
			want: platform.Item{"total_videos": float64(12), "categories": []any{"music"}},
		},
		{
			name:     "not an object",
			body:     `[1,2]`,
			wantCode: platform.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotAuth = r.Header.Get("Authorization")
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			got, err := NewBoTTube(testOptions(server, "bt_key")).Stats(context.Background())
			if gotPath != "/api/stats" {
				t.Errorf("path = %q", gotPath)
			}
			if gotAuth != "" {
				t.Errorf("stats sent credentials")
			}
			if tt.wantCode != "" {
				if !failure.Is(err, tt.wantCode) {
					t.Fatalf("Stats() error = %v, want %v", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Stats() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
