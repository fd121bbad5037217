package ui_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandlerCatchall(t *testing.T) {
	tests := map[string]struct {
		request    func() *http.Request
		expBody    []string
		expHeaders http.Header
		expCode    int
	}{
		"An unknown path should redirect to home.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
			},
			expHeaders: http.Header{
				"Content-Type": {"text/html; charset=utf-8"},
				"Location":     {"/home"},
			},
			expCode: 307,
			expBody: []string{`<a href="/home">Temporary Redirect</a>.`},
		},

		"An unknown nested path should redirect to home.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/a/b/c", nil)
			},
			expHeaders: http.Header{
				"Content-Type": {"text/html; charset=utf-8"},
				"Location":     {"/home"},
			},
			expCode: 307,
			expBody: []string{`<a href="/home">Temporary Redirect</a>.`},
		},

		"An empty path should redirect to home.": {
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodGet, "/", nil)
				r.URL.Path = ""
				return r
			},
			expHeaders: http.Header{
				"Content-Type": {"text/html; charset=utf-8"},
				"Location":     {"/home"},
			},
			expCode: 307,
			expBody: []string{`<a href="/home">Temporary Redirect</a>.`},
		},

		"The root path should redirect to home.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/", nil)
			},
			expHeaders: http.Header{
				"Content-Type": {"text/html; charset=utf-8"},
				"Location":     {"/home"},
			},
			expCode: 307,
			expBody: []string{`<a href="/home">Temporary Redirect</a>.`},
		},

		"An unknown path with query should redirect to home without the query.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/campaigns?id=42", nil)
			},
			expHeaders: http.Header{
				"Content-Type": {"text/html; charset=utf-8"},
				"Location":     {"/home"},
			},
			expCode: 307,
			expBody: []string{`<a href="/home">Temporary Redirect</a>.`},
		},

		"A non GET request on an unknown path should redirect to home.": {
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/xyz123", nil)
			},
			expHeaders: http.Header{
				"Location": {"/home"},
			},
			expCode: 307,
			expBody: []string{},
		},

		"A request with a method unknown to the router should redirect to home.": {
			request: func() *http.Request {
				return httptest.NewRequest("PROPFIND", "/does-not-exist", nil)
			},
			expHeaders: http.Header{
				"Location": {"/home"},
			},
			expCode: 307,
			expBody: []string{},
		},

		"A request with a custom method on the root should redirect to home.": {
			request: func() *http.Request {
				return httptest.NewRequest("PURGE", "/", nil)
			},
			expHeaders: http.Header{
				"Location": {"/home"},
			},
			expCode: 307,
			expBody: []string{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			m := newMocks(t)
			m.RouteMetricsRecorder.On("MeasureRouteLoad", mock.Anything, "catchall", "redirect", mock.Anything).Once().Return()

			h := newTestUIHandler(t, m)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, test.request())

			assert.Equal(test.expCode, w.Code)
			assert.Equal(test.expHeaders, w.Header())
			assertContainsHTTPResponseBody(t, test.expBody, w)
		})
	}
}

func TestHandlerCatchallIsIndependentOfPath(t *testing.T) {
	assert := assert.New(t)

	m := newMocks(t)
	m.RouteMetricsRecorder.On("MeasureRouteLoad", mock.Anything, "catchall", "redirect", mock.Anything).Times(4).Return()
	h := newTestUIHandler(t, m)

	paths := []string{"/foo/bar", "/xyz123", "/foo/bar", "/xyz123"}
	responses := make([]*httptest.ResponseRecorder, 0, len(paths))
	for _, p := range paths {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		responses = append(responses, w)
	}

	for _, w := range responses[1:] {
		assert.Equal(responses[0].Code, w.Code)
		assert.Equal(responses[0].Header(), w.Header())
		assert.Equal(responses[0].Body.String(), w.Body.String())
	}
}

func TestHandlerCatchallConcurrent(t *testing.T) {
	const workers = 50

	m := newMocks(t)
	m.RouteMetricsRecorder.On("MeasureRouteLoad", mock.Anything, "catchall", "redirect", mock.Anything).Times(workers).Return()
	h := newTestUIHandler(t, m)

	var wg sync.WaitGroup
	codes := make([]int, workers)
	locations := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/concurrent", nil))
			codes[i] = w.Code
			locations[i] = w.Header().Get("Location")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(t, http.StatusTemporaryRedirect, codes[i])
		assert.Equal(t, "/home", locations[i])
	}
}
