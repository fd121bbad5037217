package ui_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfire/webgate/internal/http/ui"
	"github.com/campfire/webgate/internal/metrics/metricsmock"
)

var trimSpaceMultilineRegexp = regexp.MustCompile(`(?m)(^\s+|\s+$)`)

func assertContainsHTTPResponseBody(t *testing.T, exp []string, resp *httptest.ResponseRecorder) {
	// Sanitize got HTML so we make easier to check content.
	got := resp.Body.String()
	got = trimSpaceMultilineRegexp.ReplaceAllString(got, "")
	got = strings.ReplaceAll(got, "\n", " ")

	for _, e := range exp {
		assert.Contains(t, got, e)
	}
}

type mocks struct {
	RouteMetricsRecorder *metricsmock.Recorder
}

func newMocks(t *testing.T) mocks {
	return mocks{
		RouteMetricsRecorder: metricsmock.NewRecorder(t),
	}
}

func newTestUIHandler(t *testing.T, m mocks) http.Handler {
	h, err := ui.NewUI(ui.UIConfig{
		RouteMetricsRecorder: m.RouteMetricsRecorder,
	})
	require.NoError(t, err)

	return h
}
