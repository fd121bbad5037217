package ui

import (
	"net/http"

	"github.com/campfire/webgate/internal/http/route"
)

// newRedirectLoader returns a loader that ignores the request and always
// answers with the same redirect. The redirect is validated once, here.
func newRedirectLoader(status int, location string) (route.Loader, error) {
	redirect, err := route.NewRedirect(status, location)
	if err != nil {
		return nil, err
	}

	return func(_ *http.Request) (route.Result, error) {
		return redirect, nil
	}, nil
}

// newCatchallLoader sends every unclaimed path home.
func newCatchallLoader() (route.Loader, error) {
	return newRedirectLoader(http.StatusTemporaryRedirect, URLPathHome)
}
