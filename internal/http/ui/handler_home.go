package ui

import (
	"net/http"

	"github.com/campfire/webgate/internal/http/route"
)

func (u ui) loadHome(r *http.Request) (route.Result, error) {
	body, err := u.tplRenderer.Render(r.Context(), "home", nil)
	if err != nil {
		return nil, err
	}

	return route.Render{
		Status:      http.StatusOK,
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}
