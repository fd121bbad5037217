package route

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidRedirect is returned when a redirect can't be used as an HTTP redirect.
	ErrInvalidRedirect = errors.New("invalid redirect")
	// ErrUnknownResult is returned when a loader returns a result the dispatcher doesn't know.
	ErrUnknownResult = errors.New("unknown route result")
)

// Result kinds, used as metric and log values.
const (
	KindRedirect = "redirect"
	KindRender   = "render"
	KindError    = "error"
)

// Result is the outcome of a route load. It can only be one of the result
// types of this package: Redirect or Render.
type Result interface {
	kind() string
}

// 300, 304 and the unused 305/306 don't send the client elsewhere.
var redirectStatuses = map[int]struct{}{
	http.StatusMovedPermanently:  {},
	http.StatusFound:             {},
	http.StatusSeeOther:          {},
	http.StatusTemporaryRedirect: {},
	http.StatusPermanentRedirect: {},
}

// Redirect aborts the normal rendering of a route and answers with a redirect.
type Redirect struct {
	Status   int
	Location string
}

func (Redirect) kind() string { return KindRedirect }

// NewRedirect returns a validated redirect result.
func NewRedirect(status int, location string) (Redirect, error) {
	r := Redirect{Status: status, Location: location}
	if err := r.validate(); err != nil {
		return Redirect{}, err
	}

	return r, nil
}

func (r Redirect) validate() error {
	if _, ok := redirectStatuses[r.Status]; !ok {
		return fmt.Errorf("%w: status %d is not a redirect status", ErrInvalidRedirect, r.Status)
	}

	if r.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidRedirect)
	}

	return nil
}

// Render is the normal outcome of a route, the body is sent as it is.
// A zero Status means 200, and an empty ContentType lets net/http sniff it.
type Render struct {
	Status      int
	ContentType string
	Body        []byte
}

func (Render) kind() string { return KindRender }
