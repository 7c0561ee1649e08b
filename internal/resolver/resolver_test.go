package resolver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"gujarattaxi/internal/models"
)

// fakeFinders implements all four finder interfaces with canned answers
// and call counting.
type fakeFinders struct {
	route   *models.Route
	city    *models.City
	airport *models.Airport
	blog    *models.Blog

	routeErr   error
	cityErr    error
	airportErr error
	blogErr    error

	routeDelay time.Duration

	calls atomic.Int32
}

func (f *fakeFinders) FindByURLRoute(url string) (*models.Route, error) {
	f.calls.Add(1)
	if f.routeDelay > 0 {
		time.Sleep(f.routeDelay)
	}
	return f.route, f.routeErr
}

// Split adapters so one struct can satisfy all four single-method interfaces.
type routeFn func(string) (*models.Route, error)

func (fn routeFn) FindByURL(u string) (*models.Route, error) { return fn(u) }

type cityFn func(string) (*models.City, error)

func (fn cityFn) FindByURL(u string) (*models.City, error) { return fn(u) }

type airportFn func(string) (*models.Airport, error)

func (fn airportFn) FindByURL(u string) (*models.Airport, error) { return fn(u) }

type blogFn func(string) (*models.Blog, error)

func (fn blogFn) FindPublishedBySlug(s string) (*models.Blog, error) { return fn(s) }

func (f *fakeFinders) resolver() *Resolver {
	return New(
		routeFn(f.FindByURLRoute),
		cityFn(func(string) (*models.City, error) {
			f.calls.Add(1)
			return f.city, f.cityErr
		}),
		airportFn(func(string) (*models.Airport, error) {
			f.calls.Add(1)
			return f.airport, f.airportErr
		}),
		blogFn(func(string) (*models.Blog, error) {
			f.calls.Add(1)
			return f.blog, f.blogErr
		}),
	)
}

func TestResolve_InvalidSlugSkipsQueries(t *testing.T) {
	for _, s := range []string{"", "bad slug", "../etc", "a;b", "naïve"} {
		f := &fakeFinders{}
		_, err := f.resolver().Resolve(context.Background(), s)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) err = %v, want ErrNotFound", s, err)
		}
		if n := f.calls.Load(); n != 0 {
			t.Errorf("Resolve(%q) issued %d lookups, want 0", s, n)
		}
	}
}

func TestResolve_RouteMatch(t *testing.T) {
	f := &fakeFinders{route: &models.Route{ID: uuid.New(), Name: "Ahmedabad to Surat", URL: "ahmedabad-to-surat"}}
	res, err := f.resolver().Resolve(context.Background(), "ahmedabad-to-surat")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Kind != KindRoute || res.Route == nil {
		t.Fatalf("got kind %q, want route", res.Kind)
	}
	if _, ok := res.RedirectPath(); ok {
		t.Error("route match must not signal a redirect")
	}
}

func TestResolve_PrecedenceRouteBeatsBlog(t *testing.T) {
	// Both collections match; route must win even when its lookup is the
	// slowest of the four.
	f := &fakeFinders{
		route:      &models.Route{ID: uuid.New(), URL: "shared"},
		blog:       &models.Blog{ID: uuid.New(), Slug: "shared", Status: models.BlogStatusPublished},
		routeDelay: 20 * time.Millisecond,
	}
	res, err := f.resolver().Resolve(context.Background(), "shared")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Kind != KindRoute {
		t.Errorf("got kind %q, want route (precedence)", res.Kind)
	}
}

func TestResolve_CityBeatsAirport(t *testing.T) {
	f := &fakeFinders{
		city:    &models.City{ID: uuid.New(), URL: "shared"},
		airport: &models.Airport{ID: uuid.New(), URL: "shared"},
	}
	res, err := f.resolver().Resolve(context.Background(), "shared")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Kind != KindCity {
		t.Errorf("got kind %q, want city (precedence)", res.Kind)
	}
}

func TestResolve_BlogSignalsRedirect(t *testing.T) {
	f := &fakeFinders{blog: &models.Blog{ID: uuid.New(), Slug: "monsoon-travel-tips", Status: models.BlogStatusPublished}}
	res, err := f.resolver().Resolve(context.Background(), "monsoon-travel-tips")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Kind != KindBlog {
		t.Fatalf("got kind %q, want blog", res.Kind)
	}
	path, ok := res.RedirectPath()
	if !ok || path != "/blogs/monsoon-travel-tips" {
		t.Errorf("RedirectPath() = %q, %v; want /blogs/monsoon-travel-tips, true", path, ok)
	}
}

func TestResolve_NoMatchAnywhere(t *testing.T) {
	f := &fakeFinders{}
	_, err := f.resolver().Resolve(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if n := f.calls.Load(); n != 4 {
		t.Errorf("issued %d lookups, want 4", n)
	}
}

func TestResolve_LookupErrorDegradesToNoMatch(t *testing.T) {
	// A failing route lookup must not mask a city match, and a failure in
	// every collection must surface as NotFound, not an error page.
	f := &fakeFinders{
		routeErr: errors.New("connection refused"),
		city:     &models.City{ID: uuid.New(), URL: "vadodara"},
	}
	res, err := f.resolver().Resolve(context.Background(), "vadodara")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Kind != KindCity {
		t.Errorf("got kind %q, want city", res.Kind)
	}

	all := &fakeFinders{
		routeErr:   errors.New("down"),
		cityErr:    errors.New("down"),
		airportErr: errors.New("down"),
		blogErr:    errors.New("down"),
	}
	_, err = all.resolver().Resolve(context.Background(), "anything")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("all-failing lookups: err = %v, want ErrNotFound", err)
	}
}

func TestResolve_ContextCancelled(t *testing.T) {
	f := &fakeFinders{routeDelay: 100 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.resolver().Resolve(ctx, "slow")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
