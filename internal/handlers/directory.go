// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"gujarattaxi/internal/directory"
	"gujarattaxi/internal/models"
	"gujarattaxi/internal/store"
)

// Directory groups the route, city and airport handlers. The three
// collections share shape and behavior; only their fields differ.
type Directory struct {
	routes   *store.RouteStore
	cities   *store.CityStore
	airports *store.AirportStore
	audits   *store.AuditLogStore
}

// NewDirectory creates a new Directory handler group.
func NewDirectory(routes *store.RouteStore, cities *store.CityStore,
	airports *store.AirportStore, audits *store.AuditLogStore) *Directory {
	return &Directory{routes: routes, cities: cities, airports: airports, audits: audits}
}

type directoryInput struct {
	Name   string     `json:"name"`
	From   string     `json:"from"`
	To     string     `json:"to"`
	URL    string     `json:"url"`
	BlogID *uuid.UUID `json:"blogId"`
}

// --- Routes ---

// ListRoutes returns all routes, newest first.
func (h *Directory) ListRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.routes.List()
	if err != nil {
		respondInternal(w, "list routes failed", err)
		return
	}
	if routes == nil {
		routes = []models.Route{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"routes": routes})
}

// GroupedRoutes returns routes bucketed by origin city for the public
// directory page. Routes without an origin land in the "Other" bucket.
func (h *Directory) GroupedRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.routes.List()
	if err != nil {
		respondInternal(w, "list routes failed", err)
		return
	}
	groups := directory.GroupByOrigin(routes, func(r models.Route) string { return r.From })
	respondOK(w, http.StatusOK, "OK", envelope{"groups": groups})
}

// GetRoute returns a single route by ID.
func (h *Directory) GetRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	route, err := h.routes.FindByID(id)
	if err != nil {
		respondInternal(w, "find route failed", err)
		return
	}
	if route == nil {
		respondError(w, http.StatusNotFound, "Route not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"route": route})
}

// CreateRoute inserts a new route.
func (h *Directory) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var in directoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateDirectoryInput(in.Name, in.URL); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.routes.Create(&models.Route{
		Name: in.Name, From: in.From, To: in.To, URL: in.URL, BlogID: in.BlogID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A route with this URL already exists")
			return
		}
		respondInternal(w, "create route failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "route")
	respondOK(w, http.StatusCreated, "Route created", envelope{"route": created})
}

// UpdateRoute modifies an existing route.
func (h *Directory) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	route, err := h.routes.FindByID(id)
	if err != nil {
		respondInternal(w, "find route failed", err)
		return
	}
	if route == nil {
		respondError(w, http.StatusNotFound, "Route not found")
		return
	}

	var in directoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateDirectoryInput(in.Name, in.URL); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	route.Name = in.Name
	route.From = in.From
	route.To = in.To
	route.URL = in.URL
	route.BlogID = in.BlogID

	if err := h.routes.Update(route); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A route with this URL already exists")
			return
		}
		respondInternal(w, "update route failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "route")
	respondOK(w, http.StatusOK, "Route updated", envelope{"route": route})
}

// DeleteRoute removes a route by ID.
func (h *Directory) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	route, err := h.routes.FindByID(id)
	if err != nil {
		respondInternal(w, "find route failed", err)
		return
	}
	if route == nil {
		respondError(w, http.StatusNotFound, "Route not found")
		return
	}
	if err := h.routes.Delete(id); err != nil {
		respondInternal(w, "delete route failed", err)
		return
	}
	recordAudit(h.audits, r, "delete", "route")
	respondOK(w, http.StatusOK, "Route deleted", nil)
}

// --- Cities ---

// ListCities returns all cities, newest first.
func (h *Directory) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cities.List()
	if err != nil {
		respondInternal(w, "list cities failed", err)
		return
	}
	if cities == nil {
		cities = []models.City{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"cities": cities})
}

// GroupedCities returns cities bucketed by origin.
func (h *Directory) GroupedCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cities.List()
	if err != nil {
		respondInternal(w, "list cities failed", err)
		return
	}
	groups := directory.GroupByOrigin(cities, func(c models.City) string { return c.From })
	respondOK(w, http.StatusOK, "OK", envelope{"groups": groups})
}

// GetCity returns a single city by ID.
func (h *Directory) GetCity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	city, err := h.cities.FindByID(id)
	if err != nil {
		respondInternal(w, "find city failed", err)
		return
	}
	if city == nil {
		respondError(w, http.StatusNotFound, "City not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"city": city})
}

// CreateCity inserts a new city.
func (h *Directory) CreateCity(w http.ResponseWriter, r *http.Request) {
	var in directoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateDirectoryInput(in.Name, in.URL); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.cities.Create(&models.City{
		Name: in.Name, From: in.From, URL: in.URL, BlogID: in.BlogID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A city with this URL already exists")
			return
		}
		respondInternal(w, "create city failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "city")
	respondOK(w, http.StatusCreated, "City created", envelope{"city": created})
}

// UpdateCity modifies an existing city.
func (h *Directory) UpdateCity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	city, err := h.cities.FindByID(id)
	if err != nil {
		respondInternal(w, "find city failed", err)
		return
	}
	if city == nil {
		respondError(w, http.StatusNotFound, "City not found")
		return
	}

	var in directoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateDirectoryInput(in.Name, in.URL); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	city.Name = in.Name
	city.From = in.From
	city.URL = in.URL
	city.BlogID = in.BlogID

	if err := h.cities.Update(city); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A city with this URL already exists")
			return
		}
		respondInternal(w, "update city failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "city")
	respondOK(w, http.StatusOK, "City updated", envelope{"city": city})
}

// DeleteCity removes a city by ID.
func (h *Directory) DeleteCity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	city, err := h.cities.FindByID(id)
	if err != nil {
		respondInternal(w, "find city failed", err)
		return
	}
	if city == nil {
		respondError(w, http.StatusNotFound, "City not found")
		return
	}
	if err := h.cities.Delete(id); err != nil {
		respondInternal(w, "delete city failed", err)
		return
	}
	recordAudit(h.audits, r, "delete", "city")
	respondOK(w, http.StatusOK, "City deleted", nil)
}

// --- Airports ---

// ListAirports returns all airports, newest first.
func (h *Directory) ListAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := h.airports.List()
	if err != nil {
		respondInternal(w, "list airports failed", err)
		return
	}
	if airports == nil {
		airports = []models.Airport{}
	}
	respondOK(w, http.StatusOK, "OK", envelope{"airports": airports})
}

// GroupedAirports returns airports bucketed by origin.
func (h *Directory) GroupedAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := h.airports.List()
	if err != nil {
		respondInternal(w, "list airports failed", err)
		return
	}
	groups := directory.GroupByOrigin(airports, func(a models.Airport) string { return a.From })
	respondOK(w, http.StatusOK, "OK", envelope{"groups": groups})
}

// GetAirport returns a single airport by ID.
func (h *Directory) GetAirport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	airport, err := h.airports.FindByID(id)
	if err != nil {
		respondInternal(w, "find airport failed", err)
		return
	}
	if airport == nil {
		respondError(w, http.StatusNotFound, "Airport not found")
		return
	}
	respondOK(w, http.StatusOK, "OK", envelope{"airport": airport})
}

// CreateAirport inserts a new airport.
func (h *Directory) CreateAirport(w http.ResponseWriter, r *http.Request) {
	var in directoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateDirectoryInput(in.Name, in.URL); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.airports.Create(&models.Airport{
		Name: in.Name, From: in.From, To: in.To, URL: in.URL, BlogID: in.BlogID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "An airport with this URL already exists")
			return
		}
		respondInternal(w, "create airport failed", err)
		return
	}

	recordAudit(h.audits, r, "create", "airport")
	respondOK(w, http.StatusCreated, "Airport created", envelope{"airport": created})
}

// UpdateAirport modifies an existing airport.
func (h *Directory) UpdateAirport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	airport, err := h.airports.FindByID(id)
	if err != nil {
		respondInternal(w, "find airport failed", err)
		return
	}
	if airport == nil {
		respondError(w, http.StatusNotFound, "Airport not found")
		return
	}

	var in directoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateDirectoryInput(in.Name, in.URL); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	airport.Name = in.Name
	airport.From = in.From
	airport.To = in.To
	airport.URL = in.URL
	airport.BlogID = in.BlogID

	if err := h.airports.Update(airport); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, "An airport with this URL already exists")
			return
		}
		respondInternal(w, "update airport failed", err)
		return
	}

	recordAudit(h.audits, r, "update", "airport")
	respondOK(w, http.StatusOK, "Airport updated", envelope{"airport": airport})
}

// DeleteAirport removes an airport by ID.
func (h *Directory) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	airport, err := h.airports.FindByID(id)
	if err != nil {
		respondInternal(w, "find airport failed", err)
		return
	}
	if airport == nil {
		respondError(w, http.StatusNotFound, "Airport not found")
		return
	}
	if err := h.airports.Delete(id); err != nil {
		respondInternal(w, "delete airport failed", err)
		return
	}
	recordAudit(h.audits, r, "delete", "airport")
	respondOK(w, http.StatusOK, "Airport deleted", nil)
}
