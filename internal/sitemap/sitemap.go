// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitemap renders the sitemap.xml document from published blog
// posts and the directory collections.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"gujarattaxi/internal/models"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URL is a single sitemap entry.
type URL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Input collects everything the sitemap lists. Only published blogs
// belong here; the caller filters.
type Input struct {
	Blogs    []models.Blog
	Routes   []models.Route
	Cities   []models.City
	Airports []models.Airport
}

// Render builds the sitemap XML document. baseURL must not end with a
// slash; all entries are absolute URLs under it.
func Render(baseURL string, in Input) ([]byte, error) {
	baseURL = strings.TrimRight(baseURL, "/")

	set := urlSet{Xmlns: xmlns}
	set.URLs = append(set.URLs, URL{Loc: baseURL + "/"})

	for _, b := range in.Blogs {
		set.URLs = append(set.URLs, URL{
			Loc:     baseURL + "/blogs/" + b.Slug,
			LastMod: b.UpdatedAt.Format(time.DateOnly),
		})
	}
	for _, r := range in.Routes {
		set.URLs = append(set.URLs, URL{Loc: baseURL + "/" + r.URL})
	}
	for _, c := range in.Cities {
		set.URLs = append(set.URLs, URL{Loc: baseURL + "/" + c.URL})
	}
	for _, a := range in.Airports {
		set.URLs = append(set.URLs, URL{Loc: baseURL + "/" + a.URL})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
