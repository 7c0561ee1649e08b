// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Route is a point-to-point taxi route directory entry. BlogID is a weak
// reference: deleting the blog leaves it dangling on purpose.
type Route struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	URL       string     `json:"url"`
	BlogID    *uuid.UUID `json:"blogId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// City is a serviced-city directory entry.
type City struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	From      string     `json:"from"`
	URL       string     `json:"url"`
	BlogID    *uuid.UUID `json:"blogId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Airport is an airport-transfer directory entry.
type Airport struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	URL       string     `json:"url"`
	BlogID    *uuid.UUID `json:"blogId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
