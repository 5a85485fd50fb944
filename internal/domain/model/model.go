// Package model contains domain records passed between layers.
package model

// UserRecord is a directory-style user entry managed by the users surface.
// It is distinct from auth.Principal: principals authenticate requests,
// records are plain data rows.
type UserRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product is a catalog item. Price is stored in the smallest currency unit.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Restaurant is a listing entry with a coarse category used for search.
type Restaurant struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}
