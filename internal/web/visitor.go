package web

import (
	"net/http"

	"github.com/google/uuid"
)

const visitorCookie = "folio_visitor"

// visitorID returns the visitor's id from the cookie. New or malformed ids
// are replaced and the cookie is set on w.
func visitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(visitorCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, newVisitorCookie(id))
	return id
}

func newVisitorCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
