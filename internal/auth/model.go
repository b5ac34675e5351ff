// File: internal/auth/model.go
package auth

import (
	"music_catalog_backend/internal/shared"
)

// IdentityResponse is the auth-provider half of a session snapshot.
type IdentityResponse struct {
	UID   string  `json:"uid"`
	Email *string `json:"email,omitempty"`
}

// SessionResponse is the full session snapshot returned after sign-in and
// registration: the verified identity, the resolved profile (absent when no
// profile row exists for the identity) and the landing destination.
type SessionResponse struct {
	Identity    IdentityResponse        `json:"identity"`
	Profile     *shared.ProfileResponse `json:"profile,omitempty"`
	Destination Destination             `json:"destination"`
}

// NewSessionResponse builds the snapshot for an authenticated identity.
// By the time this runs resolution has completed, so the destination is
// computed with identity present and resolving false.
func NewSessionResponse(uid string, email *string, profile *shared.Profile) SessionResponse {
	resp := SessionResponse{
		Identity:    IdentityResponse{UID: uid, Email: email},
		Destination: Route(profile, true, false),
	}
	if profile != nil {
		pr := shared.ToProfileResponse(profile)
		resp.Profile = &pr
	}
	return resp
}
