// File: internal/auth/destination.go
package auth

import (
	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/shared"
)

// Destination is the landing view a session should be sent to after
// sign-in. DestinationNone means the session is still resolving and no
// decision can be made yet.
type Destination string

const (
	DestinationNone            Destination = ""
	DestinationLogin           Destination = "login"
	DestinationHome            Destination = "home"
	DestinationAdmin           Destination = "admin"
	DestinationArtistDashboard Destination = "artist-dashboard"
)

// Route decides the landing destination for a session. It is pure and total:
// every combination of inputs yields exactly one destination, with no I/O.
//
// Precedence: a still-resolving session yields no destination; a missing
// identity routes to login; an identity without a profile routes to home
// (callers log the inconsistency); otherwise the profile role decides, with
// admin taking precedence over artist over user.
func Route(profile *shared.Profile, identityPresent, resolving bool) Destination {
	if resolving {
		return DestinationNone
	}
	if !identityPresent {
		return DestinationLogin
	}
	if profile == nil {
		return DestinationHome
	}
	switch profile.Role {
	case common.RoleAdmin:
		return DestinationAdmin
	case common.RoleArtist:
		return DestinationArtistDashboard
	default:
		return DestinationHome
	}
}
