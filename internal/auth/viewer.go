package auth

import "github.com/gin-gonic/gin"

const viewerKey = "viewer"

// GuestTokenHeader carries the token handed to an anonymous visitor when it
// starts a mock exam. It scopes that session to the visitor.
const GuestTokenHeader = "X-Guest-Token"

// Viewer is the principal behind a request, resolved once by Middleware.
// An empty UserID is an anonymous visitor.
type Viewer struct {
	UserID     string
	Email      string
	IsVIP      bool
	GuestToken string
}

func (v Viewer) IsAnonymous() bool {
	return v.UserID == ""
}

// Owner is the key sessions are scoped by: the user id, or the guest token
// for anonymous visitors. It is empty for a visitor without a token.
func (v Viewer) Owner() string {
	if !v.IsAnonymous() {
		return v.UserID
	}
	if v.GuestToken == "" {
		return ""
	}
	return "guest:" + v.GuestToken
}

func SetViewer(c *gin.Context, v Viewer) {
	c.Set(viewerKey, v)
}

// FromContext returns the request's viewer, anonymous when none was set.
func FromContext(c *gin.Context) Viewer {
	if v, ok := c.Get(viewerKey); ok {
		if viewer, ok := v.(Viewer); ok {
			return viewer
		}
	}
	return Viewer{}
}
