package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Middleware resolves the Viewer for every request. Requests without a
// bearer token continue as anonymous, keeping any guest token; a token that
// fails verification is rejected. Membership comes from the profiles table, not from the token.
func Middleware(verifier *Verifier, profiles repository.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			SetViewer(c, Viewer{GuestToken: strings.TrimSpace(c.GetHeader(GuestTokenHeader))})
			c.Next()
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := verifier.Parse(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("Rejected access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid access token"})
			return
		}

		viewer := Viewer{UserID: claims.Subject, Email: claims.Email}
		profile, err := profiles.FindByID(c.Request.Context(), claims.Subject)
		switch {
		case err == nil:
			viewer.IsVIP = profile.IsVIP
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no profile row yet: free member
		default:
			log.Error().Err(err).Str("user_id", claims.Subject).Msg("Failed to load profile, treating viewer as free member")
		}

		SetViewer(c, viewer)
		c.Next()
	}
}

// RequireUser rejects anonymous viewers.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if FromContext(c).IsAnonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "login required"})
			return
		}
		c.Next()
	}
}
