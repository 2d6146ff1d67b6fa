package auth

import (
	"log/slog"
	"net/http"
)

// RoleAuthorization wraps route groups with the coarse role gates. The
// object-level checks stay in the services, which receive the actor
// explicitly; these middlewares only keep the wrong role class out of a
// route subtree entirely.
type RoleAuthorization struct {
	logger *slog.Logger
}

func NewRoleAuthorization(logger *slog.Logger) *RoleAuthorization {
	return &RoleAuthorization{logger: logger}
}

func (ra *RoleAuthorization) require(name string, allowed func(*Actor) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok || actor == nil {
				ra.logger.Warn("authorization check failed: user not found in context", "check", name)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !allowed(actor) {
				ra.logger.WarnContext(r.Context(), "access denied",
					"check", name,
					"user_id", actor.ID,
					"role", actor.Role,
					"is_staff", actor.IsStaff)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRecruiter gates job management and the recruiter dashboard.
func (ra *RoleAuthorization) RequireRecruiter() func(http.Handler) http.Handler {
	return ra.require("recruiter", IsRecruiter)
}

// RequireCandidate gates application submission.
func (ra *RoleAuthorization) RequireCandidate() func(http.Handler) http.Handler {
	return ra.require("candidate", IsCandidate)
}

// RequireAccountAccess gates the account endpoints: recruiter, candidate or
// staff. Per-record ownership is checked again in the user service.
func (ra *RoleAuthorization) RequireAccountAccess() func(http.Handler) http.Handler {
	return ra.require("account_access", CanManageAccounts)
}

// RequireRecruiterOrStaff gates application review routes.
func (ra *RoleAuthorization) RequireRecruiterOrStaff() func(http.Handler) http.Handler {
	return ra.require("recruiter_or_staff", func(a *Actor) bool {
		return a.IsStaff || IsRecruiter(a)
	})
}
