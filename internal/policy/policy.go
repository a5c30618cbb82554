// Package policy holds the authorization rules for travel requests as pure
// predicates over (caller, resource). No side effects; callers surface a
// denial as domain.ErrForbidden.
package policy

import "github.com/luksdev/travels-corp/internal/domain"

// CanViewAny always allows listing; the list itself is scoped to the caller.
func CanViewAny(caller *domain.User) bool {
	return true
}

func CanView(caller *domain.User, tr *domain.TravelRequest) bool {
	return caller.IsAdmin() || tr.UserID == caller.ID
}

// CanCreate allows any authenticated caller.
func CanCreate(caller *domain.User) bool {
	return true
}

func CanUpdate(caller *domain.User, tr *domain.TravelRequest) bool {
	return tr.UserID == caller.ID && tr.Status == domain.StatusRequested
}

func CanDelete(caller *domain.User, tr *domain.TravelRequest) bool {
	return tr.UserID == caller.ID && tr.Status == domain.StatusRequested
}

// CanCancel allows the owner or an admin. The status precondition is not
// checked here: the lifecycle service enforces it so that cancelling a
// terminal request fails as a state conflict, not as an authorization error.
func CanCancel(caller *domain.User, tr *domain.TravelRequest) bool {
	return caller.IsAdmin() || tr.UserID == caller.ID
}

func CanChangeStatus(caller *domain.User, tr *domain.TravelRequest) bool {
	return caller.IsAdmin()
}

func CanRestore(caller *domain.User, tr *domain.TravelRequest) bool {
	return caller.IsAdmin()
}

func CanForceDelete(caller *domain.User, tr *domain.TravelRequest) bool {
	return caller.IsAdmin()
}
