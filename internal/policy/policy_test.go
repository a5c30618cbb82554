package policy

import (
	"testing"

	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/stretchr/testify/assert"
)

var (
	owner = &domain.User{ID: "u1", Role: domain.RoleUser}
	other = &domain.User{ID: "u2", Role: domain.RoleUser}
	admin = &domain.User{ID: "a1", Role: domain.RoleAdmin}
)

func request(ownerID string, status domain.TravelRequestStatus) *domain.TravelRequest {
	return &domain.TravelRequest{ID: "tr1", UserID: ownerID, Status: status}
}

func TestCanView(t *testing.T) {
	tr := request(owner.ID, domain.StatusRequested)

	assert.True(t, CanView(owner, tr))
	assert.True(t, CanView(admin, tr))
	assert.False(t, CanView(other, tr))
}

func TestCanViewAnyAndCreate(t *testing.T) {
	assert.True(t, CanViewAny(owner))
	assert.True(t, CanViewAny(admin))
	assert.True(t, CanCreate(owner))
	assert.True(t, CanCreate(admin))
}

// All four (owner?, requested?) combinations; only (true, true) may pass.
func TestCanUpdate(t *testing.T) {
	assert.True(t, CanUpdate(owner, request(owner.ID, domain.StatusRequested)))
	assert.False(t, CanUpdate(owner, request(owner.ID, domain.StatusApproved)))
	assert.False(t, CanUpdate(other, request(owner.ID, domain.StatusRequested)))
	assert.False(t, CanUpdate(other, request(owner.ID, domain.StatusApproved)))

	// Admins do not get to edit someone else's request either.
	assert.False(t, CanUpdate(admin, request(owner.ID, domain.StatusRequested)))
}

func TestCanDelete(t *testing.T) {
	assert.True(t, CanDelete(owner, request(owner.ID, domain.StatusRequested)))
	assert.False(t, CanDelete(owner, request(owner.ID, domain.StatusCancelled)))
	assert.False(t, CanDelete(other, request(owner.ID, domain.StatusRequested)))
	assert.False(t, CanDelete(admin, request(owner.ID, domain.StatusRequested)))
}

func TestCanCancel(t *testing.T) {
	tr := request(owner.ID, domain.StatusRequested)

	assert.True(t, CanCancel(owner, tr))
	assert.True(t, CanCancel(admin, tr))
	assert.False(t, CanCancel(other, tr))

	// Ownership only; the service turns a terminal-state cancel into a
	// state conflict rather than a 403.
	assert.True(t, CanCancel(owner, request(owner.ID, domain.StatusApproved)))
}

func TestAdminOnlyActions(t *testing.T) {
	tr := request(owner.ID, domain.StatusRequested)

	assert.True(t, CanChangeStatus(admin, tr))
	assert.False(t, CanChangeStatus(owner, tr))

	assert.True(t, CanRestore(admin, tr))
	assert.False(t, CanRestore(owner, tr))

	assert.True(t, CanForceDelete(admin, tr))
	assert.False(t, CanForceDelete(owner, tr))
}
