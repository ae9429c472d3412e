package dashboard

import (
	"context"
	"strings"
	"sync"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
	"github.com/gridsentry/genset-monitoring/pkg/client"
)

// EmployeeDirectory is the employee list view with the approval workflow.
// Mutations are never applied optimistically for approve: the list is always
// re-fetched afterwards so the server stays the source of truth.
type EmployeeDirectory struct {
	mu        sync.Mutex
	api       *client.Client
	notify    NoticeFunc
	employees []domain.User
	search    string
	verified  *bool
	page      int
}

func NewEmployeeDirectory(api *client.Client, notify NoticeFunc) *EmployeeDirectory {
	return &EmployeeDirectory{api: api, notify: notify, page: 1}
}

// Load fetches the full employee list. A failed fetch posts a notice and
// keeps prior data visible.
func (d *EmployeeDirectory) Load(ctx context.Context) {
	employees, err := d.api.ListUsers(ctx)
	if err != nil {
		d.notify.post(LevelError, "Error fetching employee data", err.Error())
		return
	}

	d.mu.Lock()
	d.employees = employees
	d.mu.Unlock()
}

// SetSearch updates the free-text filter and resets to the first page.
func (d *EmployeeDirectory) SetSearch(text string) {
	d.mu.Lock()
	d.search = text
	d.page = 1
	d.mu.Unlock()
}

// SetVerifiedFilter filters by verified flag; nil clears the filter.
func (d *EmployeeDirectory) SetVerifiedFilter(verified *bool) {
	d.mu.Lock()
	d.verified = verified
	d.page = 1
	d.mu.Unlock()
}

// Rows returns the filtered employee list.
func (d *EmployeeDirectory) Rows() []domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return FilterEmployees(d.employees, d.search, d.verified)
}

// Page returns the current table page of the filtered list along with the
// page number and total page count.
func (d *EmployeeDirectory) Page() ([]domain.User, int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	filtered := FilterEmployees(d.employees, d.search, d.verified)
	page := clampPage(d.page, len(filtered), DefaultPageSize)
	return Paginate(filtered, page, DefaultPageSize), page, PageCount(len(filtered), DefaultPageSize)
}

// SetPage selects the 1-based table page.
func (d *EmployeeDirectory) SetPage(page int) {
	d.mu.Lock()
	d.page = clampPage(page, len(FilterEmployees(d.employees, d.search, d.verified)), DefaultPageSize)
	d.mu.Unlock()
}

// CanApprove reports whether the approve action is offered for an employee.
// Only unverified rows get one.
func (d *EmployeeDirectory) CanApprove(u domain.User) bool {
	return !u.Verified
}

// Approve verifies an employee after the confirm step. The list is re-fetched
// in every outcome so local state resynchronises with the server.
func (d *EmployeeDirectory) Approve(ctx context.Context, id string, confirm func() bool) {
	if confirm != nil && !confirm() {
		return
	}

	if err := d.api.ApproveUser(ctx, id); err != nil {
		d.notify.post(LevelError, "Approval failed", err.Error())
	} else {
		d.notify.post(LevelSuccess, "Employee approved", "")
	}

	d.Load(ctx)
}

// Delete removes an employee after the confirm step. On success the row is
// dropped locally before the re-fetch; on failure the re-fetch recovers from
// any inconsistency.
func (d *EmployeeDirectory) Delete(ctx context.Context, id string, confirm func() bool) {
	if confirm != nil && !confirm() {
		return
	}

	if err := d.api.DeleteUser(ctx, id); err != nil {
		d.notify.post(LevelError, "Delete failed", err.Error())
	} else {
		d.mu.Lock()
		kept := d.employees[:0]
		for _, u := range d.employees {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		d.employees = kept
		d.mu.Unlock()
		d.notify.post(LevelSuccess, "Employee deleted", "")
	}

	d.Load(ctx)
}

// FilterEmployees keeps employees whose name, NIPP, or email contains the
// search text case-insensitively AND whose verified flag equals the status
// filter when one is set.
func FilterEmployees(employees []domain.User, search string, verified *bool) []domain.User {
	needle := strings.ToLower(search)
	out := make([]domain.User, 0, len(employees))
	for _, u := range employees {
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.NIPP), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		if verified != nil && u.Verified != *verified {
			continue
		}
		out = append(out, u)
	}
	return out
}
