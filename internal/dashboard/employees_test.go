package dashboard

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/gridsentry/genset-monitoring/internal/core/domain"
)

// employeeAPI is a fake directory backend: list, approve, delete.
type employeeAPI struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newEmployeeAPI(users ...domain.User) *employeeAPI {
	api := &employeeAPI{users: make(map[string]*domain.User)}
	for i := range users {
		u := users[i]
		api.users[u.ID] = &u
	}
	return api
}

func (a *employeeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		out := make([]domain.User, 0, len(a.users))
		for _, id := range []string{"u1", "u2", "u3"} {
			if u, ok := a.users[id]; ok {
				out = append(out, *u)
			}
		}
		a.mu.Unlock()
		writeEnvelope(w, http.StatusOK, out, "")
	})
	mux.HandleFunc("PATCH /users/approve/{id}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		u, ok := a.users[r.PathValue("id")]
		if !ok {
			writeEnvelope(w, http.StatusNotFound, nil, "user not found")
			return
		}
		u.Verified = true
		writeEnvelope(w, http.StatusOK, u, "")
	})
	mux.HandleFunc("DELETE /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		defer a.mu.Unlock()
		if _, ok := a.users[r.PathValue("id")]; !ok {
			writeEnvelope(w, http.StatusNotFound, nil, "user not found")
			return
		}
		delete(a.users, r.PathValue("id"))
		writeEnvelope(w, http.StatusOK, nil, "user deleted")
	})
	return mux
}

func sampleEmployees() []domain.User {
	return []domain.User{
		{ID: "u1", Name: "Alice Smith", NIPP: "10001", Email: "alice@example.com", Verified: true},
		{ID: "u2", Name: "Bob Jones", NIPP: "10002", Email: "bob@example.com", Verified: false},
		{ID: "u3", Name: "Carol White", NIPP: "20003", Email: "carol@example.com", Verified: false},
	}
}

func TestFilterEmployees_SearchOverNameNIPPEmail(t *testing.T) {
	employees := sampleEmployees()

	if got := FilterEmployees(employees, "ALICE", nil); len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("expected name match for u1, got %+v", got)
	}
	if got := FilterEmployees(employees, "2000", nil); len(got) != 1 || got[0].ID != "u3" {
		t.Fatalf("expected NIPP match for u3, got %+v", got)
	}
	if got := FilterEmployees(employees, "bob@", nil); len(got) != 1 || got[0].ID != "u2" {
		t.Fatalf("expected email match for u2, got %+v", got)
	}
}

func TestFilterEmployees_VerifiedFilterCombines(t *testing.T) {
	employees := sampleEmployees()

	if got := FilterEmployees(employees, "", boolPtr(false)); len(got) != 2 {
		t.Fatalf("expected 2 unverified employees, got %+v", got)
	}
	if got := FilterEmployees(employees, "alice", boolPtr(false)); len(got) != 0 {
		t.Fatalf("expected no unverified alice, got %+v", got)
	}
}

func TestEmployeeDirectory_ApproveFlow(t *testing.T) {
	backend := newEmployeeAPI(sampleEmployees()...)
	rec := &noticeRecorder{}
	dir := NewEmployeeDirectory(newTestClient(t, backend.handler()), rec.fn())
	ctx := context.Background()

	dir.Load(ctx)
	rows := dir.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(rows))
	}
	if !dir.CanApprove(rows[1]) {
		t.Fatal("expected unverified employee to be approvable")
	}

	dir.Approve(ctx, "u2", func() bool { return true })

	for _, u := range dir.Rows() {
		if u.ID == "u2" {
			if !u.Verified {
				t.Fatal("expected u2 verified after approve and refetch")
			}
			if dir.CanApprove(u) {
				t.Fatal("expected approve action gone for verified employee")
			}
		}
	}
	if rec.count(LevelSuccess) != 1 {
		t.Fatalf("expected one success notice, got %d", rec.count(LevelSuccess))
	}
}

func TestEmployeeDirectory_ApproveDeclinedIsNoop(t *testing.T) {
	backend := newEmployeeAPI(sampleEmployees()...)
	dir := NewEmployeeDirectory(newTestClient(t, backend.handler()), nil)
	ctx := context.Background()

	dir.Load(ctx)
	dir.Approve(ctx, "u2", func() bool { return false })

	for _, u := range dir.Rows() {
		if u.ID == "u2" && u.Verified {
			t.Fatal("expected declined confirm to leave u2 unverified")
		}
	}
}

func TestEmployeeDirectory_DeleteRemovesRow(t *testing.T) {
	backend := newEmployeeAPI(sampleEmployees()...)
	rec := &noticeRecorder{}
	dir := NewEmployeeDirectory(newTestClient(t, backend.handler()), rec.fn())
	ctx := context.Background()

	dir.Load(ctx)
	dir.Delete(ctx, "u3", nil)

	rows := dir.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 employees after delete, got %d", len(rows))
	}
	for _, u := range rows {
		if u.ID == "u3" {
			t.Fatal("expected u3 gone after delete")
		}
	}
	if rec.count(LevelSuccess) != 1 {
		t.Fatalf("expected one success notice, got %d", rec.count(LevelSuccess))
	}
}

func TestEmployeeDirectory_FailedMutationPostsError(t *testing.T) {
	backend := newEmployeeAPI(sampleEmployees()...)
	rec := &noticeRecorder{}
	dir := NewEmployeeDirectory(newTestClient(t, backend.handler()), rec.fn())
	ctx := context.Background()

	dir.Load(ctx)
	dir.Approve(ctx, "missing", nil)

	if rec.count(LevelError) != 1 {
		t.Fatalf("expected one error notice, got %d", rec.count(LevelError))
	}
	if len(dir.Rows()) != 3 {
		t.Fatalf("expected list unchanged after failed approve, got %d", len(dir.Rows()))
	}
}
