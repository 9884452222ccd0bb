package serviceImp

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"agrisync/database"
	"agrisync/entities"
	"agrisync/pkg/auth/repositoryImp"
	"agrisync/pkg/auth/service"
	"agrisync/pkg/token"
)

func setupService(t *testing.T) (service.AuthService, *token.Issuer) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	issuer := token.NewIssuer("test-secret", time.Minute, time.Hour)
	return New(repositoryImp.New(db), issuer), issuer
}

func register(t *testing.T, svc service.AuthService, username, email string) *entities.User {
	t.Helper()
	u, err := svc.Register(service.RegisterInput{Username: username, Email: email, Password: "p1"})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return u
}

func TestRegisterDefaultsToWorker(t *testing.T) {
	svc, _ := setupService(t)
	u := register(t, svc, "alice", "a@x.com")
	if u.Role != entities.RoleWorker {
		t.Errorf("role = %q, want worker", u.Role)
	}
	if u.Password == "p1" {
		t.Error("password stored in cleartext")
	}
}

func TestRegisterNeverRendersPassword(t *testing.T) {
	svc, _ := setupService(t)
	u := register(t, svc, "alice", "a@x.com")

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "password") || strings.Contains(string(b), u.Password) {
		t.Errorf("serialized user leaks password material: %s", b)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := setupService(t)
	register(t, svc, "alice", "a@x.com")

	_, err := svc.Register(service.RegisterInput{Username: "alice", Email: "b@x.com", Password: "p2"})
	if err != service.ErrUsernameTaken {
		t.Errorf("duplicate username: err = %v, want ErrUsernameTaken", err)
	}
	_, err = svc.Register(service.RegisterInput{Username: "bob", Email: "a@x.com", Password: "p2"})
	if err != service.ErrEmailTaken {
		t.Errorf("duplicate email: err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupService(t)
	register(t, svc, "alice", "a@x.com")

	if _, _, err := svc.Login("alice", "wrong"); err != service.ErrBadCredentials {
		t.Errorf("wrong password: err = %v, want ErrBadCredentials", err)
	}
	if _, _, err := svc.Login("nobody", "p1"); err != service.ErrBadCredentials {
		t.Errorf("unknown user: err = %v, want ErrBadCredentials", err)
	}
}

func TestLoginIssuesClaimBearingPair(t *testing.T) {
	svc, issuer := setupService(t)
	u := register(t, svc, "alice", "a@x.com")

	access, refresh, err := svc.Login("alice", "p1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := issuer.Parse(access, token.TypeAccess)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != u.ID || claims.Username != "alice" || claims.Role != "worker" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if _, err := issuer.Parse(refresh, token.TypeRefresh); err != nil {
		t.Errorf("parse refresh: %v", err)
	}
}

func TestRefreshFlow(t *testing.T) {
	svc, issuer := setupService(t)
	register(t, svc, "alice", "a@x.com")

	_, refresh, err := svc.Login("alice", "p1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	access, err := svc.Refresh(refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, err := issuer.Parse(access, token.TypeAccess)
	if err != nil {
		t.Fatalf("parse refreshed access: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("identity lost across refresh: %+v", claims)
	}

	// an access token must not be usable as a refresh token
	if _, err := svc.Refresh(access); err == nil {
		t.Error("access token accepted by refresh")
	}
}
