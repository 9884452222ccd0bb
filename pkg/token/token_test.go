package token

import (
	"testing"
	"time"

	"agrisync/entities"
)

func testUser() *entities.User {
	return &entities.User{ID: 7, Username: "alice", Role: entities.RoleAdmin}
}

func TestPairCarriesClaims(t *testing.T) {
	iss := NewIssuer("secret", time.Minute, time.Hour)

	access, refresh, err := iss.Pair(testUser())
	if err != nil {
		t.Fatalf("pair: %v", err)
	}

	claims, err := iss.Parse(access, TypeAccess)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" || claims.Role != "admin" {
		t.Errorf("unexpected access claims: %+v", claims)
	}

	claims, err = iss.Parse(refresh, TypeRefresh)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if claims.UserID != 7 || claims.Role != "admin" {
		t.Errorf("unexpected refresh claims: %+v", claims)
	}
}

func TestParseRejectsWrongType(t *testing.T) {
	iss := NewIssuer("secret", time.Minute, time.Hour)
	access, refresh, err := iss.Pair(testUser())
	if err != nil {
		t.Fatalf("pair: %v", err)
	}

	if _, err := iss.Parse(access, TypeRefresh); err == nil {
		t.Error("access token accepted as refresh")
	}
	if _, err := iss.Parse(refresh, TypeAccess); err == nil {
		t.Error("refresh token accepted as access")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("secret", -time.Minute, time.Hour)
	access, _, err := iss.Pair(testUser())
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	if _, err := iss.Parse(access, TypeAccess); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	iss := NewIssuer("secret", time.Minute, time.Hour)
	other := NewIssuer("other-secret", time.Minute, time.Hour)

	access, _, err := other.Pair(testUser())
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	if _, err := iss.Parse(access, TypeAccess); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestRefreshIssuesUsableAccess(t *testing.T) {
	iss := NewIssuer("secret", time.Minute, time.Hour)
	_, refresh, err := iss.Pair(testUser())
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	claims, err := iss.Parse(refresh, TypeRefresh)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	access, err := iss.AccessFromClaims(claims)
	if err != nil {
		t.Fatalf("access from claims: %v", err)
	}
	got, err := iss.Parse(access, TypeAccess)
	if err != nil {
		t.Fatalf("parse new access: %v", err)
	}
	if got.UserID != 7 || got.Username != "alice" {
		t.Errorf("identity lost across refresh: %+v", got)
	}
}
