package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken("secret", 42, "alice@test.local", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	p, err := ParseBearer("Bearer "+token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.ID != 42 || p.Email != "alice@test.local" {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestParseBearer_Rejections(t *testing.T) {
	token, err := IssueToken("secret", 1, "a@b.c", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	expired, err := IssueToken("secret", 1, "a@b.c", -time.Minute)
	if err != nil {
		t.Fatalf("issue expired: %v", err)
	}

	tests := []struct {
		name   string
		header string
		secret string
	}{
		{name: "empty header", header: "", secret: "secret"},
		{name: "not bearer", header: "Basic abc", secret: "secret"},
		{name: "missing token", header: "Bearer", secret: "secret"},
		{name: "garbage token", header: "Bearer not.a.jwt", secret: "secret"},
		{name: "wrong secret", header: "Bearer " + token, secret: "other"},
		{name: "empty secret", header: "Bearer " + token, secret: ""},
		{name: "expired token", header: "Bearer " + expired, secret: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBearer(tt.header, tt.secret); err == nil {
				t.Error("ParseBearer() should have failed")
			}
		})
	}
}

func TestIssueToken_EmptySecret(t *testing.T) {
	if _, err := IssueToken("", 1, "a@b.c", time.Minute); err == nil {
		t.Error("IssueToken() should fail with empty secret")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pass" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
