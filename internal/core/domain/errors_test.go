package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{ErrAuthMissing, KindAuthMissing},
		{ErrAuthInvalid, KindAuthInvalid},
		{ErrInvalidCredentials, KindAuthInvalid},
		{ErrAuthExpired, KindAuthExpired},
		{ErrForbidden, KindForbidden},
		{ErrUserNotFound, KindNotFound},
		{fmt.Errorf("deactivate product: %w", ErrProductNotFound), KindNotFound},
		{fmt.Errorf("insert user: %w", ErrUsernameExists), KindConflict},
		{ErrProductCodeExists, KindConflict},
		{ErrInvalidPayload, KindBadRequest},
		{errors.New("connection refused"), KindInternal},
	}

	for _, tc := range cases {
		if got := Kind(tc.err); got != tc.want {
			t.Fatalf("Kind(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestSessionClaims_IsAdministrator(t *testing.T) {
	var nilClaims *SessionClaims
	if nilClaims.IsAdministrator() {
		t.Fatalf("nil claims must not be administrator")
	}

	member := NewSessionClaims(&User{ID: 1, Username: "budi", Role: RoleMember})
	if member.IsAdministrator() {
		t.Fatalf("member reported as administrator")
	}

	admin := NewSessionClaims(&User{ID: 2, Username: "sari", Role: RoleAdministrator})
	if !admin.IsAdministrator() {
		t.Fatalf("administrator not recognised")
	}
	if admin.UserID != 2 || admin.Username != "sari" {
		t.Fatalf("unexpected claims: %+v", admin)
	}
}
