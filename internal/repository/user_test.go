package repository

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateEmail.Error() != "email already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateEmail.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Error("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(errors.New("Duplicate entry")) {
		t.Error("plain error should not match regardless of message")
	}
	if !isDuplicateEntryError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b' for key 'email'"}) {
		t.Error("MySQL error 1062 should be a duplicate entry error")
	}
	if isDuplicateEntryError(&mysql.MySQLError{Number: 1045}) {
		t.Error("other MySQL errors should not match")
	}
}
