package ecode

import (
	"net/http"
	"testing"
)

func TestText(t *testing.T) {
	if got := Text(FilterErr); got != "Invalid filter" {
		t.Errorf("Text(FilterErr) = %q", got)
	}
	if got := Text(http.StatusNotFound); got != "Not Found" {
		t.Errorf("Text(404) = %q, want standard status text", got)
	}
	if got := Text(-99999); got != Text(ServerErr) {
		t.Errorf("Text(unknown) = %q, want server error text", got)
	}
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{FilterErr, http.StatusBadRequest},
		{TableNotFound, http.StatusNotFound},
		{QueryErr, http.StatusInternalServerError},
		{-424242, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := ToHTTPStatus(tt.code); got != tt.want {
			t.Errorf("ToHTTPStatus(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestRegister(t *testing.T) {
	Register(-1201, "Export in progress", http.StatusAccepted)
	if Text(-1201) != "Export in progress" {
		t.Fatalf("registered message not returned")
	}
	if ToHTTPStatus(-1201) != http.StatusAccepted {
		t.Fatalf("registered status not returned")
	}
}

func TestFieldMessages(t *testing.T) {
	if got := FieldIsInvalid("case"); got != "case invalid" {
		t.Errorf("FieldIsInvalid = %q", got)
	}
	if got := NotExist("table users"); got != "table users does not exist" {
		t.Errorf("NotExist = %q", got)
	}
	if got := FieldIsRequired(); got != "required" {
		t.Errorf("FieldIsRequired() = %q", got)
	}
}
