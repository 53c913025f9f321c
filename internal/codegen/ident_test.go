package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	tests := []struct {
		in          string
		placeholder rune
		want        string
	}{
		{"a user", 0, "a_user"},
		{"I have $ apples", '$', "I_have_$_apples"},
		{"I have $ apples", 0, "I_have___apples"},
		{"it's (almost) done!", 0, "it_s__almost__done_"},
		{"café", 0, "caf_"},
		{"", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, tt.placeholder))
		})
	}
}

func TestToMethodIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User logs in", "User_logs_in"},
		{"user-logs/in", "user_logs_in"},
		{"3 users login", "_3_users_login"},
		{"", "_"},
		{"!!!", "___"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ToMethodIdentifier(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, legalIdentifier, got)
		})
	}
}

func TestToTypeIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user login", "UserLogin"},
		{"user login-flow", "UserLoginFlow"},
		{"HTTP server", "HTTPServer"},
		{"  shopping   cart ", "ShoppingCart"},
		{"café au lait", "CafAuLait"},
		{"3 users", "_3Users"},
		{"", "_"},
		{"?!", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ToTypeIdentifier(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, legalIdentifier, got)
		})
	}
}

func TestIsLegalBareIdentifier(t *testing.T) {
	assert.True(t, IsLegalBareIdentifier(nil))
	assert.True(t, IsLegalBareIdentifier(strPtr("")))
	assert.True(t, IsLegalBareIdentifier(strPtr("valid_name1")))
	assert.True(t, IsLegalBareIdentifier(strPtr("_x")))
	assert.False(t, IsLegalBareIdentifier(strPtr("has space")))
	assert.False(t, IsLegalBareIdentifier(strPtr("9lives")))
	assert.False(t, IsLegalBareIdentifier(strPtr("dollar$")))
}

func TestEscapeBackslashes(t *testing.T) {
	assert.Equal(t, `C:\\temp\\file`, EscapeBackslashes(`C:\temp\file`))
	assert.Equal(t, `say "hi"`, EscapeBackslashes(`say "hi"`))
}
