package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_FirstName(t *testing.T) {
	tests := []struct {
		name string
		full string
		want string
	}{
		{"single token", "Luna", "Luna"},
		{"space separated", "Luna Lovegood", "Luna"},
		{"tab separated", "Luna\tLovegood", "Luna"},
		{"newline separated", "Luna\nLovegood", "Luna"},
		{"non-breaking space", "Luna Lovegood", "Luna"},
		{"leading whitespace", "  Luna Lovegood", "Luna"},
		{"empty", "", ""},
		{"whitespace only", " \t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &UserProfile{Name: tt.full}
			assert.Equal(t, tt.want, p.FirstName())
		})
	}
}
