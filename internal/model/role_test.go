package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleDisabled, RoleViewer, RoleWriter, RoleAdmin} {
		assert.True(t, r.Valid(), "role %q", r)
	}
	assert.False(t, Role("x").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleSatisfies(t *testing.T) {
	cases := []struct {
		held, floor Role
		want        bool
	}{
		{RoleAdmin, RoleViewer, true},
		{RoleAdmin, RoleWriter, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleWriter, RoleViewer, true},
		{RoleWriter, RoleWriter, true},
		{RoleWriter, RoleAdmin, false},
		{RoleViewer, RoleViewer, true},
		{RoleViewer, RoleWriter, false},
		{RoleViewer, RoleAdmin, false},
		// disabled satisfies nothing, not even its own level
		{RoleDisabled, RoleDisabled, false},
		{RoleDisabled, RoleViewer, false},
		{RoleDisabled, RoleAdmin, false},
		// unknown role satisfies nothing
		{Role("x"), RoleViewer, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.held.Satisfies(tc.floor),
			"held=%q floor=%q", tc.held, tc.floor)
	}
}
