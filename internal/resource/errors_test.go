package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoResourcesFoundError_NamesOwner(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, `The currently active team has no networks, but you can create one with the "network create" command`},
		{KindTeam, `Your account has no teams, but you can create one with the "team create" command`},
		{KindDatabase, `The database server has no databases, but you can create one with the "database create" command`},
		{KindDatabaseUser, `The database server has no database users, but you can create one with the "database user create" command`},
		{KindEnvironment, `The project has no environments, but you can create one with the "environment create" command`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.EqualError(t, &NoResourcesFoundError{Kind: tt.kind}, tt.want)
		})
	}
}

func TestKind_OwnerDefaultsToActiveTeam(t *testing.T) {
	assert.Equal(t, "The currently active team", Kind("widget").Owner())
}
