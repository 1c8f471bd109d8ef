package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

func TestKey_FormaCanonica(t *testing.T) {
	a := query.NewKey("GET", "/users/paginados", map[string]string{"size": "10", "page": "0"})
	b := query.ListKey("/users/paginados", entity.Pagination{Page: 0, Size: 10})

	assert.Equal(t, a, b)
	assert.Equal(t, "GET /users/paginados|page=0&size=10", a.String())
	assert.False(t, a.IsPrefix())
}

func TestKey_Prefijo(t *testing.T) {
	p := query.ListPrefix("/users/paginados")
	assert.True(t, p.IsPrefix())
	assert.Equal(t, "GET /users/paginados|", p.String())
}

func TestResourceKey(t *testing.T) {
	k := query.ResourceKey("/liquidations/{liquidationId}", "liquidationId", "5")
	assert.Equal(t, "GET /liquidations/{liquidationId}|liquidationId=5", k.String())
}
