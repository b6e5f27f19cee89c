package models_test

import (
	"context"
	"testing"

	"restaurant-orders-api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foreignKey struct {
	Table string
	From  string
	To    string
}

func foreignKeys(t *testing.T, table string) []foreignKey {
	t.Helper()
	s := testutil.NewStore(t)
	var fks []foreignKey
	require.NoError(t, s.Query(context.Background(), &fks,
		`SELECT "table", "from", "to" FROM pragma_foreign_key_list(?)`, table))
	return fks
}

func TestOrdersReferenceUsers(t *testing.T) {
	assert.Contains(t, foreignKeys(t, "orders"), foreignKey{Table: "users", From: "user_id", To: "user_id"})
}

func TestUsersReferenceNothing(t *testing.T) {
	assert.Empty(t, foreignKeys(t, "users"))
}

func TestOrderChildrenReferenceOrders(t *testing.T) {
	want := foreignKey{Table: "orders", From: "order_id", To: "order_id"}
	assert.Contains(t, foreignKeys(t, "order_items"), want)
	assert.Contains(t, foreignKeys(t, "order_status_history"), want)
}

func TestFeedbackHasNoForeignKeys(t *testing.T) {
	assert.Empty(t, foreignKeys(t, "feedback"))
}
