package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayablesOutstanding_SoloOrdenesRecibidas(t *testing.T) {
	q := &fakeQuerier{}
	_, err := NewDashboardRepository(q).PayablesOutstanding(context.Background())
	require.NoError(t, err)
	require.Len(t, q.queries, 1)

	assert.Contains(t, q.queries[0].sql, "o.status = ANY($1)")
	require.Len(t, q.queries[0].args, 1)
	statuses, ok := q.queries[0].args[0].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"RECEIVED", "PARTIALLY_PAID"}, statuses)
	assert.NotContains(t, statuses, "PENDING")
	assert.NotContains(t, statuses, "PARTIALLY_RECEIVED")
}

func TestListOpen_OrdenDeterministaPorCliente(t *testing.T) {
	q := &fakeQuerier{}
	_, err := NewInvoiceRepository(q).ListOpen(context.Background())
	require.Error(t, err)
	require.Len(t, q.queries, 1)
	assert.Contains(t, q.queries[0].sql, "ORDER BY t.name, i.client_id")
}
