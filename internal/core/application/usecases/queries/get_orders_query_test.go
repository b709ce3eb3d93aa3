package queries_test

import (
	"testing"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(nil, nil)

	require.NoError(t, err)
	assert.Empty(t, query.Statuses())
	assert.Nil(t, query.PartnerCode())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrdersQuery_WithFilters(t *testing.T) {
	partnerCode, err := kernel.NewPartnerCode("GLD")
	require.NoError(t, err)
	statuses := order.StatusesForLabel("in-process")
	require.Len(t, statuses, 2)

	query, err := queries.NewGetOrdersQuery(statuses, &partnerCode)

	require.NoError(t, err)
	assert.ElementsMatch(t, statuses, query.Statuses())
	require.NotNil(t, query.PartnerCode())
	assert.True(t, query.PartnerCode().IsEqual(partnerCode))
	assert.NoError(t, query.Validate())
}

func TestNewGetOrdersQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewGetOrdersQuery([]order.Status{order.Pending, order.Unknown}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status is invalid")
}

func TestNewGetOrdersQuery_ZeroPartnerCode(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(nil, &kernel.PartnerCode{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrPartnerCodeIsNotConstructed)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
