package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalIDDecoding(t *testing.T) {
	require.Nil(t, OptionalID(NoSelectionValue))

	decoded := OptionalID(7)
	require.NotNil(t, decoded)
	require.Equal(t, int64(7), *decoded)

	require.Equal(t, NoSelectionValue, EncodeOptionalID(nil))
	require.Equal(t, int64(7), EncodeOptionalID(decoded))
}

func TestFilterFromSentinel(t *testing.T) {
	require.Equal(t, AllTickets(), FilterFromSentinel(NoSelectionValue))
	require.Equal(t, UnassignedTickets(), FilterFromSentinel(UnassignedValue))
	require.Equal(t, TicketsAssignedTo(12), FilterFromSentinel(12))
}

func TestFilterSentinelRoundTrip(t *testing.T) {
	for _, filter := range []TicketFilter{AllTickets(), UnassignedTickets(), TicketsAssignedTo(12)} {
		require.Equal(t, filter, FilterFromSentinel(filter.Sentinel()))
	}
}

func TestTicketUpdateIsEmpty(t *testing.T) {
	require.True(t, TicketUpdate{}.IsEmpty())

	id := int64(3)
	require.False(t, TicketUpdate{CategoryID: &id}.IsEmpty())
	require.False(t, TicketUpdate{AssignedAccountID: &id}.IsEmpty())
	require.False(t, TicketUpdate{StatusID: &id}.IsEmpty())
}
