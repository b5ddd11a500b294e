package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorStartsAtHome(t *testing.T) {
	nav := NewNavigator()
	assert.Equal(t, HomeRoute, nav.Current())
	assert.Equal(t, "#/", nav.Fragment())
	assert.False(t, nav.CanBack())
	assert.False(t, nav.CanForward())
}

func TestVisitThenBackThenForward(t *testing.T) {
	nav := NewNavigator()
	nav.Visit(Route{Page: Shop})
	nav.Visit(ProductRoute(3))

	assert.Equal(t, ProductRoute(3), nav.Current())
	assert.True(t, nav.CanBack())

	r, ok := nav.Back()
	assert.True(t, ok)
	assert.Equal(t, Route{Page: Shop}, r)
	assert.True(t, nav.CanForward())

	r, ok = nav.Forward()
	assert.True(t, ok)
	assert.Equal(t, ProductRoute(3), r)
	assert.False(t, nav.CanForward())
}

func TestBackAtStartDoesNotMove(t *testing.T) {
	nav := NewNavigator()
	r, ok := nav.Back()
	assert.False(t, ok)
	assert.Equal(t, HomeRoute, r)
	assert.Equal(t, HomeRoute, nav.Current())
}

func TestForwardAtEndDoesNotMove(t *testing.T) {
	nav := NewNavigator()
	nav.Visit(Route{Page: About})
	r, ok := nav.Forward()
	assert.False(t, ok)
	assert.Equal(t, Route{Page: About}, r)
}

func TestVisitTruncatesForwardHistory(t *testing.T) {
	nav := NewNavigator()
	nav.Visit(Route{Page: Shop})
	nav.Visit(Route{Page: About})
	nav.Back()

	nav.Visit(Route{Page: Contact})

	assert.Equal(t, Route{Page: Contact}, nav.Current())
	assert.False(t, nav.CanForward())

	r, ok := nav.Back()
	assert.True(t, ok)
	assert.Equal(t, Route{Page: Shop}, r)
}

func TestVisitSameRouteIsNoOp(t *testing.T) {
	nav := NewNavigator()
	nav.Visit(Route{Page: Shop})
	rev := nav.Revision()
	depth := nav.Len()

	nav.Visit(Route{Page: Shop})

	assert.Equal(t, rev, nav.Revision())
	assert.Equal(t, depth, nav.Len())
}

func TestReplaceDoesNotGrowHistory(t *testing.T) {
	nav := NewNavigator()
	nav.Visit(Route{Page: Shop})
	depth := nav.Len()

	nav.Replace(Route{Page: Checkout})

	assert.Equal(t, Route{Page: Checkout}, nav.Current())
	assert.Equal(t, depth, nav.Len())

	r, ok := nav.Back()
	assert.True(t, ok)
	assert.Equal(t, HomeRoute, r)
}

func TestRevisionBumpsOnEveryMove(t *testing.T) {
	nav := NewNavigator()
	rev := nav.Revision()

	nav.Visit(Route{Page: Shop})
	assert.Greater(t, nav.Revision(), rev)
	rev = nav.Revision()

	nav.Back()
	assert.Greater(t, nav.Revision(), rev)
	rev = nav.Revision()

	nav.Forward()
	assert.Greater(t, nav.Revision(), rev)
}
