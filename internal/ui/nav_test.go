package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorStartsOnHome(t *testing.T) {
	n := NewNavigator(nil)
	assert.Equal(t, ScreenHome, n.Current())
}

func TestGoRunsOnEnterHookThenShows(t *testing.T) {
	var order []string
	n := NewNavigator(func(s Screen) {
		order = append(order, "show "+s.String())
	})
	n.OnEnter(ScreenWords, func() error {
		order = append(order, "enter words")
		return nil
	})

	require.NoError(t, n.Go(ScreenWords))
	assert.Equal(t, ScreenWords, n.Current())
	assert.Equal(t, []string{"enter words", "show words"}, order)
}

func TestGoNavigatesEvenWhenHookFails(t *testing.T) {
	boom := errors.New("document corrupt")
	n := NewNavigator(nil)
	n.OnEnter(ScreenCategories, func() error { return boom })

	err := n.Go(ScreenCategories)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, ScreenCategories, n.Current())
}

func TestGoWithoutHook(t *testing.T) {
	n := NewNavigator(nil)
	require.NoError(t, n.Go(ScreenCategories))
	require.NoError(t, n.Go(ScreenHome))
	assert.Equal(t, ScreenHome, n.Current())
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "home", ScreenHome.String())
	assert.Equal(t, "categories", ScreenCategories.String())
	assert.Equal(t, "words", ScreenWords.String())
}
