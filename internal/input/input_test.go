package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyFetch_SlugPassthrough(t *testing.T) {
	in, err := ClassifyFetch("  mocking-spongebob ")
	require.NoError(t, err)
	require.Equal(t, Slug, in.Kind)
	require.Equal(t, "mocking-spongebob", in.Slug)
}

func TestClassifyFetch_DetailURL(t *testing.T) {
	for _, raw := range []string{
		"https://knowyourmeme.com/memes/mocking-spongebob",
		"http://knowyourmeme.com/memes/mocking-spongebob",
		"https://knowyourmeme.com/memes/mocking-spongebob/",
	} {
		in, err := ClassifyFetch(raw)
		require.NoError(t, err, raw)
		require.Equal(t, PageURL, in.Kind)
		require.Equal(t, "mocking-spongebob", in.Slug)
	}
}

func TestClassifyFetch_UnsupportedURL(t *testing.T) {
	for _, raw := range []string{
		"https://knowyourmeme.com/photos/12345",
		"https://knowyourmeme.com/memes/mocking-spongebob/photos",
		"https://knowyourmeme.com/memes/",
		"https://knowyourmeme.com/",
		"ftp://knowyourmeme.com/memes/mocking-spongebob",
	} {
		_, err := ClassifyFetch(raw)
		require.ErrorIs(t, err, ErrUnsupportedURL, raw)
	}
}

func TestClassifyFetch_Empty(t *testing.T) {
	_, err := ClassifyFetch("   ")
	require.ErrorIs(t, err, ErrEmpty)
}

func TestClassifyQuery(t *testing.T) {
	// Slug-shaped input stays free text in query mode.
	in, err := ClassifyQuery(" all-your-base ")
	require.NoError(t, err)
	require.Equal(t, FreeText, in.Kind)
	require.Equal(t, "all-your-base", in.Query)

	_, err = ClassifyQuery("\t\n")
	require.ErrorIs(t, err, ErrEmpty)
}
