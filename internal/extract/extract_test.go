package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const detailPage = `<!DOCTYPE html>
<html><head><title>Mocking SpongeBob | Know Your Meme</title></head>
<body>
<nav><a href="/">Home</a><a href="/memes">Memes</a></nav>
<article>
  <header>
    <h1 class="entry-title">
      Mocking SpongeBob
      <span class="label">Meme</span>
    </h1>
  </header>
  <section id="entry_body">
    <h2 id="about">About <a class="edit" href="#">edit</a></h2>
    <p>Mocking SpongeBob refers to an image macro featuring the
       character SpongeBob SquarePants.<sup>[1]</sup></p>
    <p>It is typically used to mock an opinion.</p>
    <h2 id="origin">Origin</h2>
    <p>The episode first aired in 2012.</p>
  </section>
</article>
<footer>Comments and ads here</footer>
</body></html>`

func TestFromHTML_TitleAndAbout(t *testing.T) {
	doc, err := FromHTML([]byte(detailPage))
	require.NoError(t, err)
	require.Equal(t, "Mocking SpongeBob", doc.Title)
	require.Equal(t,
		"Mocking SpongeBob refers to an image macro featuring the character "+
			"SpongeBob SquarePants. It is typically used to mock an opinion.",
		doc.About)
}

func TestFromHTML_StopsAtNextSection(t *testing.T) {
	doc, err := FromHTML([]byte(detailPage))
	require.NoError(t, err)
	require.NotContains(t, doc.About, "2012")
}

func TestFromHTML_FallbackFirstParagraph(t *testing.T) {
	page := `<html><body>
	<h1 class="entry-title">Old Entry</h1>
	<div id="entry_body">
	  <p>An entry written before section headings existed.</p>
	  <p>Second paragraph is not part of the blurb.</p>
	</div>
	</body></html>`
	doc, err := FromHTML([]byte(page))
	require.NoError(t, err)
	require.Equal(t, "An entry written before section headings existed.", doc.About)
}

func TestFromHTML_MissingHeading(t *testing.T) {
	page := `<html><body><div id="entry_body"><h2 id="about">About</h2>
	<p>Text without any heading.</p></div></body></html>`
	_, err := FromHTML([]byte(page))
	require.ErrorIs(t, err, ErrStructureNotFound)
}

func TestFromHTML_MissingBody(t *testing.T) {
	page := `<html><body><h1 class="entry-title">Title Only</h1>
	<p>A paragraph outside the entry body.</p></body></html>`
	_, err := FromHTML([]byte(page))
	require.ErrorIs(t, err, ErrStructureNotFound)
}

func TestFromHTML_EmptyAboutSectionFallsBack(t *testing.T) {
	page := `<html><body>
	<h1 class="entry-title">Entry</h1>
	<div id="entry_body">
	  <p>Leading paragraph.</p>
	  <h2 id="about">About</h2>
	  <h2 id="origin">Origin</h2>
	  <p>Origin text.</p>
	</div>
	</body></html>`
	doc, err := FromHTML([]byte(page))
	require.NoError(t, err)
	require.Equal(t, "Leading paragraph.", doc.About)
}

func TestFromHTML_PlainH1Fallback(t *testing.T) {
	page := `<html><body>
	<h1>Unstyled Title</h1>
	<div id="entry_body"><h2 id="about">About</h2><p>Some text.</p></div>
	</body></html>`
	doc, err := FromHTML([]byte(page))
	require.NoError(t, err)
	require.Equal(t, "Unstyled Title", doc.Title)
}
