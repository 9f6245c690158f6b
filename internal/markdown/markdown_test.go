package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	body := []byte("# Title\n\nSee [docs](https://acme.test/docs).\n\n![logo](img/logo.png)\n\n<https://auto.test>\n\n[ref]: https://ref.test\n")

	links := ExtractLinks(body)
	require.Len(t, links, 4)

	assert.Equal(t, Link{Kind: LinkKindInline, Destination: "https://acme.test/docs", Line: 3}, links[0])
	assert.Equal(t, Link{Kind: LinkKindImage, Destination: "img/logo.png", Line: 5}, links[1])
	assert.Equal(t, LinkKindAuto, links[2].Kind)
	assert.Equal(t, "https://auto.test", links[2].Destination)
	assert.Equal(t, LinkKindReferenceDefinition, links[3].Kind)
	assert.Equal(t, "https://ref.test", links[3].Destination)
}

func TestExtractLinks_EmptyDestination(t *testing.T) {
	links := ExtractLinks([]byte("line one\n\n[empty]()\n"))
	require.Len(t, links, 1)
	assert.Empty(t, links[0].Destination)
	assert.Equal(t, 3, links[0].Line)
}
