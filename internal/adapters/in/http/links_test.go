package http_test

import (
	"testing"

	"tableside/internal/adapters/in/http"

	"github.com/stretchr/testify/assert"
)

func TestTableURL_JoinsBaseAndTablePath(t *testing.T) {
	resolver := http.NewTableLinkResolver("https://menu.example.com")
	assert.Equal(t, "https://menu.example.com/table/42", resolver.TableURL(42))
}

func TestTableURL_TrimsTrailingSlash(t *testing.T) {
	resolver := http.NewTableLinkResolver("https://menu.example.com/")
	assert.Equal(t, "https://menu.example.com/table/1", resolver.TableURL(1))
}
