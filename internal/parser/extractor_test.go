package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainText(t *testing.T) {
	e, err := NewResumeTextExtractor(context.Background())
	require.NoError(t, err)

	text, err := e.ExtractText(context.Background(), []byte("Jane Doe\njane@example.com"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com", text)
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	e, err := NewResumeTextExtractor(context.Background())
	require.NoError(t, err)

	_, err = e.ExtractText(context.Background(), []byte("binary"), "resume.exe")
	assert.Error(t, err)

	_, err = e.ExtractText(context.Background(), []byte("noext"), "resume")
	assert.Error(t, err)
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, ".PDF", fileExt("Resume.PDF"))
	assert.Equal(t, ".txt", fileExt("a.b.txt"))
	assert.Equal(t, "", fileExt("noextension"))
}
