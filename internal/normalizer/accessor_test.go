package normalizer

import (
	"testing"

	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWalksObjectsAndArrays(t *testing.T) {
	doc, err := Decode([]byte(`{"a":{"b":[{"c":"x"},{"c":"y"}]}}`))
	require.NoError(t, err)

	v, ok := Get(doc, "a", "b", 1, "c")
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	_, ok = Get(doc, "a", "b", 5, "c")
	assert.False(t, ok)
	_, ok = Get(doc, "a", "b", -1)
	assert.False(t, ok)
	_, ok = Get(doc, "a", 0)
	assert.False(t, ok)
	_, ok = Get(doc, "a", 1.5)
	assert.False(t, ok)
	_, ok = Get(nil, "a")
	assert.False(t, ok)
}

func TestScalarAccessors(t *testing.T) {
	doc, err := Decode([]byte(`{"s":"  hi ","blank":"  ","n":4.5,"ns":"4.3","bad":"abc","id":12345,"null":null,"list":["a","",3,{}]}`))
	require.NoError(t, err)

	s, ok := String(doc, "s")
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	_, ok = String(doc, "blank")
	assert.False(t, ok)

	id, ok := String(doc, "id")
	assert.True(t, ok)
	assert.Equal(t, "12345", id)

	f, ok := Float(doc, "ns")
	assert.True(t, ok)
	assert.Equal(t, 4.3, f)

	_, ok = Float(doc, "bad")
	assert.False(t, ok)

	_, ok = Float(doc, "null")
	assert.False(t, ok)

	n, ok := Int(doc, "n")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	assert.Equal(t, []string{"a", "3"}, Strings(doc, "list"))
	assert.Equal(t, []string{}, Strings(doc, "missing"))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("<html>nope</html>"))
	require.Error(t, err)

	var parseErr *models.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDigits(t *testing.T) {
	cases := map[string]int{
		"₹400 for two":   400,
		"₹1,200 for two": 1200,
		"350":            350,
	}
	for in, want := range cases {
		got, ok := digits(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := digits("for two")
	assert.False(t, ok)
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://cdn/x1", imageURL("https://cdn/", "x1"))
	assert.Equal(t, "https://other/img.png", imageURL("https://cdn/", "https://other/img.png"))
	assert.Equal(t, models.PlaceholderImageURL, imageURL("https://cdn/", ""))
	assert.Equal(t, models.PlaceholderImageURL, imageURL("", "x1"))
}
