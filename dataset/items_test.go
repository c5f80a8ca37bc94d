package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadItems_CSV(t *testing.T) {
	path := writeFile(t, "items.csv",
		"id,construct,text\n"+
			"1,Extraversion,\"I am the life of the party, always.\"\n"+
			"2,Neuroticism,I worry about things.\n")

	items, err := LoadItems(path, ItemColumns{})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, Item{Construct: "Extraversion", Text: "I am the life of the party, always."}, items[0])
	assert.Equal(t, Item{Construct: "Neuroticism", Text: "I worry about things."}, items[1])
}

func TestLoadItems_TSVByExtension(t *testing.T) {
	path := writeFile(t, "items.tsv",
		"construct\ttext\n"+
			"Openness\tI have a vivid imagination.\n")

	items, err := LoadItems(path, ItemColumns{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Openness", items[0].Construct)
}

func TestLoadItems_HeaderMatchIsCaseInsensitive(t *testing.T) {
	path := writeFile(t, "items.csv",
		"Construct,TEXT\n"+
			"Openness,I have a vivid imagination.\n")

	items, err := LoadItems(path, ItemColumns{})
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestLoadItems_ColumnOverrides(t *testing.T) {
	content := "label,statement\n" +
		"Openness,I have a vivid imagination.\n"

	t.Run("by name", func(t *testing.T) {
		path := writeFile(t, "items.csv", content)
		items, err := LoadItems(path, ItemColumns{Construct: "label", Text: "statement"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Openness", items[0].Construct)
	})

	t.Run("by 1-based index", func(t *testing.T) {
		path := writeFile(t, "items.csv", content)
		items, err := LoadItems(path, ItemColumns{Construct: "#1", Text: "#2"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "I have a vivid imagination.", items[0].Text)
	})

	t.Run("index out of range", func(t *testing.T) {
		path := writeFile(t, "items.csv", content)
		_, err := LoadItems(path, ItemColumns{Construct: "#3", Text: "statement"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "#3")
	})
}

func TestLoadItems_MissingColumn(t *testing.T) {
	path := writeFile(t, "items.csv",
		"construct,body\n"+
			"Openness,I have a vivid imagination.\n")

	_, err := LoadItems(path, ItemColumns{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"text"`)
}

func TestLoadItems_BlankFieldsRejected(t *testing.T) {
	t.Run("blank construct", func(t *testing.T) {
		path := writeFile(t, "items.csv",
			"construct,text\n"+
				"Openness,I have a vivid imagination.\n"+
				" ,I worry about things.\n")
		_, err := LoadItems(path, ItemColumns{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 3")
		assert.Contains(t, err.Error(), "construct")
	})

	t.Run("blank text", func(t *testing.T) {
		path := writeFile(t, "items.csv",
			"construct,text\n"+
				"Openness,\n")
		_, err := LoadItems(path, ItemColumns{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
		assert.Contains(t, err.Error(), "text")
	})
}

func TestLoadItems_NoRows(t *testing.T) {
	path := writeFile(t, "items.csv", "construct,text\n")
	_, err := LoadItems(path, ItemColumns{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no item rows")
}

func TestLoadItems_MissingFile(t *testing.T) {
	_, err := LoadItems(filepath.Join(t.TempDir(), "absent.csv"), ItemColumns{})
	require.Error(t, err)
}

func TestTexts(t *testing.T) {
	items := []Item{
		{Construct: "A", Text: "first"},
		{Construct: "B", Text: "second"},
	}
	assert.Equal(t, []string{"first", "second"}, Texts(items))
}
