package ytmusic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() map[string]interface{} {
	return map[string]interface{}{
		"contents": map[string]interface{}{
			"tabs": []interface{}{
				map[string]interface{}{
					"tabRenderer": map[string]interface{}{
						"title": "Home",
					},
				},
			},
		},
	}
}

func TestNavigateStrict(t *testing.T) {
	root := sampleTree()
	path := Path{Field("contents"), Field("tabs"), Index(0), Field("tabRenderer"), Field("title")}

	got, err := Navigate(root, path)

	require.NoError(t, err)
	assert.Equal(t, "Home", got)
}

func TestNavigateStrictMissingKey(t *testing.T) {
	root := sampleTree()
	path := Path{Field("contents"), Field("sections")}

	got, err := Navigate(root, path)

	assert.Nil(t, got)

	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, Field("sections"), navErr.Key)
	assert.Equal(t, path, navErr.Path)
	assert.NotNil(t, navErr.Node)
}

func TestNavigateTypeMismatchIsMissing(t *testing.T) {
	root := sampleTree()

	// indexing an object behaves like a missing key
	_, err := Navigate(root, Path{Field("contents"), Index(0)})
	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, Index(0), navErr.Key)

	// fielding an array too
	_, err = Navigate(root, Path{Field("contents"), Field("tabs"), Field("title")})
	assert.Error(t, err)
}

func TestNavigateNilRoot(t *testing.T) {
	path := Path{Field("anything")}

	got, err := Navigate(nil, path)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.Nil(t, NavigateOptional(nil, path))
}

func TestNavigateOptionalNeverFails(t *testing.T) {
	root := sampleTree()

	assert.Nil(t, NavigateOptional(root, Path{Field("nope"), Index(3)}))
	assert.Equal(t, "Home", NavigateOptional(root, Path{Field("contents"), Field("tabs"), Index(0), Field("tabRenderer"), Field("title")}))
}

func TestNavigateIndexOutOfRange(t *testing.T) {
	root := sampleTree()

	_, err := Navigate(root, Path{Field("contents"), Field("tabs"), Index(5)})
	assert.Error(t, err)
}

func TestPathString(t *testing.T) {
	path := Path{Field("contents"), Index(2), Field("title")}

	assert.Equal(t, "/contents/2/title", path.String())
}

func TestPathJoinDoesNotMutate(t *testing.T) {
	base := Path{Field("a"), Field("b")}
	joined := base.Join(Field("c"))

	assert.Len(t, base, 2)
	assert.Equal(t, "/a/b/c", joined.String())
}

func TestFindFirstByKey(t *testing.T) {
	items := []interface{}{
		map[string]interface{}{"other": 1},
		map[string]interface{}{"target": "first"},
		map[string]interface{}{"target": "second"},
	}

	obj := findFirstByKey(items, "target", "", false)
	require.NotNil(t, obj)
	assert.Equal(t, "first", obj.(map[string]interface{})["target"])

	assert.Equal(t, "first", findFirstByKey(items, "target", "", true))
	assert.Nil(t, findFirstByKey(items, "absent", "", false))
}

func TestFindFirstByKeyNested(t *testing.T) {
	items := []interface{}{
		map[string]interface{}{"wrapper": map[string]interface{}{"other": 1}},
		map[string]interface{}{"wrapper": map[string]interface{}{"target": "hit"}},
	}

	assert.Equal(t, "hit", findFirstByKey(items, "target", "wrapper", true))
}

func TestFindAllByKey(t *testing.T) {
	items := []interface{}{
		map[string]interface{}{"target": "a"},
		map[string]interface{}{"other": 1},
		map[string]interface{}{"target": "b"},
	}

	found := findAllByKey(items, "target")
	require.Len(t, found, 2)
	assert.Equal(t, "a", found[0].(map[string]interface{})["target"])
	assert.Equal(t, "b", found[1].(map[string]interface{})["target"])
}
