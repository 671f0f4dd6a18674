/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package attachment

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figtable/attachcore/geometry"
)

func TestBuildBaseNameSanitizesAndTruncates(t *testing.T) {
	name := BuildBaseName(true, "1", "A very long caption with way more than twelve words describing an experiment", 3, false, 1)
	assert.Equal(t, "Figure_1_A_very_long.png", name)
}

func TestBuildBaseNameAddsContinuedSuffix(t *testing.T) {
	name := BuildBaseName(false, "2", "Results", 12, true, 5)
	assert.Equal(t, "Table_2_Results_continued_p5.png", name)
}

func TestBuildBaseNameFallsBackToUntitledForEmptySlug(t *testing.T) {
	name := BuildBaseName(true, "1", "***", 12, false, 1)
	assert.Equal(t, "Figure_1_untitled.png", name)
}

func TestNameRegistryClaimIsIdempotentForFirstUse(t *testing.T) {
	r := NewNameRegistry()
	name, collided := r.Claim("Figure_1_caption.png")
	assert.Equal(t, "Figure_1_caption.png", name)
	assert.False(t, collided)
}

func TestNameRegistryClaimAppendsSuffixOnCollision(t *testing.T) {
	r := NewNameRegistry()
	first, _ := r.Claim("Figure_1_caption.png")
	second, collided := r.Claim("Figure_1_caption.png")
	third, _ := r.Claim("Figure_1_caption.png")

	assert.True(t, collided)
	assert.Equal(t, "Figure_1_caption.png", first)
	assert.Equal(t, "Figure_1_caption_1.png", second)
	assert.Equal(t, "Figure_1_caption_2.png", third)
}

func TestSortRecordsOrdersByPageThenKindThenIdent(t *testing.T) {
	records := []Record{
		{Page: 1, Kind: "table", Ident: "1"},
		{Page: 1, Kind: "figure", Ident: "2"},
		{Page: 1, Kind: "figure", Ident: "1"},
		{Page: 0, Kind: "figure", Ident: "1"},
	}
	SortRecords(records)

	require.Len(t, records, 4)
	assert.Equal(t, 0, records[0].Page)
	assert.Equal(t, "figure", records[1].Kind)
	assert.Equal(t, "1", records[1].Ident)
	assert.Equal(t, "figure", records[2].Kind)
	assert.Equal(t, "2", records[2].Ident)
	assert.Equal(t, "table", records[3].Kind)
}

func TestWriteIndexWritesSortedJSONAtomically(t *testing.T) {
	dir := t.TempDir()
	records := []Record{
		{Page: 2, Kind: "figure", Ident: "1", File: "Figure_1_a.png"},
		{Page: 1, Kind: "table", Ident: "1", File: "Table_1_b.png"},
	}

	require.NoError(t, WriteIndex(dir, records))

	data, err := os.ReadFile(filepath.Join(dir, "index.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "index.json.tmp"))
	assert.True(t, os.IsNotExist(err), "the temp file must be renamed away, never left behind")

	var out []Record
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Page)
}

func TestWriteIndexWritesEmptyArrayForNilRecords(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteIndex(dir, nil))

	data, err := os.ReadFile(filepath.Join(dir, "index.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestPruneRemovesUnreferencedAttachmentFiles(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "Figure_1_kept.png")
	stale := filepath.Join(dir, "Figure_2_stale.png")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{keep, stale, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	records := []Record{{File: "Figure_1_kept.png"}}
	removed, err := Prune(dir, records)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Figure_2_stale.png"}, removed)
	_, err = os.Stat(keep)
	assert.NoError(t, err)
	_, err = os.Stat(other)
	assert.NoError(t, err, "non-attachment files must never be touched by pruning")
	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestFromRectProducesOrderedCorners(t *testing.T) {
	r := FromRect(geometry.New(10, 20, 110, 220))
	assert.Equal(t, BBox{10, 20, 110, 220}, r)
}
