/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractcore

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/figtable/attachcore/caption"
	"github.com/figtable/attachcore/config"
	"github.com/figtable/attachcore/gate"
	"github.com/figtable/attachcore/geometry"
	"github.com/figtable/attachcore/ident"
)

func cap(kind caption.Kind, id string, page int) caption.Caption {
	return caption.Caption{Kind: kind, Ident: ident.ID{Text: id}, Page: page, Rect: geometry.New(0, 0, 10, 10), Score: 50}
}

func TestResolveWorkersDefaultsToGOMAXPROCS(t *testing.T) {
	assert.Equal(t, runtime.GOMAXPROCS(0), resolveWorkers(0))
	assert.Equal(t, runtime.GOMAXPROCS(0), resolveWorkers(-1))
	assert.Equal(t, 4, resolveWorkers(4))
}

func TestForEachPageRunsEveryPageExactlyOnce(t *testing.T) {
	pages := []int{1, 2, 3, 4, 5, 6, 7, 8}
	var seen sync.Map
	var count int64

	var workersSeen sync.Map
	forEachPage(2, pages, func(w, p int) {
		seen.Store(p, true)
		workersSeen.Store(w, true)
		atomic.AddInt64(&count, 1)
	})

	assert.Equal(t, int64(len(pages)), count)
	for _, p := range pages {
		_, ok := seen.Load(p)
		assert.True(t, ok, "page %d must have been processed", p)
	}
	workersSeen.Range(func(key, _ any) bool {
		w := key.(int)
		assert.True(t, w >= 0 && w < 2, "worker index %d must stay within the requested pool size", w)
		return true
	})
}

func TestGroupByPageGroupsCaptionsByTheirPage(t *testing.T) {
	captions := []caption.Caption{
		cap(caption.Figure, "1", 1),
		cap(caption.Table, "1", 1),
		cap(caption.Figure, "2", 3),
	}
	byPage := groupByPage(captions)
	assert.Len(t, byPage[1], 2)
	assert.Len(t, byPage[3], 1)
	assert.Empty(t, byPage[2])
}

func TestMarkContinuedFlagsOnlyLaterPagesOfSameIdent(t *testing.T) {
	captions := []caption.Caption{
		cap(caption.Figure, "1", 3),
		cap(caption.Figure, "1", 1),
		cap(caption.Figure, "1", 2),
		cap(caption.Table, "1", 1),
	}
	continuedOf := markContinued(captions)

	assert.False(t, continuedOf[capKey{caption.Figure, "1", 1}])
	assert.True(t, continuedOf[capKey{caption.Figure, "1", 2}])
	assert.True(t, continuedOf[capKey{caption.Figure, "1", 3}])
	assert.False(t, continuedOf[capKey{caption.Table, "1", 1}], "a different kind sharing the same ident text must not be linked")
}

func TestAnchorModeNameMatchesConfig(t *testing.T) {
	assert.Equal(t, "v1", anchorModeName(config.AnchorV1))
	assert.Equal(t, "v2", anchorModeName(config.AnchorV2))
}

func TestConfidenceFromBlendsScoreAndStage(t *testing.T) {
	refined := confidenceFrom(80, gate.Refined)
	aOnly := confidenceFrom(80, gate.AOnly)
	baseline := confidenceFrom(80, gate.Baseline)

	assert.InDelta(t, 0.80, refined, 1e-9)
	assert.InDelta(t, 0.80*0.85, aOnly, 1e-9)
	assert.InDelta(t, 0.80*0.70, baseline, 1e-9)
	assert.Greater(t, refined, aOnly)
	assert.Greater(t, aOnly, baseline)
}

func TestConfidenceFromClampsOutOfRangeScore(t *testing.T) {
	assert.Equal(t, 1.0, confidenceFrom(150, gate.Refined))
	assert.Equal(t, 0.0, confidenceFrom(-10, gate.Refined))
}

func TestEnsureOutputDirCreatesNestedPath(t *testing.T) {
	dir := t.TempDir() + "/a/b/c"
	assert.NoError(t, ensureOutputDir(dir))
}
