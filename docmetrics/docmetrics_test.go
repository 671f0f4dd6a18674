/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package docmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentileMedianAndP75(t *testing.T) {
	values := []float64{10, 11, 12, 12, 13, 14, 30}
	assert.Equal(t, 12.0, percentile(values, 0.5))
	assert.Equal(t, 14.0, percentile(values, 0.75))
}

func TestColumnCountSingleColumn(t *testing.T) {
	starts := make([]float64, 0, 20)
	for i := 0; i < 20; i++ {
		starts = append(starts, 72+float64(i%3))
	}
	assert.Equal(t, 1, columnCount(starts))
}

func TestColumnCountTwoColumns(t *testing.T) {
	var starts []float64
	for i := 0; i < 10; i++ {
		starts = append(starts, 72+float64(i%2))
	}
	for i := 0; i < 10; i++ {
		starts = append(starts, 320+float64(i%2))
	}
	assert.Equal(t, 2, columnCount(starts))
}

func TestColumnCountTooFewSamples(t *testing.T) {
	assert.Equal(t, 1, columnCount([]float64{72, 320, 72}))
}
