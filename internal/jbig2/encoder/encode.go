/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package encoder

import (
	"github.com/figtable/attachcore/internal/jbig2"
)

// Encoder is the jbig2 encoder structure used for encoding the image into the
type Encoder struct{}

func EncodedDocument(thresh, weightFactor float32, xres, yres int, fullHeaders bool, refineLevel) *jbig2.Document {

}
