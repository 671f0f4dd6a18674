/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bitmap

// Getter interface used for getting the Bitmap.
type Getter interface {
	GetBitmap() *Bitmap
}
