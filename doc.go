/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

//
// UniDoc is a fast and powerful package for document manipulation starting
// off as a PDF toolkit. This is a commercial open source library written
// and supported by the owners of the [FoxyUtils.com](https://foxyutils.com)
// website.
//
// Please see the [examples](https://github.com/unidoc/unidoc-examples/tree/master)
// folder.
//

package unidoc

import (
	_ "github.com/unidoc/unidoc/common"
	_ "github.com/unidoc/unidoc/license"
	_ "github.com/unidoc/unidoc/pdf"
)
