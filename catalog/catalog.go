// Package catalog registers every message type shipped with the module.
//
//	import _ "github.com/reoring/iso20022/catalog"
package catalog

import (
	_ "github.com/reoring/iso20022/admi/admi00200101"
	_ "github.com/reoring/iso20022/admi/admi00400102"
	_ "github.com/reoring/iso20022/admi/admi00600101"
	_ "github.com/reoring/iso20022/admi/admi00700101"
	_ "github.com/reoring/iso20022/admi/admi01100101"
	_ "github.com/reoring/iso20022/admi/admi99800102"
	_ "github.com/reoring/iso20022/camt/camt05500109"
	_ "github.com/reoring/iso20022/camt/camt06000105"
	_ "github.com/reoring/iso20022/pacs/pacs00200110"
	_ "github.com/reoring/iso20022/pacs/pacs00400110"
	_ "github.com/reoring/iso20022/pacs/pacs00800108"
)
