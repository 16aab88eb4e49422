package szse

import (
	"github.com/banbox/cndata"
)

type SZSE struct {
	*cndata.Exchange
}

// snapshotTab one tab of the daily market snapshot report
type snapshotTab struct {
	Key         string
	Code        string // column of the instrument code
	ArchiveDate string // archiveDate query value sent by the report page of this tab
	Specs       []cndata.ColSpec
}
