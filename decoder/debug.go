package decoder

import "github.com/mewkiz/pkg/dbg"

func init() {
	dbg.Debug = false
}
