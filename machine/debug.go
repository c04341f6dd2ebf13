package machine

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/jonathanlim222/uplc/value"
)

// dumpConfig renders Values compactly for diagnostics: no pointer
// addresses (arena pointers are meaningless to a human), method calls
// disabled (Value has none worth invoking here).
var dumpConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableMethods:          true,
	DisableCapacities:       true,
}

// DumpValue renders a Value tree as text for diagnostics. The machine's own
// error messages and trace log do not use it.
func DumpValue(v *value.Value) string {
	return dumpConfig.Sdump(v)
}
