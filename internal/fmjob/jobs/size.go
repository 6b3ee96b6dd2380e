package jobs

import (
	"fmt"
	"strings"

	"github.com/ehsaniara/fmjob/pkg/constants"
	"github.com/ehsaniara/fmjob/pkg/settings"
)

var (
	binaryUnits  = []string{"B", "KiB", "MiB", "GiB", "TiB"}
	decimalUnits = []string{"B", "kB", "MB", "GB", "TB"}
)

// sizeFormat renders byte counts the way the si-unit and
// list-view-size-units settings ask for.
type sizeFormat struct {
	si   bool
	unit string // "", "b", "k", "M" or "G"; empty picks the largest fitting unit
}

func sizeFormatFrom(store *settings.Store) sizeFormat {
	si, _ := store.GetBool(settings.KeySIUnit)
	unit, _ := store.GetString(settings.KeyListViewSizeUnits)
	return sizeFormat{si: si, unit: unit}
}

func (f sizeFormat) format(n int64) string {
	base, names := int64(constants.BinaryUnit), binaryUnits
	if f.si {
		base, names = constants.DecimalUnit, decimalUnits
	}

	exp := -1
	switch strings.ToLower(f.unit) {
	case "b":
		exp = 0
	case "k":
		exp = 1
	case "m":
		exp = 2
	case "g":
		exp = 3
	}

	if exp < 0 {
		exp = 0
		for v := n; v >= base && exp < len(names)-1; v /= base {
			exp++
		}
	}
	if exp == 0 {
		return fmt.Sprintf("%d %s", n, names[0])
	}

	div := int64(1)
	for i := 0; i < exp; i++ {
		div *= base
	}
	return fmt.Sprintf("%.1f %s", float64(n)/float64(div), names[exp])
}
