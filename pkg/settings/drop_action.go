package settings

import (
	"fmt"

	"github.com/ehsaniara/fmjob/pkg/errors"
)

// DropAction is the default action for files dropped onto a folder.
type DropAction int

const (
	DropAuto DropAction = iota
	DropCopy
	DropMove
	DropAsk
)

var dropActionNames = [...]string{"Auto", "Copy", "Move", "Ask"}

func (d DropAction) String() string {
	if d < DropAuto || d > DropAsk {
		return fmt.Sprintf("DropAction(%d)", int(d))
	}
	return dropActionNames[d]
}

// ParseDropAction accepts exactly the names printed by String.
func ParseDropAction(s string) (DropAction, error) {
	for i, name := range dropActionNames {
		if s == name {
			return DropAction(i), nil
		}
	}
	return DropAuto, fmt.Errorf("%w: drop action %q", errors.ErrSettingType, s)
}

func (d DropAction) MarshalText() ([]byte, error) {
	if d < DropAuto || d > DropAsk {
		return nil, fmt.Errorf("%w: drop action %d", errors.ErrSettingType, int(d))
	}
	return []byte(d.String()), nil
}

func (d *DropAction) UnmarshalText(text []byte) error {
	parsed, err := ParseDropAction(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
