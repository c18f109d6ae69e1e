package encode

import (
	"fmt"

	"github.com/signadot/splitq"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[splitq.GroupKind]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[splitq.GroupKind]func(string, ...any) string{
			splitq.KPlain:  color.RGB(128, 168, 196).SprintfFunc(),
			splitq.KQuoted: color.RGB(8, 196, 16).SprintfFunc(),
			splitq.KCode:   color.RGB(198, 198, 46).SprintfFunc(),
		},
	}
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

func (c *Colors) sprintf(k splitq.GroupKind) func(string, ...any) string {
	if f, ok := c.Map[k]; ok {
		return f
	}
	return c.Default
}
